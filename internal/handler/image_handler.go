package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"personalblog/internal/models"
)

// multipartOverhead is the allowance for multipart boundaries and headers on
// top of the file itself.
const multipartOverhead = 1 << 20

type ImagesResponse struct {
	Images []*models.Image `json:"images"`
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			writeError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := h.ImageService.UploadImage(r.Context(), file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, image, http.StatusCreated)
}

func (h *Handlers) GetImages(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	images, err := h.ImageService.ListImages(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, ImagesResponse{Images: images}, http.StatusOK)
}
