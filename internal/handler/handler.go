package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"personalblog/internal/config"
	"personalblog/internal/models"
	"personalblog/internal/service"
)

const maxJSONBodySize = 1 << 20

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	ImageService  service.ImageService
	TablesService service.TablesService
	Cfg           *config.Config
	Validate      *validator.Validate
	templates     map[string]*template.Template
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		PostService:   service.Post,
		ImageService:  service.Image,
		TablesService: service.Tables,
		Cfg:           config,
		Validate:      NewValidator(),
		templates:     loadTemplates(),
	}
}

// NewValidator reports fields by their JSON names and knows the notblank tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return models.NewValidationError("Неверный формат запроса")
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.NewValidationError("Неверный формат запроса")
	}

	return nil
}

// validateRequest maps validator failures onto client messages. Missing
// fields report missing, anything else names the offending field.
func (h *Handlers) validateRequest(req interface{}, missing *models.DomainError) error {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	for _, fe := range validationErrors {
		if fe.Tag() == "max" {
			return models.NewValidationError(fmt.Sprintf("Поле %s превышает допустимую длину", fe.Field()))
		}
	}

	return missing
}
