package service

import (
	"personalblog/internal/auth"
	"personalblog/internal/config"
	"personalblog/internal/repository"
	"personalblog/internal/storage"
)

type Service struct {
	Auth   AuthService
	Post   PostService
	Image  ImageService
	Tables TablesService
}

// NewService wires every service. revoker and storage are optional.
func NewService(rep *repository.Repository, cfg *config.Config, tokens *auth.TokenManager, revoker Revoker, storage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(rep.Admins, tokens, revoker),
		Post:   NewPostService(rep.Posts),
		Image:  NewImageService(rep.Images, storage, cfg.MaxUploadSize),
		Tables: NewTablesService(rep.Tables),
	}
}
