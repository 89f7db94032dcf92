package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"personalblog/internal/auth"
	"personalblog/internal/cache"
	"personalblog/internal/config"
	"personalblog/internal/database"
	"personalblog/internal/repository"
	"personalblog/internal/service"
	"personalblog/internal/storage"
)

type App struct {
	DB       *database.DB
	Redis    *cache.RedisClient
	Repo     *repository.Repository
	Services *service.Service
}

// New connects every backing store and wires the services. Redis and MinIO
// are optional: without REDIS_ADDR logout only clears the cookie, without
// MINIO_ENDPOINT image uploads answer 503.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenManager(cfg.SessionSecret)
	if err != nil {
		db.CloseDB()
		return nil, err
	}

	a := &App{DB: db}

	var revoker service.Revoker
	if cfg.Redis.Addr != "" {
		a.Redis = cache.NewRedisClient(cfg.Redis)
		if err := a.Redis.Connect(ctx); err != nil {
			a.Close()
			return nil, err
		}
		revoker = cache.NewRevocationList(a.Redis.Client)
	} else {
		log.Warn().Msg("REDIS_ADDR не задан, отзыв сессий отключён")
	}

	var imageStorage storage.Storage
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			a.Close()
			return nil, err
		}
		imageStorage = minioClient
	} else {
		log.Warn().Msg("MINIO_ENDPOINT не задан, загрузка изображений отключена")
	}

	// enabling dependencies
	a.Repo = repository.NewRepository(db.DB)
	a.Services = service.NewService(a.Repo, cfg, tokens, revoker, imageStorage)

	return a, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Ошибка при закрытии Redis")
		}
	}
	if a.DB != nil {
		if err := a.DB.CloseDB(); err != nil {
			log.Error().Err(err).Msg("Ошибка при закрытии БД")
		}
	}
}
