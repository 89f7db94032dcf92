package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"personalblog/cmd/app"
	"personalblog/internal/config"
	handlers "personalblog/internal/handler"
	"personalblog/internal/logger"
	"personalblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger.Init(cfg.Env, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Неверная конфигурация")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось запустить приложение")
	}
	defer application.Close()

	handler := handlers.NewHandlers(application.Services, cfg)
	router := handlers.NewRouter(handler)

	handlerChain := middleware.Chain(
		router,
		middleware.Gate(application.Services.Auth, middleware.DefaultGateConfig()),
		middleware.SessionMiddleware(application.Services.Auth),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		middleware.LoggingMiddleware,
		middleware.RecoveryMiddleware,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("env", cfg.Env).
			Str("database", cfg.DB.DbNAME).
			Msg("Сервер запущен")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Ошибка запуска сервера")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Сервер остановлен с ошибкой")
	}
}
