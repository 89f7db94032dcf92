package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"personalblog/internal/auth"
	"personalblog/internal/config"
	"personalblog/internal/database"
	"personalblog/internal/logger"
	"personalblog/internal/models"
	"personalblog/internal/repository"
)

const (
	minPasswordLength = 8

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv))
}

func validateCredentials(username, password string) error {
	if username == "" {
		return errors.New("имя пользователя не может быть пустым")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("пароль короче %d символов: задайте ADMIN_PASSWORD или флаг -password", minPasswordLength)
	}
	return nil
}

// run returns the process exit code. Every path after the database
// connection goes through the deferred close.
func run(args []string, getenv func(string) string) int {
	var username, password string

	fs := flag.NewFlagSet("createadmin", flag.ContinueOnError)
	fs.StringVar(&username, "username", "admin", "administrator username")
	fs.StringVar(&password, "password", "", "administrator password (prefer ADMIN_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.Env, cfg.LogLevel)

	// Check environment variable if flag is not provided
	if password == "" {
		password = getenv("ADMIN_PASSWORD")
	}

	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		log.Error().Err(err).Msg("Неверные параметры")
		return exitUsage
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Не удалось подключиться к БД")
		return exitError
	}
	defer func() {
		if err := db.CloseDB(); err != nil {
			log.Error().Err(err).Msg("Ошибка при закрытии БД")
		}
	}()

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("Не удалось захешировать пароль")
		return exitError
	}

	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := repository.NewAdminRepository(db.DB).Create(ctx, admin); err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			log.Error().Str("username", username).Msg("Администратор уже существует")
		} else {
			log.Error().Err(err).Msg("Не удалось создать администратора")
		}
		return exitError
	}

	log.Info().
		Str("username", admin.Username).
		Str("admin_id", admin.AdminID).
		Msg("Администратор создан")

	return exitOK
}
