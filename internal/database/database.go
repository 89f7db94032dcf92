package database

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"personalblog/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DB struct {
	*sqlx.DB
}

func DSN(cfg config.DB) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		cfg.DbUSER,
		cfg.DbPASSWORD,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)
}

func ConnectDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	log.Info().Str("host", cfg.DB.DbHOST).Str("dbname", cfg.DB.DbNAME).Msg("Подключаемся к БД")

	db, err := sqlx.ConnectContext(ctx, "postgres", DSN(cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{db}

	if err := dbStruct.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("проверка БД не пройдена: %w", err)
	}

	log.Info().Msg("Успешное подключение к PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies every embedded migration in file name order. The
// scripts are idempotent.
func (db *DB) RunMigrations(ctx context.Context) error {
	files, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("ошибка при чтении миграций: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		migrationSQL, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("ошибка при чтении файла миграций %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(migrationSQL)); err != nil {
			return fmt.Errorf("ошибка при выполнении миграции %s: %w", name, err)
		}
		log.Debug().Str("file", name).Msg("Миграция применена")
	}

	log.Info().Int("count", len(names)).Msg("Миграции успешно применены")
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("подключение к БД не инициализировано")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}
