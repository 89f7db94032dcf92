package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// ListTables returns the table names of the public schema in name order.
func (r *tablesRepository) ListTables(ctx context.Context) ([]string, error) {
	tables := []string{}

	err := r.db.SelectContext(ctx, &tables, `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = 'public'
			ORDER BY table_name
		`)

	if err != nil {
		return nil, fmt.Errorf("ошибка при получении таблиц базы данных: %w", err)
	}

	return tables, nil
}
