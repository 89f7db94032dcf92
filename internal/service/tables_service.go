package service

import (
	"context"

	"personalblog/internal/repository"
)

type TablesService interface {
	ListTables(ctx context.Context) ([]string, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) ListTables(ctx context.Context) ([]string, error) {
	return t.tablesRepo.ListTables(ctx)
}
