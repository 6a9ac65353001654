package mocks

import (
	"context"
	"navshell/internal/models"
)

type HistoryRepositoryMock struct {
	CreateFunc    func(ctx context.Context, entry *models.HistoryEntry) error
	RecentFunc    func(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error)
	SearchFunc    func(ctx context.Context, term string, limit int) ([]models.HistoryEntry, error)
	DeleteAllFunc func(ctx context.Context) error
}

func (m *HistoryRepositoryMock) Create(ctx context.Context, entry *models.HistoryEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *HistoryRepositoryMock) Recent(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit, offset)
	}
	return []models.HistoryEntry{}, nil
}

func (m *HistoryRepositoryMock) Search(ctx context.Context, term string, limit int) ([]models.HistoryEntry, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, limit)
	}
	return []models.HistoryEntry{}, nil
}

func (m *HistoryRepositoryMock) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}
