package mocks

import (
	"context"
	"navshell/internal/models"
)

type FavoritesRepositoryMock struct {
	LoadFunc       func(ctx context.Context) (*models.Favorites, error)
	SaveFunc       func(ctx context.Context, favorites *models.Favorites) error
	ExistsFunc     func() bool
	QuarantineFunc func(ctx context.Context) (string, error)

	// Saves counts calls to Save, successful or not.
	Saves int
	path  string
}

func (m *FavoritesRepositoryMock) Load(ctx context.Context) (*models.Favorites, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return models.NewFavorites(), nil
}

func (m *FavoritesRepositoryMock) Save(ctx context.Context, favorites *models.Favorites) error {
	m.Saves++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, favorites)
	}
	return nil
}

func (m *FavoritesRepositoryMock) Path() string {
	return m.path
}

func (m *FavoritesRepositoryMock) Relocate(path string) {
	m.path = path
}

func (m *FavoritesRepositoryMock) Exists() bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc()
	}
	return false
}

func (m *FavoritesRepositoryMock) Quarantine(ctx context.Context) (string, error) {
	if m.QuarantineFunc != nil {
		return m.QuarantineFunc(ctx)
	}
	return m.path + ".corrupt", nil
}
