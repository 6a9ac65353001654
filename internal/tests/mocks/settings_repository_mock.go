package mocks

import (
	"context"
	"navshell/internal/models"
)

type SettingsRepositoryMock struct {
	LoadFunc       func(ctx context.Context) (*models.Settings, error)
	SaveFunc       func(ctx context.Context, settings *models.Settings) error
	QuarantineFunc func(ctx context.Context) (string, error)
}

func (m *SettingsRepositoryMock) Load(ctx context.Context) (*models.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return models.DefaultSettings(), nil
}

func (m *SettingsRepositoryMock) Save(ctx context.Context, settings *models.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return nil
}

func (m *SettingsRepositoryMock) Quarantine(ctx context.Context) (string, error) {
	if m.QuarantineFunc != nil {
		return m.QuarantineFunc(ctx)
	}
	return "settings.json.corrupt", nil
}
