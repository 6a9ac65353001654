package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"navshell/internal/models"
)

type SettingsRepository interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
	// Quarantine moves an unreadable settings file aside and returns its new path.
	Quarantine(ctx context.Context) (string, error)
}

type settingsRepository struct {
	path string
}

func NewSettingsRepository(path string) SettingsRepository {
	return &settingsRepository{path: path}
}

func (r *settingsRepository) Load(ctx context.Context) (*models.Settings, error) {
	data, err := readJSONFile(r.path)
	if err != nil {
		return nil, err
	}
	settings := models.DefaultSettings()
	if data == nil {
		// Return default settings if not found
		return settings, nil
	}

	if data[0] != '{' {
		return nil, fmt.Errorf("%w: %s is not a JSON object", ErrCorruptState, r.path)
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, r.path, err)
	}
	if !settings.Theme.Valid() {
		return nil, fmt.Errorf("%w: %s: unknown theme %q", ErrCorruptState, r.path, settings.Theme)
	}
	return settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	return writeJSONFile(r.path, settings)
}

func (r *settingsRepository) Quarantine(ctx context.Context) (string, error) {
	return quarantineFile(r.path)
}
