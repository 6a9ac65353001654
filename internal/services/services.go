package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"

	"navshell/internal/config"
	"navshell/internal/repositories"
)

// Services aggregates the shell's domain services.
// Fields use plural names (e.g., Favorites) to align with Go conventions
// seen in service/store containers.
type Services struct {
	Settings  SettingsService
	Favorites FavoritesService
	History   HistoryService

	cfg           config.Config
	favoritesRepo repositories.FavoritesRepository
}

// NewServices wires the JSON-backed stores under cfg and the history store on db.
// A nil db leaves History unset.
func NewServices(cfg config.Config, db *gorm.DB, log logger.Logger) *Services {
	favoritesRepo := repositories.NewFavoritesRepository(cfg.FavoritesPath(""))
	favorites := NewFavoritesService(favoritesRepo, log)

	svc := &Services{
		Settings:      NewSettingsService(repositories.NewSettingsRepository(cfg.SettingsPath()), favorites, cfg, log),
		Favorites:     favorites,
		cfg:           cfg,
		favoritesRepo: favoritesRepo,
	}
	if db != nil {
		svc.History = NewHistoryService(repositories.NewHistoryRepository(db))
	}
	return svc
}

func (s *Services) Startup(ctx context.Context) {
	s.Settings.Startup(ctx)
	s.Favorites.Startup(ctx)
	if s.History != nil {
		s.History.Startup(ctx)
	}
}

// Load reads settings, then favorites from the folder the settings name.
// A corrupt file is moved aside by its service; corrupt settings leave the
// defaults in place and favorites are then loaded from the data directory.
func (s *Services) Load() error {
	var errs []error
	if err := s.Settings.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load settings: %w", err))
	}
	s.favoritesRepo.Relocate(s.cfg.FavoritesPath(s.Settings.Get().FavoritesFolder))
	if err := s.Favorites.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load favorites: %w", err))
	}
	return errors.Join(errs...)
}
