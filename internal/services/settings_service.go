package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"navshell/internal/config"
	"navshell/internal/models"
	"navshell/internal/repositories"
	"navshell/internal/utils"
)

type SettingsService interface {
	Startup(ctx context.Context)
	Load() error
	Get() *models.Settings
	Update(theme, language string, microphone bool) (*models.Settings, error)
	SetFavoritesFolder(dir string) (*models.Settings, error)
	OnChange(fn func(settings *models.Settings))
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
	favorites    FavoritesService
	cfg          config.Config
	log          logger.Logger
	context      context.Context

	mu        sync.Mutex
	settings  *models.Settings
	listeners []func(settings *models.Settings)
	// loadErr holds a corrupt-state error whose file is still in place.
	loadErr error
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, favorites FavoritesService, cfg config.Config, log logger.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		favorites:    favorites,
		cfg:          cfg,
		log:          log,
		settings:     models.DefaultSettings(),
	}
}

func (s *settingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *settingsService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// Load reads the settings file. A corrupt file is moved aside and the defaults
// stay in effect; if it cannot be moved, saves are refused until a later Load
// succeeds.
func (s *settingsService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.settingsRepo.Load(s.ctx())
	if err != nil {
		if !errors.Is(err, repositories.ErrCorruptState) {
			return err
		}
		backup, qerr := s.settingsRepo.Quarantine(s.ctx())
		if qerr != nil {
			s.loadErr = err
			s.log.Error(fmt.Sprintf("settings: %v", qerr))
			return fmt.Errorf("%w; %v", err, qerr)
		}
		s.loadErr = nil
		s.log.Warning(fmt.Sprintf("settings: unreadable file moved to %s", backup))
		return fmt.Errorf("%w; moved to %s", err, backup)
	}
	s.settings = settings
	s.loadErr = nil
	return nil
}

func (s *settingsService) Get() *models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := *s.settings
	return &current
}

func (s *settingsService) Update(theme, language string, microphone bool) (*models.Settings, error) {
	if theme == "" {
		return nil, errors.New("theme is required")
	}
	if language == "" {
		return nil, errors.New("language is required")
	}
	if !models.Theme(theme).Valid() {
		return nil, errors.New("theme must be 'light' or 'dark'")
	}
	if !models.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("unsupported language %q", language)
	}

	return s.save(func(next *models.Settings) error {
		next.Theme = models.Theme(theme)
		next.Language = language
		next.Permissions.Microphone = microphone
		return nil
	})
}

// SetFavoritesFolder moves the favorites file into dir. An empty dir moves it
// back to the data directory.
func (s *settingsService) SetFavoritesFolder(dir string) (*models.Settings, error) {
	dir = strings.TrimSpace(dir)
	if dir != "" && !utils.DirectoryExists(dir) {
		return nil, fmt.Errorf("favorites folder %q does not exist", dir)
	}

	return s.save(func(next *models.Settings) error {
		if next.FavoritesFolder == dir {
			return nil
		}
		previous := next.FavoritesFolder
		if err := s.favorites.Relocate(s.cfg.FavoritesPath(dir)); err != nil {
			return err
		}
		next.FavoritesFolder = dir
		s.log.Info(fmt.Sprintf("settings: favorites folder changed from %q to %q", previous, dir))
		return nil
	})
}

func (s *settingsService) OnChange(fn func(settings *models.Settings)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *settingsService) save(apply func(next *models.Settings) error) (*models.Settings, error) {
	s.mu.Lock()
	if s.loadErr != nil {
		err := s.loadErr
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrUnsavedCorruptState, err)
	}
	previous := *s.settings
	next := *s.settings
	if err := apply(&next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := s.settingsRepo.Save(s.ctx(), &next); err != nil {
		if next.FavoritesFolder != previous.FavoritesFolder {
			if rerr := s.favorites.Relocate(s.cfg.FavoritesPath(previous.FavoritesFolder)); rerr != nil {
				s.log.Error(fmt.Sprintf("settings: restore favorites location: %v", rerr))
			}
		}
		s.mu.Unlock()
		return nil, fmt.Errorf("save settings: %w", err)
	}
	s.settings = &next
	listeners := append([]func(*models.Settings){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		updated := next
		fn(&updated)
	}
	result := next
	return &result, nil
}
