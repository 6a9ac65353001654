package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"navshell/internal/models"
	"navshell/internal/repositories"
)

// FavoritesService owns the in-memory favorites record. Every mutation is
// written through to the repository before it becomes visible; a failed write
// leaves the record unchanged.
type FavoritesService interface {
	Startup(ctx context.Context)
	Load() error
	Get() *models.Favorites
	List() []models.FavoriteFolder
	AddFolder(name string) error
	AddURL(folder, url string) error
	DeleteURL(folder, url string) error
	DeleteFolder(folder string) error
	Relocate(path string) error
}

type favoritesService struct {
	favoritesRepo repositories.FavoritesRepository
	log           logger.Logger
	context       context.Context

	mu        sync.Mutex
	favorites *models.Favorites
	// loadErr holds a corrupt-state error whose file is still in place.
	loadErr error
}

func NewFavoritesService(favoritesRepo repositories.FavoritesRepository, log logger.Logger) FavoritesService {
	return &favoritesService{
		favoritesRepo: favoritesRepo,
		log:           log,
		favorites:     models.NewFavorites(),
	}
}

func (s *favoritesService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *favoritesService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// Load replaces the in-memory record with the repository content. A corrupt
// file is moved aside and the service continues with an empty record; if it
// cannot be moved, writes are refused until a later Load or Relocate succeeds.
func (s *favoritesService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.favoritesRepo.Load(s.ctx())
	if err != nil {
		if !errors.Is(err, repositories.ErrCorruptState) {
			return err
		}
		s.favorites = models.NewFavorites()
		backup, qerr := s.favoritesRepo.Quarantine(s.ctx())
		if qerr != nil {
			s.loadErr = err
			s.log.Error(fmt.Sprintf("favorites: %v", qerr))
			return fmt.Errorf("%w; %v", err, qerr)
		}
		s.loadErr = nil
		s.log.Warning(fmt.Sprintf("favorites: unreadable file moved to %s", backup))
		return fmt.Errorf("%w; moved to %s", err, backup)
	}

	s.favorites = favorites
	s.loadErr = nil
	s.log.Debug(fmt.Sprintf("favorites: loaded %d folders from %s", favorites.Len(), s.favoritesRepo.Path()))
	return nil
}

func (s *favoritesService) Get() *models.Favorites {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Clone()
}

func (s *favoritesService) List() []models.FavoriteFolder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Folders()
}

func (s *favoritesService) AddFolder(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	return s.mutate(func(f *models.Favorites) error {
		if f.Has(name) {
			return fmt.Errorf("%w: %q", ErrDuplicateFolder, name)
		}
		f.Set(name, []string{})
		return nil
	})
}

func (s *favoritesService) AddURL(folder, url string) error {
	if strings.TrimSpace(folder) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(url) == "" {
		return ErrInvalidURL
	}
	return s.mutate(func(f *models.Favorites) error {
		urls, _ := f.URLs(folder)
		f.Set(folder, append(urls, url))
		return nil
	})
}

// DeleteURL removes the first occurrence of url; the folder goes with its last URL.
func (s *favoritesService) DeleteURL(folder, url string) error {
	return s.mutate(func(f *models.Favorites) error {
		urls, ok := f.URLs(folder)
		if !ok {
			return fmt.Errorf("folder %q: %w", folder, ErrNotFound)
		}
		idx := -1
		for i, u := range urls {
			if u == url {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("url %q in folder %q: %w", url, folder, ErrNotFound)
		}

		urls = append(urls[:idx], urls[idx+1:]...)
		if len(urls) == 0 {
			f.Delete(folder)
			return nil
		}
		f.Set(folder, urls)
		return nil
	})
}

func (s *favoritesService) DeleteFolder(folder string) error {
	return s.mutate(func(f *models.Favorites) error {
		if !f.Delete(folder) {
			return fmt.Errorf("folder %q: %w", folder, ErrNotFound)
		}
		return nil
	})
}

// Relocate makes path the backing file. When path already holds favorites
// they are loaded and become the current record; otherwise the current record
// is written there. The previous file is left in place either way.
func (s *favoritesService) Relocate(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.favoritesRepo.Path()
	if previous == path {
		return nil
	}
	s.favoritesRepo.Relocate(path)

	if s.favoritesRepo.Exists() {
		favorites, err := s.favoritesRepo.Load(s.ctx())
		if err != nil {
			s.favoritesRepo.Relocate(previous)
			return fmt.Errorf("relocate favorites: %w", err)
		}
		s.favorites = favorites
		s.loadErr = nil
		s.log.Info(fmt.Sprintf("favorites: switched from %s to existing %s (%d folders)", previous, path, favorites.Len()))
		return nil
	}

	if err := s.favoritesRepo.Save(s.ctx(), s.favorites); err != nil {
		s.favoritesRepo.Relocate(previous)
		return fmt.Errorf("relocate favorites: %w", err)
	}
	s.loadErr = nil
	s.log.Info(fmt.Sprintf("favorites: moved from %s to %s", previous, path))
	return nil
}

func (s *favoritesService) mutate(apply func(f *models.Favorites) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		return fmt.Errorf("%w: %w", ErrUnsavedCorruptState, s.loadErr)
	}
	next := s.favorites.Clone()
	if err := apply(next); err != nil {
		return err
	}
	if err := s.favoritesRepo.Save(s.ctx(), next); err != nil {
		s.log.Error(fmt.Sprintf("favorites: save failed: %v", err))
		return fmt.Errorf("save favorites: %w", err)
	}
	s.favorites = next
	return nil
}
