package repositories

import (
	"context"
	"fmt"
	"sync"

	"navshell/internal/models"
)

type FavoritesRepository interface {
	Load(ctx context.Context) (*models.Favorites, error)
	Save(ctx context.Context, favorites *models.Favorites) error
	Path() string
	Relocate(path string)
	Exists() bool
	Quarantine(ctx context.Context) (string, error)
}

type favoritesRepository struct {
	mu   sync.RWMutex
	path string
}

func NewFavoritesRepository(path string) FavoritesRepository {
	return &favoritesRepository{path: path}
}

// Load returns an empty record when the file is missing or holds a JSON value
// other than an object.
func (r *favoritesRepository) Load(ctx context.Context) (*models.Favorites, error) {
	path := r.Path()
	data, err := readJSONFile(path)
	if err != nil {
		return nil, err
	}
	if data == nil || data[0] != '{' {
		return models.NewFavorites(), nil
	}

	favorites := models.NewFavorites()
	if err := favorites.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, path, err)
	}
	return favorites, nil
}

func (r *favoritesRepository) Save(ctx context.Context, favorites *models.Favorites) error {
	return writeJSONFile(r.Path(), favorites)
}

func (r *favoritesRepository) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}

// Relocate points subsequent loads and saves at path. Existing content is not moved.
func (r *favoritesRepository) Relocate(path string) {
	r.mu.Lock()
	r.path = path
	r.mu.Unlock()
}

// Exists reports whether a favorites file is present at the current path.
func (r *favoritesRepository) Exists() bool {
	return fileExists(r.Path())
}

// Quarantine moves the file at the current path aside so a fresh record can be
// written without losing the unreadable one.
func (r *favoritesRepository) Quarantine(ctx context.Context) (string, error) {
	return quarantineFile(r.Path())
}
