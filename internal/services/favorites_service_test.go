package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"navshell/internal/models"
	"navshell/internal/repositories"
	"navshell/internal/services"
	"navshell/internal/tests/mocks"
)

func newFileFavorites(t *testing.T) (services.FavoritesService, repositories.FavoritesRepository) {
	t.Helper()
	repo := repositories.NewFavoritesRepository(filepath.Join(t.TempDir(), "favorites.json"))
	service := services.NewFavoritesService(repo, logger.NewDefaultLogger())
	service.Startup(context.Background())
	require.NoError(t, service.Load())
	return service, repo
}

func reload(t *testing.T, repo repositories.FavoritesRepository) []models.FavoriteFolder {
	t.Helper()
	favorites, err := repo.Load(context.Background())
	require.NoError(t, err)
	return favorites.Folders()
}

func TestFavoritesService_AddFolder_PersistsEmptyFolder(t *testing.T) {
	service, repo := newFileFavorites(t)

	require.NoError(t, service.AddFolder("Reading"))

	assert.Equal(t, []models.FavoriteFolder{{Name: "Reading", URLs: []string{}}}, reload(t, repo))
}

func TestFavoritesService_AddFolder_Duplicate(t *testing.T) {
	mockRepo := &mocks.FavoritesRepositoryMock{}
	service := services.NewFavoritesService(mockRepo, logger.NewDefaultLogger())
	require.NoError(t, service.AddURL("News", "https://example.com"))
	saves := mockRepo.Saves

	err := service.AddFolder("News")
	assert.ErrorIs(t, err, services.ErrDuplicateFolder)
	assert.Equal(t, saves, mockRepo.Saves)
	assert.Equal(t, []models.FavoriteFolder{{Name: "News", URLs: []string{"https://example.com"}}}, service.List())
}

func TestFavoritesService_AddFolder_BlankName(t *testing.T) {
	service, _ := newFileFavorites(t)
	assert.ErrorIs(t, service.AddFolder("   "), services.ErrInvalidName)
	assert.Empty(t, service.List())
}

func TestFavoritesService_AddURL_Validation(t *testing.T) {
	service, _ := newFileFavorites(t)
	assert.ErrorIs(t, service.AddURL("", "https://example.com"), services.ErrInvalidName)
	assert.ErrorIs(t, service.AddURL("News", " "), services.ErrInvalidURL)
}

func TestFavoritesService_AddThenDeleteURL_RoundTrip(t *testing.T) {
	service, repo := newFileFavorites(t)
	require.NoError(t, service.AddURL("Work", "https://a.example"))
	before := reload(t, repo)

	require.NoError(t, service.AddURL("Work", "https://b.example"))
	require.NoError(t, service.DeleteURL("Work", "https://b.example"))
	assert.Equal(t, before, reload(t, repo))

	require.NoError(t, service.AddURL("Fresh", "https://c.example"))
	require.NoError(t, service.DeleteURL("Fresh", "https://c.example"))
	assert.Equal(t, before, reload(t, repo))
}

func TestFavoritesService_Scenario(t *testing.T) {
	service, repo := newFileFavorites(t)

	require.NoError(t, service.AddURL("News", "https://example.com"))
	require.NoError(t, service.AddURL("News", "https://example.org"))
	assert.Equal(t, []models.FavoriteFolder{
		{Name: "News", URLs: []string{"https://example.com", "https://example.org"}},
	}, reload(t, repo))

	require.NoError(t, service.DeleteURL("News", "https://example.com"))
	assert.Equal(t, []models.FavoriteFolder{
		{Name: "News", URLs: []string{"https://example.org"}},
	}, reload(t, repo))

	require.NoError(t, service.DeleteURL("News", "https://example.org"))
	assert.Empty(t, reload(t, repo))
}

func TestFavoritesService_DeleteURL_RemovesFirstDuplicateOnly(t *testing.T) {
	service, repo := newFileFavorites(t)
	require.NoError(t, service.AddURL("Dup", "https://x.example"))
	require.NoError(t, service.AddURL("Dup", "https://y.example"))
	require.NoError(t, service.AddURL("Dup", "https://x.example"))

	require.NoError(t, service.DeleteURL("Dup", "https://x.example"))

	assert.Equal(t, []models.FavoriteFolder{
		{Name: "Dup", URLs: []string{"https://y.example", "https://x.example"}},
	}, reload(t, repo))
}

func TestFavoritesService_DeleteMissing(t *testing.T) {
	mockRepo := &mocks.FavoritesRepositoryMock{}
	service := services.NewFavoritesService(mockRepo, logger.NewDefaultLogger())
	require.NoError(t, service.AddFolder("Empty"))
	saves := mockRepo.Saves

	assert.ErrorIs(t, service.DeleteURL("Nope", "https://example.com"), services.ErrNotFound)
	assert.ErrorIs(t, service.DeleteURL("Empty", "https://example.com"), services.ErrNotFound)
	assert.ErrorIs(t, service.DeleteFolder("Nope"), services.ErrNotFound)
	assert.Equal(t, saves, mockRepo.Saves)
}

func TestFavoritesService_DeleteFolder(t *testing.T) {
	service, repo := newFileFavorites(t)
	require.NoError(t, service.AddURL("A", "https://a.example"))
	require.NoError(t, service.AddFolder("B"))

	require.NoError(t, service.DeleteFolder("A"))

	assert.Equal(t, []models.FavoriteFolder{{Name: "B", URLs: []string{}}}, reload(t, repo))
}

func TestFavoritesService_SaveFailureKeepsState(t *testing.T) {
	mockRepo := &mocks.FavoritesRepositoryMock{
		SaveFunc: func(ctx context.Context, favorites *models.Favorites) error {
			return errors.New("disk full")
		},
	}
	service := services.NewFavoritesService(mockRepo, logger.NewDefaultLogger())

	err := service.AddFolder("News")
	assert.EqualError(t, err, "save favorites: disk full")
	assert.Empty(t, service.List())
}

func TestFavoritesService_Load_Error(t *testing.T) {
	mockRepo := &mocks.FavoritesRepositoryMock{
		LoadFunc: func(ctx context.Context) (*models.Favorites, error) {
			return nil, repositories.ErrCorruptState
		},
	}
	service := services.NewFavoritesService(mockRepo, logger.NewDefaultLogger())

	assert.ErrorIs(t, service.Load(), repositories.ErrCorruptState)
	assert.Empty(t, service.List())
}

func TestFavoritesService_Load_CorruptFileIsMovedAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	original := `{"News":["https://news.example"],"Work":["https://a.example",1]}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))
	repo := repositories.NewFavoritesRepository(path)
	service := services.NewFavoritesService(repo, logger.NewDefaultLogger())

	err := service.Load()
	require.ErrorIs(t, err, repositories.ErrCorruptState)
	assert.Empty(t, service.List())

	require.NoError(t, service.AddURL("Later", "https://later.example"))
	assert.Equal(t, []models.FavoriteFolder{{Name: "Later", URLs: []string{"https://later.example"}}}, reload(t, repo))

	backups, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, backups, 1)
	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestFavoritesService_Load_CorruptFileStuckRefusesWrites(t *testing.T) {
	mockRepo := &mocks.FavoritesRepositoryMock{
		LoadFunc: func(ctx context.Context) (*models.Favorites, error) {
			return nil, repositories.ErrCorruptState
		},
		QuarantineFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("permission denied")
		},
	}
	service := services.NewFavoritesService(mockRepo, logger.NewDefaultLogger())

	require.ErrorIs(t, service.Load(), repositories.ErrCorruptState)

	err := service.AddFolder("News")
	assert.ErrorIs(t, err, services.ErrUnsavedCorruptState)
	assert.ErrorIs(t, err, repositories.ErrCorruptState)
	err = service.AddURL("News", "https://example.com")
	assert.ErrorIs(t, err, services.ErrUnsavedCorruptState)
	assert.Equal(t, 0, mockRepo.Saves)

	// A clean reload lifts the block.
	mockRepo.LoadFunc = nil
	require.NoError(t, service.Load())
	require.NoError(t, service.AddFolder("News"))
	assert.Equal(t, 1, mockRepo.Saves)
}

func TestFavoritesService_GetReturnsCopy(t *testing.T) {
	service, _ := newFileFavorites(t)
	require.NoError(t, service.AddURL("News", "https://example.com"))

	snapshot := service.Get()
	snapshot.Set("News", []string{"changed"})
	snapshot.Set("Other", nil)

	assert.Equal(t, []models.FavoriteFolder{{Name: "News", URLs: []string{"https://example.com"}}}, service.List())
}

func TestFavoritesService_Relocate(t *testing.T) {
	service, repo := newFileFavorites(t)
	require.NoError(t, service.AddURL("News", "https://example.com"))

	newPath := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, service.Relocate(newPath))
	assert.Equal(t, newPath, repo.Path())

	moved := repositories.NewFavoritesRepository(newPath)
	assert.Equal(t, []models.FavoriteFolder{{Name: "News", URLs: []string{"https://example.com"}}}, reload(t, moved))
}

func TestFavoritesService_Relocate_AdoptsExistingFile(t *testing.T) {
	service, repo := newFileFavorites(t)
	require.NoError(t, service.AddURL("News", "https://example.com"))

	newPath := filepath.Join(t.TempDir(), "favorites.json")
	existing := `{"Shared":["https://shared.example"]}`
	require.NoError(t, os.WriteFile(newPath, []byte(existing), 0644))

	require.NoError(t, service.Relocate(newPath))
	assert.Equal(t, newPath, repo.Path())
	assert.Equal(t, []models.FavoriteFolder{{Name: "Shared", URLs: []string{"https://shared.example"}}}, service.List())

	data, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestFavoritesService_Relocate_CorruptTargetKeepsLocation(t *testing.T) {
	service, repo := newFileFavorites(t)
	require.NoError(t, service.AddURL("News", "https://example.com"))
	previous := repo.Path()

	newPath := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(newPath, []byte(`{"Shared":`), 0644))

	err := service.Relocate(newPath)
	assert.ErrorIs(t, err, repositories.ErrCorruptState)
	assert.Equal(t, previous, repo.Path())
	assert.Equal(t, []models.FavoriteFolder{{Name: "News", URLs: []string{"https://example.com"}}}, service.List())
}
