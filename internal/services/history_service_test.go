package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navshell/internal/models"
	"navshell/internal/services"
	"navshell/internal/tests/mocks"
)

func TestHistoryService_Record(t *testing.T) {
	var created []*models.HistoryEntry
	mockRepo := &mocks.HistoryRepositoryMock{
		CreateFunc: func(ctx context.Context, entry *models.HistoryEntry) error {
			created = append(created, entry)
			return nil
		},
	}
	service := services.NewHistoryService(mockRepo)
	service.Startup(context.Background())

	require.NoError(t, service.Record("  ", "blank"))
	require.NoError(t, service.Record("about:blank", ""))
	require.NoError(t, service.Record("https://example.com", "Example Domain"))

	require.Len(t, created, 1)
	assert.Equal(t, "https://example.com", created[0].URL)
	assert.Equal(t, "Example Domain", created[0].Title)
	assert.False(t, created[0].VisitedAt.IsZero())
}

func TestHistoryService_DefaultLimit(t *testing.T) {
	var gotLimit int
	mockRepo := &mocks.HistoryRepositoryMock{
		RecentFunc: func(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	service := services.NewHistoryService(mockRepo)

	_, err := service.Recent(0)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)

	_, err = service.Search("   ", -1)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
}

func TestHistoryService_Search(t *testing.T) {
	mockRepo := &mocks.HistoryRepositoryMock{
		SearchFunc: func(ctx context.Context, term string, limit int) ([]models.HistoryEntry, error) {
			assert.Equal(t, "golang", term)
			assert.Equal(t, 5, limit)
			return []models.HistoryEntry{{URL: "https://go.dev"}}, nil
		},
	}
	service := services.NewHistoryService(mockRepo)

	entries, err := service.Search(" golang ", 5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
