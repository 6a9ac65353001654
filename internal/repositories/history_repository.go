package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"navshell/internal/models"
)

type HistoryRepository interface {
	Create(ctx context.Context, entry *models.HistoryEntry) error
	Recent(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error)
	Search(ctx context.Context, term string, limit int) ([]models.HistoryEntry, error)
	DeleteAll(ctx context.Context) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, entry *models.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *historyRepository) Recent(ctx context.Context, limit, offset int) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := r.db.WithContext(ctx).
		Order("visited_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

// Search matches term against URL and title, case-insensitively.
func (r *historyRepository) Search(ctx context.Context, term string, limit int) ([]models.HistoryEntry, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var entries []models.HistoryEntry
	err := r.db.WithContext(ctx).
		Where("LOWER(url) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern).
		Order("visited_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *historyRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.HistoryEntry{}).Error
}
