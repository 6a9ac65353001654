package services

import (
	"context"
	"strings"
	"time"

	"navshell/internal/models"
	"navshell/internal/repositories"
)

const defaultHistoryLimit = 100

type HistoryService interface {
	Startup(ctx context.Context)
	Record(url, title string) error
	Recent(limit int) ([]models.HistoryEntry, error)
	Search(term string, limit int) ([]models.HistoryEntry, error)
	Clear() error
}

type historyService struct {
	history repositories.HistoryRepository
	context context.Context
	now     func() time.Time
}

func NewHistoryService(history repositories.HistoryRepository) HistoryService {
	return &historyService{history: history, now: time.Now}
}

func (s *historyService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *historyService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

// Record stores a visit. Blank and about: URLs are ignored.
func (s *historyService) Record(url, title string) error {
	url = strings.TrimSpace(url)
	if url == "" || strings.HasPrefix(url, "about:") {
		return nil
	}
	return s.history.Create(s.ctx(), &models.HistoryEntry{
		URL:       url,
		Title:     title,
		VisitedAt: s.now(),
	})
}

func (s *historyService) Recent(limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.history.Recent(s.ctx(), limit, 0)
}

func (s *historyService) Search(term string, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return s.history.Recent(s.ctx(), limit, 0)
	}
	return s.history.Search(s.ctx(), term, limit)
}

func (s *historyService) Clear() error {
	return s.history.DeleteAll(s.ctx())
}
