package models

import "time"

type HistoryEntry struct {
	ID        uint      `gorm:"primaryKey"`
	URL       string    `gorm:"size:2048;not null;index"`
	Title     string    `gorm:"size:512"`
	VisitedAt time.Time `gorm:"not null;index"`
}
