package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db}
}

// Add appends one tracking row. Events are never updated or deleted.
func (r *AnalyticsRepo) Add(event *models.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return r.db.Create(event).Error
}

// FindSince returns every event recorded at or after the cutoff, oldest
// first. Aggregation happens in memory at the handler.
func (r *AnalyticsRepo) FindSince(since time.Time) ([]*models.AnalyticsEvent, error) {
	var events []*models.AnalyticsEvent
	err := r.db.Where("created_at >= ?", since).Order("created_at ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindPage returns one page of events within the window, newest first,
// for the detailed admin view.
func (r *AnalyticsRepo) FindPage(since time.Time, offset, limit int) ([]*models.AnalyticsEvent, error) {
	var events []*models.AnalyticsEvent
	err := r.db.Where("created_at >= ?", since).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountSince returns the number of events recorded at or after the cutoff.
func (r *AnalyticsRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnalyticsEvent{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
