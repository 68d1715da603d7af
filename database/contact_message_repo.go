package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

var contactMessageColumns = map[string]bool{
	"email":      true,
	"is_read":    true,
	"created_at": true,
}

// FindAll returns messages, newest first by default.
func (r *ContactMessageRepo) FindAll(opts ListOptions) ([]*models.ContactMessage, error) {
	if opts.SortField == "" {
		opts.SortField = "created_at"
		opts.Descending = true
	}
	query, err := applyListOptions(r.db, opts, contactMessageColumns, "")
	if err != nil {
		return nil, err
	}
	var messages []*models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindByID returns a message by its ID, or nil when no row exists.
func (r *ContactMessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return r.db.Create(message).Error
}

// MarkRead flips is_read on one message. Returns gorm.ErrRecordNotFound
// when no row matches the id.
func (r *ContactMessageRepo) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
