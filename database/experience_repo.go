package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

var experienceColumns = map[string]bool{
	"title":      true,
	"company":    true,
	"type":       true,
	"sort_order": true,
	"start_date": true,
	"created_at": true,
}

// FindAll returns timeline entries, most recent first by default.
func (r *ExperienceRepo) FindAll(opts ListOptions) ([]*models.Experience, error) {
	if opts.SortField == "" {
		opts.SortField = "start_date"
		opts.Descending = true
	}
	query, err := applyListOptions(r.db, opts, experienceColumns, "")
	if err != nil {
		return nil, err
	}
	var experiences []*models.Experience
	if err := query.Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// FindByID returns an experience by its ID, or nil when no row exists.
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Add inserts a new experience into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	if experience.ID == uuid.Nil {
		experience.ID = uuid.New()
	}
	return r.db.Create(experience).Error
}

// Update updates an existing experience in the database
func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete removes an experience from the database by id
func (r *ExperienceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}
