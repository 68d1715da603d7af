package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// projectColumns is the whitelist of columns exposed for sorting/filtering.
var projectColumns = map[string]bool{
	"title":      true,
	"category":   true,
	"featured":   true,
	"status":     true,
	"sort_order": true,
	"created_at": true,
}

// FindAll returns projects ordered by sort_order unless opts says otherwise.
func (r *ProjectRepo) FindAll(opts ListOptions) ([]*models.Project, error) {
	query, err := applyListOptions(r.db, opts, projectColumns, "sort_order")
	if err != nil {
		return nil, err
	}
	var projects []*models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil when no row exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
