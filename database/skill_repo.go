package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

var skillColumns = map[string]bool{
	"name":        true,
	"level":       true,
	"category":    true,
	"is_featured": true,
	"sort_order":  true,
	"created_at":  true,
}

// FindAll returns skills ordered by sort_order unless opts says otherwise.
func (r *SkillRepo) FindAll(opts ListOptions) ([]*models.Skill, error) {
	query, err := applyListOptions(r.db, opts, skillColumns, "sort_order")
	if err != nil {
		return nil, err
	}
	var skills []*models.Skill
	if err := query.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// FindByID returns a skill by its ID, or nil when no row exists.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// ReplaceAll swaps the whole skills table for the given rows in one
// transaction. A failure anywhere rolls the table back to its previous
// contents.
func (r *SkillRepo) ReplaceAll(skills []*models.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		for _, skill := range skills {
			if skill.ID == uuid.Nil {
				skill.ID = uuid.New()
			}
			if err := tx.Create(skill).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
