package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type PersonalInfoRepo struct {
	db *gorm.DB
}

func NewPersonalInfoRepo(db *gorm.DB) *PersonalInfoRepo {
	return &PersonalInfoRepo{db}
}

// Get returns the singleton profile row, or nil when it has never been set.
func (r *PersonalInfoRepo) Get() (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	err := r.db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert writes the profile wholesale, creating the row on first use so the
// table always holds exactly one logical record.
func (r *PersonalInfoRepo) Upsert(info *models.PersonalInfo) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		if info.ID == uuid.Nil {
			info.ID = uuid.New()
		}
		return r.db.Create(info).Error
	}
	info.ID = existing.ID
	return r.db.Save(info).Error
}
