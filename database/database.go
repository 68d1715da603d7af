package database

import (
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	personalInfoRepo   *PersonalInfoRepo
	projectRepo        *ProjectRepo
	skillRepo          *SkillRepo
	experienceRepo     *ExperienceRepo
	contactMessageRepo *ContactMessageRepo
	analyticsRepo      *AnalyticsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		personalInfoRepo:   NewPersonalInfoRepo(db),
		projectRepo:        NewProjectRepo(db),
		skillRepo:          NewSkillRepo(db),
		experienceRepo:     NewExperienceRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		analyticsRepo:      NewAnalyticsRepo(db),
	}
}

// Migrate creates or updates the six content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PersonalInfo{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.ContactMessage{},
		&models.AnalyticsEvent{},
	)
}

// Accessor methods for each repository

func (d Database) PersonalInfoRepo() *PersonalInfoRepo {
	return d.personalInfoRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) AnalyticsRepo() *AnalyticsRepo {
	return d.analyticsRepo
}
