package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is the single profile record rendered on the public site.
// The table holds exactly one logical row, mutated wholesale via update.
type PersonalInfo struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone       string    `json:"phone" db:"phone" gorm:"type:text"`
	Location    string    `json:"location" db:"location" gorm:"type:text"`
	Bio         string    `json:"bio" db:"bio" gorm:"type:text"`
	Journey     string    `json:"journey" db:"journey" gorm:"type:text"`
	GithubURL   string    `json:"github_url" db:"github_url" gorm:"type:text"`
	LinkedinURL string    `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	TwitterURL  string    `json:"twitter_url" db:"twitter_url" gorm:"type:text"`
	ResumeURL   string    `json:"resume_url" db:"resume_url" gorm:"type:text"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
