package models

import (
	"time"

	"github.com/google/uuid"
)

// Project statuses form a closed enum.
const (
	ProjectStatusPlanned    = "planned"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
)

// ProjectStatuses lists every valid value for Project.Status.
var ProjectStatuses = []string{ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusCompleted}

// Project represents a portfolio project with metadata
type Project struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string     `json:"description" db:"description" gorm:"type:text;not null"`
	Category     string     `json:"category" db:"category" gorm:"type:text;not null"`
	Technologies StringList `json:"technologies" db:"technologies" gorm:"type:jsonb;not null;default:'[]'"`
	GithubURL    string     `json:"github_url" db:"github_url" gorm:"type:text"`
	LiveURL      string     `json:"live_url" db:"live_url" gorm:"type:text"`
	ImageURL     string     `json:"image_url" db:"image_url" gorm:"type:text"`
	Featured     bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	Status       string     `json:"status" db:"status" gorm:"type:text;not null;default:'completed'"`
	SortOrder    int        `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
	StartDate    *time.Time `json:"start_date,omitempty" db:"start_date" gorm:"type:timestamp"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date" gorm:"type:timestamp"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// ValidProjectStatus reports whether s is a member of the status enum.
func ValidProjectStatus(s string) bool {
	for _, v := range ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}
