package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill represents one entry on the skills grid. Level is a 0-100 proficiency.
type Skill struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Level      int       `json:"level" db:"level" gorm:"type:integer;not null"`
	Category   string    `json:"category" db:"category" gorm:"type:text;not null"`
	Icon       string    `json:"icon" db:"icon" gorm:"type:text"`
	SortOrder  int       `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
	IsFeatured bool      `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
