package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience entry types form a closed enum.
const (
	ExperienceTypeWork      = "experience"
	ExperienceTypeEducation = "education"
)

// ExperienceTypes lists every valid value for Experience.Type.
var ExperienceTypes = []string{ExperienceTypeWork, ExperienceTypeEducation}

// Experience represents one timeline entry, either a job or a degree.
// Description holds the ordered bullet points shown under the entry.
type Experience struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Company     string     `json:"company" db:"company" gorm:"type:text;not null"`
	Period      string     `json:"period" db:"period" gorm:"type:text;not null"`
	Type        string     `json:"type" db:"type" gorm:"type:text;not null;default:'experience'"`
	Description StringList `json:"description" db:"description" gorm:"type:jsonb;not null;default:'[]'"`
	StartDate   *time.Time `json:"start_date,omitempty" db:"start_date" gorm:"type:timestamp"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date" gorm:"type:timestamp"`
	SortOrder   int        `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// ValidExperienceType reports whether t is a member of the type enum.
func ValidExperienceType(t string) bool {
	for _, v := range ExperienceTypes {
		if v == t {
			return true
		}
	}
	return false
}
