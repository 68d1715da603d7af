package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a public contact-form submission. Request metadata is
// captured at submission time; the only later mutation is flipping IsRead.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	IPAddress string    `json:"ip_address" db:"ip_address" gorm:"type:text"`
	UserAgent string    `json:"user_agent" db:"user_agent" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
