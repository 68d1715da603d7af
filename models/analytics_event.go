package models

import (
	"time"

	"github.com/google/uuid"
)

// EventTypePageView is the event type recorded by the page-view endpoint.
// Other event types are free-form ("click", "download", ...).
const EventTypePageView = "page_view"

// AnalyticsEvent is one append-only tracking row. Rows are never updated or
// deleted; reads go through windowed aggregate queries.
type AnalyticsEvent struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	EventType string    `json:"event_type" db:"event_type" gorm:"type:text;not null;index"`
	Page      string    `json:"page" db:"page" gorm:"type:text;not null"`
	Metadata  JSONMap   `json:"metadata,omitempty" db:"metadata" gorm:"type:jsonb"`
	IPAddress string    `json:"ip_address" db:"ip_address" gorm:"type:text"`
	UserAgent string    `json:"user_agent" db:"user_agent" gorm:"type:text"`
	Referrer  string    `json:"referrer" db:"referrer" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index"`
}
