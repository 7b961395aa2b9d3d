package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workshop is static catalog content, seeded at startup and read-only
// from the API's perspective.
type Workshop struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string         `gorm:"not null;size:255" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Content         string         `gorm:"type:text" json:"content"`
	SortOrder       int            `gorm:"not null;uniqueIndex" json:"order"`
	DurationMinutes int            `json:"duration_minutes"`
	Category        string         `gorm:"size:50;index" json:"category"`
	Resources       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"resources"`
	CreatedAt       time.Time      `json:"created_at"`
}
