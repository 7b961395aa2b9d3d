package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// Progress map keys maintained by the services layer.
const (
	ProgressConversationCount  = "conversation_count"
	ProgressCompletedWorkshops = "completed_workshops"
	ProgressFavoriteAssistant  = "favorite_assistant"
)

type User struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string            `gorm:"not null;size:255;uniqueIndex" json:"email"`
	FullName    string            `gorm:"not null;size:255" json:"full_name"`
	Password    string            `gorm:"not null" json:"-"`
	Role        string            `gorm:"size:20;default:'user'" json:"role"`
	Preferences datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"preferences"`
	Progress    datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"progress"`
	LastLogin   *time.Time        `json:"last_login"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}
