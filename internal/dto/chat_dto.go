package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/unmillondepredicadores/backend/internal/models"
)

type ChatRequest struct {
	Content       string `json:"content"`
	AssistantType string `json:"assistant_type"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ConversationResponse struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	AssistantType string           `json:"assistant_type"`
	Messages      []models.Message `json:"messages"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
