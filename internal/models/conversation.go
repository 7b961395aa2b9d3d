package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is one turn inside a conversation's jsonb message array.
// Messages are immutable once appended; array order is the only order.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	// ExchangeID ties the user/assistant pair of a single chat request
	// together so a retried commit cannot double-append the pair.
	ExchangeID string `json:"exchange_id,omitempty"`
}

// Conversation holds the full message history between one user and one
// assistant persona. (user_id, assistant_type) is the natural key; the
// uuid is a surrogate.
type Conversation struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_user_assistant" json:"user_id"`
	AssistantType string         `gorm:"size:50;not null;uniqueIndex:idx_conversations_user_assistant" json:"assistant_type"`
	Messages      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"messages"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// DecodeMessages unmarshals the jsonb message array in stored order.
func (c *Conversation) DecodeMessages() ([]Message, error) {
	if len(c.Messages) == 0 {
		return nil, nil
	}
	var msgs []Message
	if err := json.Unmarshal(c.Messages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// EncodeMessages marshals messages for storage.
func EncodeMessages(msgs []Message) (datatypes.JSON, error) {
	b, err := json.Marshal(msgs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
