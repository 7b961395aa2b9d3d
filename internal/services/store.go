package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/unmillondepredicadores/backend/internal/models"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationStore is the persistence gateway for chat history.
//
// AppendExchange must apply the user/assistant pair as one atomic mutation
// keyed on (user_id, assistant_type): concurrent calls on the same key may
// interleave only as whole pairs, and a reader can never observe half a pair.
// A second call carrying the exchange ID already at the tail of the stored
// sequence is a no-op and returns false.
type ConversationStore interface {
	Find(userID uuid.UUID, assistantType string) (*models.Conversation, error)
	FindByID(id uuid.UUID) (*models.Conversation, error)
	ListByUser(userID uuid.UUID) ([]models.Conversation, error)
	AppendExchange(userID uuid.UUID, assistantType string, userMsg, assistantMsg models.Message) (appended bool, err error)
}

// UserStore is the slice of user persistence the chat core needs.
type UserStore interface {
	FindUserByID(id uuid.UUID) (*models.User, error)
	IncrementConversationCount(userID uuid.UUID) error
}
