package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unmillondepredicadores/backend/internal/ai"
	"github.com/unmillondepredicadores/backend/internal/config"
	"github.com/unmillondepredicadores/backend/internal/models"
)

var (
	ErrInvalidAssistant = errors.New("unknown assistant type")
	ErrEmptyMessage     = errors.New("message content is empty")
)

// CompletionClient generates a reply for an assembled prompt. Implementations
// may fail transiently; the chat service never retries on its own.
type CompletionClient interface {
	Complete(turns []ai.Turn, maxTokens int, temperature float64) (string, error)
}

// ChatService owns conversation-context assembly and the persistence of
// completed exchanges.
type ChatService struct {
	users         UserStore
	conversations ConversationStore
	completion    CompletionClient
	metrics       *MetricsService
	window        int
	maxTokens     int
	temperature   float64
}

func NewChatService(users UserStore, conversations ConversationStore, completion CompletionClient, metrics *MetricsService, cfg *config.Config) *ChatService {
	window := cfg.ChatHistoryWindow
	if window <= 0 {
		window = 6
	}
	return &ChatService{
		users:         users,
		conversations: conversations,
		completion:    completion,
		metrics:       metrics,
		window:        window,
		maxTokens:     cfg.ChatMaxTokens,
		temperature:   cfg.ChatTemperature,
	}
}

// AssembleContext builds the prompt for one chat request: exactly one system
// turn with the persona instruction, the trailing window of stored history in
// stored order, and the new user turn. The result is single-use input for the
// completion call and is never mutated afterward.
func (s *ChatService) AssembleContext(userID uuid.UUID, assistantType, content string) ([]ai.Turn, error) {
	prompt, ok := AssistantPrompt(assistantType)
	if !ok {
		return nil, ErrInvalidAssistant
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := s.users.FindUserByID(userID); err != nil {
		return nil, err
	}

	turns := make([]ai.Turn, 0, s.window+2)
	turns = append(turns, ai.Turn{Role: ai.RoleSystem, Content: prompt})

	conv, err := s.conversations.Find(userID, assistantType)
	switch {
	case err == nil:
		history, derr := conv.DecodeMessages()
		if derr != nil {
			return nil, fmt.Errorf("corrupt message history: %w", derr)
		}
		if len(history) > s.window {
			history = history[len(history)-s.window:]
		}
		for _, msg := range history {
			turns = append(turns, ai.Turn{Role: msg.Role, Content: msg.Content})
		}
	case errors.Is(err, ErrConversationNotFound):
		// first chat turn for this persona, no history
	default:
		return nil, err
	}

	turns = append(turns, ai.Turn{Role: ai.RoleUser, Content: content})
	return turns, nil
}

// Commit persists the user/assistant pair as one atomic append and bumps the
// user's conversation counter once. Both messages carry the same commit-time
// timestamp, so a conversation created here has created_at == updated_at.
// Re-committing the same exchange ID is a no-op.
func (s *ChatService) Commit(userID uuid.UUID, assistantType, exchangeID, content, reply string) error {
	if !ValidAssistant(assistantType) {
		return ErrInvalidAssistant
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}
	if _, err := s.users.FindUserByID(userID); err != nil {
		return err
	}

	now := time.Now().UTC()
	userMsg := models.Message{
		Role:       models.MessageRoleUser,
		Content:    content,
		Timestamp:  now,
		ExchangeID: exchangeID,
	}
	assistantMsg := models.Message{
		Role:       models.MessageRoleAssistant,
		Content:    reply,
		Timestamp:  now,
		ExchangeID: exchangeID,
	}

	appended, err := s.conversations.AppendExchange(userID, assistantType, userMsg, assistantMsg)
	if err != nil {
		return err
	}
	if !appended {
		return nil
	}
	if err := s.users.IncrementConversationCount(userID); err != nil {
		slog.Error("failed to bump conversation counter", "user_id", userID.String(), "error", err)
	}
	return nil
}

// Chat runs one full request: assemble, complete, commit. A completion failure
// aborts before any write. A commit failure is logged and swallowed: the
// generated reply is still returned, and stored history will be missing this
// turn until the user chats again.
func (s *ChatService) Chat(userID uuid.UUID, assistantType, content string) (string, error) {
	turns, err := s.AssembleContext(userID, assistantType, content)
	if err != nil {
		return "", err
	}

	reply, err := s.completion.Complete(turns, s.maxTokens, s.temperature)
	if err != nil {
		return "", err
	}

	exchangeID := uuid.NewString()
	if err := s.Commit(userID, assistantType, exchangeID, content, reply); err != nil {
		slog.Error("chat commit failed, returning unpersisted reply",
			"user_id", userID.String(), "assistant", assistantType, "error", err)
	}
	if s.metrics != nil {
		s.metrics.RecordChat(assistantType)
	}
	return reply, nil
}

// ListConversations returns the user's conversations, most recently updated first.
func (s *ChatService) ListConversations(userID uuid.UUID) ([]models.Conversation, error) {
	return s.conversations.ListByUser(userID)
}

// GetConversation fetches a conversation by id, enforcing ownership.
func (s *ChatService) GetConversation(userID, conversationID uuid.UUID) (*models.Conversation, error) {
	conv, err := s.conversations.FindByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}
