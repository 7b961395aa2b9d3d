package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/unmillondepredicadores/backend/internal/models"
	"gorm.io/gorm"
)

// GormStore implements ConversationStore and UserStore on PostgreSQL.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Find(userID uuid.UUID, assistantType string) (*models.Conversation, error) {
	var conv models.Conversation
	err := s.db.Where("user_id = ? AND assistant_type = ?", userID, assistantType).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (s *GormStore) FindByID(id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	if err := s.db.First(&conv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (s *GormStore) ListByUser(userID uuid.UUID) ([]models.Conversation, error) {
	var convs []models.Conversation
	if err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&convs).Error; err != nil {
		return nil, err
	}
	return convs, nil
}

// AppendExchange appends the pair in a single upsert keyed on the natural
// (user_id, assistant_type) key. The jsonb concat runs inside one statement,
// so concurrent appends on the same conversation serialize as whole pairs.
// The DO UPDATE's WHERE clause skips the append when the tail of the stored
// sequence already carries this exchange ID (retried commit).
func (s *GormStore) AppendExchange(userID uuid.UUID, assistantType string, userMsg, assistantMsg models.Message) (bool, error) {
	pair, err := models.EncodeMessages([]models.Message{userMsg, assistantMsg})
	if err != nil {
		return false, fmt.Errorf("failed to encode message pair: %w", err)
	}

	ts := assistantMsg.Timestamp
	res := s.db.Exec(`
		INSERT INTO conversations (id, user_id, assistant_type, messages, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, assistant_type) DO UPDATE
		SET messages = conversations.messages || excluded.messages,
		    updated_at = excluded.updated_at
		WHERE conversations.messages -> -1 ->> 'exchange_id' IS DISTINCT FROM ?`,
		uuid.New(), userID, assistantType, pair, ts, ts, userMsg.ExchangeID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) FindUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) IncrementConversationCount(userID uuid.UUID) error {
	res := s.db.Exec(`
		UPDATE users
		SET progress = jsonb_set(COALESCE(progress, '{}'::jsonb), '{conversation_count}',
			(COALESCE((progress ->> 'conversation_count')::int, 0) + 1)::text::jsonb),
		    updated_at = now()
		WHERE id = ? AND deleted_at IS NULL`, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
