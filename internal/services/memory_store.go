package services

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/unmillondepredicadores/backend/internal/models"
	"gorm.io/datatypes"
)

type convKey struct {
	userID    uuid.UUID
	assistant string
}

// MemoryStore is an in-process ConversationStore/UserStore with the same
// atomicity guarantees as the PostgreSQL store. Used by tests.
type MemoryStore struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*models.User
	conversations map[convKey]*models.Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[uuid.UUID]*models.User),
		conversations: make(map[convKey]*models.Conversation),
	}
}

func (m *MemoryStore) AddUser(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.Progress == nil {
		u.Progress = datatypes.JSONMap{}
	}
	m.users[u.ID] = u
}

func (m *MemoryStore) FindUserByID(id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *MemoryStore) IncrementConversationCount(userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	cur, _ := u.Progress[models.ProgressConversationCount].(float64)
	u.Progress[models.ProgressConversationCount] = cur + 1
	return nil
}

func (m *MemoryStore) Find(userID uuid.UUID, assistantType string) (*models.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conv, ok := m.conversations[convKey{userID, assistantType}]
	if !ok {
		return nil, ErrConversationNotFound
	}
	copied := *conv
	return &copied, nil
}

func (m *MemoryStore) FindByID(id uuid.UUID) (*models.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, conv := range m.conversations {
		if conv.ID == id {
			copied := *conv
			return &copied, nil
		}
	}
	return nil, ErrConversationNotFound
}

func (m *MemoryStore) ListByUser(userID uuid.UUID) ([]models.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var convs []models.Conversation
	for key, conv := range m.conversations {
		if key.userID == userID {
			convs = append(convs, *conv)
		}
	}
	sort.Slice(convs, func(i, j int) bool {
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})
	return convs, nil
}

func (m *MemoryStore) AppendExchange(userID uuid.UUID, assistantType string, userMsg, assistantMsg models.Message) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := convKey{userID, assistantType}
	conv, exists := m.conversations[key]
	if !exists {
		encoded, err := models.EncodeMessages([]models.Message{userMsg, assistantMsg})
		if err != nil {
			return false, err
		}
		m.conversations[key] = &models.Conversation{
			ID:            uuid.New(),
			UserID:        userID,
			AssistantType: assistantType,
			Messages:      encoded,
			CreatedAt:     assistantMsg.Timestamp,
			UpdatedAt:     assistantMsg.Timestamp,
		}
		return true, nil
	}

	msgs, err := conv.DecodeMessages()
	if err != nil {
		return false, err
	}
	if n := len(msgs); n > 0 && msgs[n-1].ExchangeID == userMsg.ExchangeID {
		return false, nil
	}
	encoded, err := models.EncodeMessages(append(msgs, userMsg, assistantMsg))
	if err != nil {
		return false, err
	}
	conv.Messages = encoded
	conv.UpdatedAt = assistantMsg.Timestamp
	return true, nil
}
