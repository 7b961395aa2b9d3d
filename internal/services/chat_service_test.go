package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/unmillondepredicadores/backend/internal/ai"
	"github.com/unmillondepredicadores/backend/internal/config"
	"github.com/unmillondepredicadores/backend/internal/models"
)

type fakeCompletion struct {
	mu    sync.Mutex
	reply string
	err   error
	calls [][]ai.Turn
}

func (f *fakeCompletion) Complete(turns []ai.Turn, maxTokens int, temperature float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, turns)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompletion) lastCall() []ai.Turn {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

func newTestChatService(t *testing.T, completion CompletionClient) (*ChatService, *MemoryStore, uuid.UUID) {
	t.Helper()
	store := NewMemoryStore()
	userID := uuid.New()
	store.AddUser(&models.User{
		ID:       userID,
		Email:    "pastor@example.com",
		FullName: "Pedro Martínez",
		Progress: datatypes.JSONMap{},
	})
	cfg := &config.Config{
		ChatHistoryWindow: 6,
		ChatMaxTokens:     1000,
		ChatTemperature:   0.7,
	}
	return NewChatService(store, store, completion, nil, cfg), store, userID
}

func seedHistory(t *testing.T, store *MemoryStore, userID uuid.UUID, assistant string, n int) {
	t.Helper()
	for i := 1; i <= n; i += 2 {
		userMsg := models.Message{
			Role:       models.MessageRoleUser,
			Content:    fmt.Sprintf("M%d", i),
			ExchangeID: uuid.NewString(),
		}
		assistantMsg := models.Message{
			Role:       models.MessageRoleAssistant,
			Content:    fmt.Sprintf("M%d", i+1),
			ExchangeID: userMsg.ExchangeID,
		}
		appended, err := store.AppendExchange(userID, assistant, userMsg, assistantMsg)
		require.NoError(t, err)
		require.True(t, appended)
	}
}

func TestAssembleContext_FirstTurn(t *testing.T) {
	svc, _, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})

	turns, err := svc.AssembleContext(userID, AssistantBibleMentor, "¿Qué dice Génesis 1:1?")
	require.NoError(t, err)
	require.Len(t, turns, 2)

	require.Equal(t, ai.RoleSystem, turns[0].Role)
	prompt, _ := AssistantPrompt(AssistantBibleMentor)
	require.Equal(t, prompt, turns[0].Content)

	require.Equal(t, ai.RoleUser, turns[1].Role)
	require.Equal(t, "¿Qué dice Génesis 1:1?", turns[1].Content)
}

func TestAssembleContext_TrailingWindow(t *testing.T) {
	svc, store, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})
	seedHistory(t, store, userID, AssistantSermonCoach, 8)

	turns, err := svc.AssembleContext(userID, AssistantSermonCoach, "nueva pregunta")
	require.NoError(t, err)

	// 1 system + min(8, 6) history + 1 user
	require.Len(t, turns, 8)
	require.Equal(t, ai.RoleSystem, turns[0].Role)
	require.Equal(t, ai.RoleUser, turns[len(turns)-1].Role)

	// window keeps the most recent six, in stored order
	for i, want := range []string{"M3", "M4", "M5", "M6", "M7", "M8"} {
		require.Equal(t, want, turns[1+i].Content)
	}
}

func TestAssembleContext_ShortHistoryKeptWhole(t *testing.T) {
	svc, store, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})
	seedHistory(t, store, userID, AssistantExegesisGuide, 4)

	turns, err := svc.AssembleContext(userID, AssistantExegesisGuide, "sigue")
	require.NoError(t, err)
	require.Len(t, turns, 6)
	for i, want := range []string{"M1", "M2", "M3", "M4"} {
		require.Equal(t, want, turns[1+i].Content)
	}
}

func TestAssembleContext_Validation(t *testing.T) {
	svc, _, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})

	_, err := svc.AssembleContext(userID, "angel_investor", "hola")
	require.ErrorIs(t, err, ErrInvalidAssistant)

	_, err = svc.AssembleContext(userID, AssistantBibleMentor, "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.AssembleContext(uuid.New(), AssistantBibleMentor, "hola")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCommit_CreatesConversationWithEqualTimestamps(t *testing.T) {
	svc, store, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})

	err := svc.Commit(userID, AssistantBibleMentor, uuid.NewString(),
		"¿Qué dice Génesis 1:1?", "En el principio creó Dios los cielos y la tierra.")
	require.NoError(t, err)

	conv, err := store.Find(userID, AssistantBibleMentor)
	require.NoError(t, err)
	require.Equal(t, conv.CreatedAt, conv.UpdatedAt)

	msgs, err := conv.DecodeMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, models.MessageRoleUser, msgs[0].Role)
	require.Equal(t, models.MessageRoleAssistant, msgs[1].Role)
	require.Equal(t, msgs[0].Timestamp, msgs[1].Timestamp)
	require.Equal(t, msgs[0].ExchangeID, msgs[1].ExchangeID)
}

func TestCommit_DuplicateExchangeIsNoOp(t *testing.T) {
	svc, store, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})

	exchangeID := uuid.NewString()
	require.NoError(t, svc.Commit(userID, AssistantBibleMentor, exchangeID, "hola", "respuesta"))
	require.NoError(t, svc.Commit(userID, AssistantBibleMentor, exchangeID, "hola", "respuesta"))

	conv, err := store.Find(userID, AssistantBibleMentor)
	require.NoError(t, err)
	msgs, err := conv.DecodeMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	// counter bumped exactly once
	user, err := store.FindUserByID(userID)
	require.NoError(t, err)
	require.Equal(t, float64(1), user.Progress[models.ProgressConversationCount])
}

func TestCommit_ConcurrentAppendsStayPaired(t *testing.T) {
	svc, store, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})

	const goroutines = 16
	errs := make(chan error, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- svc.Commit(userID, AssistantSermonCoach, uuid.NewString(),
				fmt.Sprintf("pregunta %d", i), fmt.Sprintf("respuesta %d", i))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	conv, err := store.Find(userID, AssistantSermonCoach)
	require.NoError(t, err)
	msgs, err := conv.DecodeMessages()
	require.NoError(t, err)
	require.Len(t, msgs, goroutines*2)

	// every even index is a user turn followed by its assistant turn with
	// the same exchange id
	for i := 0; i < len(msgs); i += 2 {
		require.Equal(t, models.MessageRoleUser, msgs[i].Role)
		require.Equal(t, models.MessageRoleAssistant, msgs[i+1].Role)
		require.Equal(t, msgs[i].ExchangeID, msgs[i+1].ExchangeID)
	}
}

func TestChat_ReturnsReplyAndPersistsExchange(t *testing.T) {
	completion := &fakeCompletion{reply: "En el principio creó Dios los cielos y la tierra."}
	svc, store, userID := newTestChatService(t, completion)

	reply, err := svc.Chat(userID, AssistantBibleMentor, "¿Qué dice Génesis 1:1?")
	require.NoError(t, err)
	require.Equal(t, "En el principio creó Dios los cielos y la tierra.", reply)

	conv, err := store.Find(userID, AssistantBibleMentor)
	require.NoError(t, err)
	msgs, err := conv.DecodeMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "¿Qué dice Génesis 1:1?", msgs[0].Content)
	require.Equal(t, reply, msgs[1].Content)
}

func TestChat_CompletionFailureLeavesHistoryUntouched(t *testing.T) {
	completion := &fakeCompletion{err: fmt.Errorf("%w: upstream 500", ai.ErrUnavailable)}
	svc, store, userID := newTestChatService(t, completion)

	_, err := svc.Chat(userID, AssistantBibleMentor, "hola")
	require.ErrorIs(t, err, ai.ErrUnavailable)

	_, err = store.Find(userID, AssistantBibleMentor)
	require.ErrorIs(t, err, ErrConversationNotFound)
}

type failingStore struct {
	*MemoryStore
}

func (f *failingStore) AppendExchange(userID uuid.UUID, assistantType string, userMsg, assistantMsg models.Message) (bool, error) {
	return false, errors.New("disk on fire")
}

func TestChat_CommitFailureStillReturnsReply(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	store.AddUser(&models.User{ID: userID, Email: "p@example.com", Progress: datatypes.JSONMap{}})

	cfg := &config.Config{ChatHistoryWindow: 6, ChatMaxTokens: 1000, ChatTemperature: 0.7}
	svc := NewChatService(store, &failingStore{store}, &fakeCompletion{reply: "respuesta"}, nil, cfg)

	reply, err := svc.Chat(userID, AssistantBibleMentor, "hola")
	require.NoError(t, err)
	require.Equal(t, "respuesta", reply)

	// nothing stored: history diverges until the next successful commit
	_, err = store.Find(userID, AssistantBibleMentor)
	require.ErrorIs(t, err, ErrConversationNotFound)
}

func TestChat_CompletionSeesAssembledContext(t *testing.T) {
	completion := &fakeCompletion{reply: "ok"}
	svc, store, userID := newTestChatService(t, completion)
	seedHistory(t, store, userID, AssistantBibleMentor, 2)

	_, err := svc.Chat(userID, AssistantBibleMentor, "siguiente")
	require.NoError(t, err)

	turns := completion.lastCall()
	require.Len(t, turns, 4)
	require.Equal(t, ai.RoleSystem, turns[0].Role)
	require.Equal(t, "M1", turns[1].Content)
	require.Equal(t, "M2", turns[2].Content)
	require.Equal(t, "siguiente", turns[3].Content)
}

func TestGetConversation_EnforcesOwnership(t *testing.T) {
	svc, store, userID := newTestChatService(t, &fakeCompletion{reply: "ok"})
	require.NoError(t, svc.Commit(userID, AssistantBibleMentor, uuid.NewString(), "hola", "respuesta"))

	conv, err := store.Find(userID, AssistantBibleMentor)
	require.NoError(t, err)

	got, err := svc.GetConversation(userID, conv.ID)
	require.NoError(t, err)
	require.Equal(t, conv.ID, got.ID)

	_, err = svc.GetConversation(uuid.New(), conv.ID)
	require.ErrorIs(t, err, ErrConversationNotFound)
}
