package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/unmillondepredicadores/backend/internal/ai"
	"github.com/unmillondepredicadores/backend/internal/config"
	"github.com/unmillondepredicadores/backend/internal/dto"
	"github.com/unmillondepredicadores/backend/internal/middleware"
	"github.com/unmillondepredicadores/backend/internal/models"
	"github.com/unmillondepredicadores/backend/internal/services"
)

type stubCompletion struct {
	reply string
	err   error
}

func (s *stubCompletion) Complete(turns []ai.Turn, maxTokens int, temperature float64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newChatTestApp(t *testing.T, completion services.CompletionClient) (*fiber.App, *services.MemoryStore, uuid.UUID, string) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		ChatHistoryWindow: 6,
		ChatMaxTokens:     1000,
		ChatTemperature:   0.7,
	}

	store := services.NewMemoryStore()
	userID := uuid.New()
	store.AddUser(&models.User{
		ID:       userID,
		Email:    "pastor@example.com",
		FullName: "Pedro Martínez",
		Progress: datatypes.JSONMap{},
	})

	chatService := services.NewChatService(store, store, completion, nil, cfg)
	handler := NewChatHandler(chatService)

	app := fiber.New()
	protected := app.Group("/api", middleware.JWTProtected(cfg))
	protected.Post("/ai/chat", handler.Chat)
	protected.Get("/conversations", handler.ListConversations)
	protected.Get("/conversations/:id", handler.GetConversation)

	token := signTestToken(t, cfg.JWTSecret, userID)
	return app, store, userID, token
}

func signTestToken(t *testing.T, secret string, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func chatRequest(t *testing.T, token string, body dto.ChatRequest) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestChatEndpoint(t *testing.T) {
	app, store, userID, token := newChatTestApp(t, &stubCompletion{reply: "En el principio creó Dios los cielos y la tierra."})

	resp, err := app.Test(chatRequest(t, token, dto.ChatRequest{
		Content:       "¿Qué dice Génesis 1:1?",
		AssistantType: services.AssistantBibleMentor,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "En el principio creó Dios los cielos y la tierra.", body.Response)

	conv, err := store.Find(userID, services.AssistantBibleMentor)
	require.NoError(t, err)
	msgs, err := conv.DecodeMessages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
}

func TestChatEndpoint_RequiresToken(t *testing.T) {
	app, _, _, _ := newChatTestApp(t, &stubCompletion{reply: "ok"})

	resp, err := app.Test(chatRequest(t, "", dto.ChatRequest{
		Content:       "hola",
		AssistantType: services.AssistantBibleMentor,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChatEndpoint_InvalidAssistant(t *testing.T) {
	app, _, _, token := newChatTestApp(t, &stubCompletion{reply: "ok"})

	resp, err := app.Test(chatRequest(t, token, dto.ChatRequest{
		Content:       "hola",
		AssistantType: "startup_advisor",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatEndpoint_EmptyContent(t *testing.T) {
	app, _, _, token := newChatTestApp(t, &stubCompletion{reply: "ok"})

	resp, err := app.Test(chatRequest(t, token, dto.ChatRequest{
		Content:       "   ",
		AssistantType: services.AssistantBibleMentor,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatEndpoint_CompletionUnavailable(t *testing.T) {
	app, _, _, token := newChatTestApp(t, &stubCompletion{
		err: fmt.Errorf("%w: upstream down", ai.ErrUnavailable),
	})

	resp, err := app.Test(chatRequest(t, token, dto.ChatRequest{
		Content:       "hola",
		AssistantType: services.AssistantBibleMentor,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestConversationEndpoints(t *testing.T) {
	app, _, _, token := newChatTestApp(t, &stubCompletion{reply: "respuesta"})

	// create one exchange first
	resp, err := app.Test(chatRequest(t, token, dto.ChatRequest{
		Content:       "hola",
		AssistantType: services.AssistantSermonCoach,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/conversations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var convs []dto.ConversationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&convs))
	require.Len(t, convs, 1)
	require.Equal(t, services.AssistantSermonCoach, convs[0].AssistantType)
	require.Len(t, convs[0].Messages, 2)

	// fetch by id
	req = httptest.NewRequest(http.MethodGet, "/api/conversations/"+convs[0].ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// a different user cannot read it
	otherToken := signTestToken(t, "test-secret", uuid.New())
	req = httptest.NewRequest(http.MethodGet, "/api/conversations/"+convs[0].ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
