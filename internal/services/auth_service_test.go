package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/unmillondepredicadores/backend/internal/config"
	"github.com/unmillondepredicadores/backend/internal/models"
)

func TestGenerateAccessTokenClaims(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 30 * time.Minute,
	}
	svc := NewAuthService(nil, cfg)

	user := &models.User{
		ID:    uuid.New(),
		Email: "pastor@example.com",
		Role:  models.RoleUser,
	}

	signed, err := svc.generateAccessToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		require.Equal(t, jwt.SigningMethodHS256, tok.Method)
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, user.ID.String(), claims["sub"])
	require.Equal(t, user.Email, claims["email"])
	require.Equal(t, models.RoleUser, claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), exp.Time, time.Minute)
}

func TestGenerateAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "right-secret", JWTAccessExpiry: time.Hour}
	svc := NewAuthService(nil, cfg)

	signed, err := svc.generateAccessToken(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	require.Error(t, err)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	a := hashToken("refresh-token-value")
	b := hashToken("refresh-token-value")
	c := hashToken("another-value")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 64) // hex sha256
}

func TestUserResponseCarriesProgress(t *testing.T) {
	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.New(),
		Email:     "pastor@example.com",
		FullName:  "Pedro Martínez",
		Role:      models.RoleUser,
		CreatedAt: now,
		LastLogin: &now,
	}
	user.Progress = map[string]interface{}{models.ProgressConversationCount: float64(4)}

	resp := userResponse(user)
	require.Equal(t, user.Email, resp.Email)
	require.Equal(t, user.FullName, resp.FullName)
	require.Equal(t, float64(4), resp.Progress[models.ProgressConversationCount])
}
