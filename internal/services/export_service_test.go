package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/unmillondepredicadores/backend/internal/models"
)

func TestConversationPDF(t *testing.T) {
	msgs := []models.Message{
		{Role: models.MessageRoleUser, Content: "¿Cómo estructuro un sermón expositivo?", Timestamp: time.Now().UTC()},
		{Role: models.MessageRoleAssistant, Content: "Un sermón expositivo parte del texto bíblico...", Timestamp: time.Now().UTC()},
	}
	encoded, err := models.EncodeMessages(msgs)
	require.NoError(t, err)

	conv := &models.Conversation{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		AssistantType: AssistantSermonCoach,
		Messages:      encoded,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	pdfBytes, err := NewExportService().ConversationPDF(conv, "Pedro Martínez")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	require.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestConversationPDF_EmptyHistory(t *testing.T) {
	conv := &models.Conversation{
		ID:            uuid.New(),
		AssistantType: AssistantBibleMentor,
		UpdatedAt:     time.Now().UTC(),
	}

	pdfBytes, err := NewExportService().ConversationPDF(conv, "Pedro Martínez")
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestWorkshopCertificatePDF(t *testing.T) {
	workshop := &models.Workshop{
		ID:        uuid.New(),
		Title:     "Fundamentos de la Predicación",
		SortOrder: 1,
	}

	pdfBytes, err := NewExportService().WorkshopCertificatePDF(workshop, "María González")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	require.Equal(t, "%PDF", string(pdfBytes[:4]))
}
