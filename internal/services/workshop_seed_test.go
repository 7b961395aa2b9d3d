package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultWorkshopCatalog(t *testing.T) {
	require.Len(t, defaultWorkshops, 21)

	byCategory := make(map[string]int)
	for _, w := range defaultWorkshops {
		byCategory[w.Category]++
	}
	require.Equal(t, map[string]int{
		"fundamentals": 3,
		"preaching":    4,
		"leadership":   7,
		"pastoral":     4,
		"evangelism":   3,
	}, byCategory)

	seen := make(map[int]bool, len(defaultWorkshops))
	for _, w := range defaultWorkshops {
		require.NotEmpty(t, w.Title)
		require.NotEmpty(t, w.Description)
		require.NotEmpty(t, w.Content)
		require.NotEmpty(t, w.Category)
		require.Greater(t, w.DurationMinutes, 0)

		require.False(t, seen[w.SortOrder], "duplicate sort order %d", w.SortOrder)
		seen[w.SortOrder] = true
	}

	// orders are contiguous starting at 1
	for i := 1; i <= len(defaultWorkshops); i++ {
		require.True(t, seen[i], "missing sort order %d", i)
	}
}

func TestAssistantPersonas(t *testing.T) {
	require.Len(t, AssistantTypes, 3)

	for _, tag := range AssistantTypes {
		require.True(t, ValidAssistant(tag))
		prompt, ok := AssistantPrompt(tag)
		require.True(t, ok)
		require.Contains(t, prompt, "español")
		require.NotEqual(t, "Asistente IA", AssistantDisplayName(tag))
	}

	require.False(t, ValidAssistant("life_coach"))
	_, ok := AssistantPrompt("life_coach")
	require.False(t, ok)
	require.Equal(t, "Asistente IA", AssistantDisplayName("life_coach"))
}
