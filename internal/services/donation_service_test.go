package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountToCents(t *testing.T) {
	// 10.55 has no exact float64 representation; truncation yields 1054
	require.Equal(t, int64(1055), amountToCents(10.55))
	require.Equal(t, int64(2500), amountToCents(25))
	require.Equal(t, int64(1), amountToCents(0.01))
	require.Equal(t, int64(999), amountToCents(9.99))
	require.Equal(t, int64(0), amountToCents(0))
}

func TestNormalizeCurrency(t *testing.T) {
	require.Equal(t, "USD", normalizeCurrency(""))
	require.Equal(t, "EUR", normalizeCurrency("EUR"))
}
