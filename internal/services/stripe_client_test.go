package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripeCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		require.Equal(t, "2500", r.PostForm.Get("amount"))
		require.Equal(t, "usd", r.PostForm.Get("currency"))
		require.Equal(t, "donation", r.PostForm.Get("metadata[purpose]"))

		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc", srv.URL)
	intent, err := client.CreatePaymentIntent(2500, "USD", map[string]string{"purpose": "donation"})
	require.NoError(t, err)
	require.Equal(t, "pi_123", intent.ID)
	require.Equal(t, "pi_123_secret", intent.ClientSecret)
}

func TestStripeGetPaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount_received":2500}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc", srv.URL)
	intent, err := client.GetPaymentIntent("pi_123")
	require.NoError(t, err)
	require.Equal(t, "succeeded", intent.Status)
	require.Equal(t, int64(2500), intent.AmountReceived)
}

func TestStripeErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc", srv.URL)
	_, err := client.CreatePaymentIntent(100, "usd", nil)
	require.ErrorIs(t, err, ErrPaymentProvider)
	require.Contains(t, err.Error(), "declined")
}
