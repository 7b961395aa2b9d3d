package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func paypalTestServer(t *testing.T, orderHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "client-id", user)
		require.Equal(t, "client-secret", pass)
		_, _ = w.Write([]byte(`{"access_token":"token-abc"}`))
	})
	mux.HandleFunc("/v2/checkout/orders", orderHandler)
	mux.HandleFunc("/v2/checkout/orders/", orderHandler)
	return httptest.NewServer(mux)
}

func TestPayPalCreateOrder(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var body struct {
			Intent        string `json:"intent"`
			PurchaseUnits []struct {
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
			} `json:"purchase_units"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "CAPTURE", body.Intent)
		require.Len(t, body.PurchaseUnits, 1)
		require.Equal(t, "USD", body.PurchaseUnits[0].Amount.CurrencyCode)
		require.Equal(t, "25.00", body.PurchaseUnits[0].Amount.Value)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ORDER1","status":"CREATED","links":[
			{"href":"https://paypal.test/self","rel":"self"},
			{"href":"https://paypal.test/approve","rel":"approve"}]}`))
	})
	defer srv.Close()

	client := NewPayPalClient("client-id", "client-secret", srv.URL)
	order, err := client.CreateOrder(25, "usd", "Donación")
	require.NoError(t, err)
	require.Equal(t, "ORDER1", order.ID)
	require.Equal(t, "https://paypal.test/approve", order.ApprovalURL())
}

func TestPayPalCaptureOrder(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/checkout/orders/ORDER1/capture", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ORDER1","status":"COMPLETED"}`))
	})
	defer srv.Close()

	client := NewPayPalClient("client-id", "client-secret", srv.URL)
	order, err := client.CaptureOrder("ORDER1")
	require.NoError(t, err)
	require.Equal(t, "COMPLETED", order.Status)
}

func TestPayPalAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewPayPalClient("bad", "creds", srv.URL)
	_, err := client.CreateOrder(10, "usd", "x")
	require.ErrorIs(t, err, ErrPaymentProvider)
}
