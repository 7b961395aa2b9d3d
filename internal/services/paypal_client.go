package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PayPalClient talks to the PayPal Orders v2 API, fetching a fresh OAuth
// access token per call.
type PayPalClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

func NewPayPalClient(clientID, clientSecret, baseURL string) *PayPalClient {
	return &PayPalClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

type PayPalLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type PayPalOrder struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Links  []PayPalLink `json:"links"`
}

// ApprovalURL returns the buyer-approval link of a freshly created order.
func (o *PayPalOrder) ApprovalURL() string {
	for _, link := range o.Links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}

func (c *PayPalClient) accessToken() (string, error) {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: paypal authentication failed (status %d)", ErrPaymentProvider, resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil || tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: invalid paypal token response", ErrPaymentProvider)
	}
	return tokenResp.AccessToken, nil
}

func (c *PayPalClient) CreateOrder(amount float64, currency, description string) (*PayPalOrder, error) {
	token, err := c.accessToken()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{{
			"amount": map[string]string{
				"currency_code": strings.ToUpper(currency),
				"value":         fmt.Sprintf("%.2f", amount),
			},
			"description": description,
		}},
	})
	if err != nil {
		return nil, err
	}

	return c.doOrder(http.MethodPost, "/v2/checkout/orders", token, body)
}

func (c *PayPalClient) CaptureOrder(orderID string) (*PayPalOrder, error) {
	token, err := c.accessToken()
	if err != nil {
		return nil, err
	}
	return c.doOrder(http.MethodPost, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", token, nil)
}

func (c *PayPalClient) doOrder(method, path, token string, body []byte) (*PayPalOrder, error) {
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: paypal status %d", ErrPaymentProvider, resp.StatusCode)
	}

	var order PayPalOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: invalid paypal response: %v", ErrPaymentProvider, err)
	}
	return &order, nil
}
