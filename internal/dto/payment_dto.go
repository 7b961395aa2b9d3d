package dto

type DonationRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	DonorName  string  `json:"donor_name,omitempty"`
	DonorEmail string  `json:"donor_email,omitempty"`
	Message    string  `json:"message,omitempty"`
}

type StripeIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	DonationID      string `json:"donation_id"`
}

type PayPalOrderResponse struct {
	OrderID     string `json:"order_id"`
	ApprovalURL string `json:"approval_url"`
	DonationID  string `json:"donation_id"`
}

type PaymentConfirmation struct {
	PaymentID string `json:"payment_id"`
}

type PaymentResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
