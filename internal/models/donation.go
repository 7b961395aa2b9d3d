package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"

	PaymentMethodStripe = "stripe"
	PaymentMethodPayPal = "paypal"
)

type Donation struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Amount        float64        `gorm:"not null" json:"amount"`
	Currency      string         `gorm:"size:10;default:'USD'" json:"currency"`
	PaymentMethod string         `gorm:"size:20;not null" json:"payment_method"`
	PaymentRef    string         `gorm:"size:255;index" json:"payment_ref"`
	Status        string         `gorm:"size:20;default:'pending'" json:"status"`
	DonorName     string         `gorm:"size:255" json:"donor_name,omitempty"`
	DonorEmail    string         `gorm:"size:255" json:"donor_email,omitempty"`
	Message       string         `gorm:"type:text" json:"message,omitempty"`
	ProviderData  datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
}
