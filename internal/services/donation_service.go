package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/unmillondepredicadores/backend/internal/dto"
	"github.com/unmillondepredicadores/backend/internal/models"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidAmount    = errors.New("invalid donation amount")
)

// DonationService records donations and drives the Stripe / PayPal flows.
// A donation row is created in pending state before contacting the provider
// and resolved to completed or failed on confirmation.
type DonationService struct {
	db     *gorm.DB
	stripe *StripeClient
	paypal *PayPalClient
}

func NewDonationService(db *gorm.DB, stripe *StripeClient, paypal *PayPalClient) *DonationService {
	return &DonationService{db: db, stripe: stripe, paypal: paypal}
}

func (s *DonationService) CreateStripeIntent(userID uuid.UUID, req *dto.DonationRequest) (*dto.StripeIntentResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	currency := normalizeCurrency(req.Currency)

	intent, err := s.stripe.CreatePaymentIntent(amountToCents(req.Amount), currency, map[string]string{
		"user_id": userID.String(),
		"purpose": "donation",
	})
	if err != nil {
		return nil, err
	}

	donation := models.Donation{
		UserID:        &userID,
		Amount:        req.Amount,
		Currency:      currency,
		PaymentMethod: models.PaymentMethodStripe,
		PaymentRef:    intent.ID,
		Status:        models.DonationStatusPending,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Message:       req.Message,
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	return &dto.StripeIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		DonationID:      donation.ID.String(),
	}, nil
}

func (s *DonationService) ConfirmStripe(userID uuid.UUID, paymentIntentID string) (*dto.PaymentResult, error) {
	intent, err := s.stripe.GetPaymentIntent(paymentIntentID)
	if err != nil {
		return nil, err
	}

	status := models.DonationStatusFailed
	result := &dto.PaymentResult{Success: false, Status: intent.Status, Message: "Error en el pago"}
	if intent.Status == "succeeded" {
		status = models.DonationStatusCompleted
		result.Success = true
		result.Message = "¡Donación procesada exitosamente!"
	}

	if err := s.resolve(userID, models.PaymentMethodStripe, paymentIntentID, status, intent); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DonationService) CreatePayPalOrder(userID uuid.UUID, req *dto.DonationRequest) (*dto.PayPalOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	currency := normalizeCurrency(req.Currency)

	description := "Donación para Un Millón de Predicadores - Apoyo ministerial"
	if req.Message != "" {
		description = "Donación para Un Millón de Predicadores - " + req.Message
	}

	order, err := s.paypal.CreateOrder(req.Amount, currency, description)
	if err != nil {
		return nil, err
	}

	donation := models.Donation{
		UserID:        &userID,
		Amount:        req.Amount,
		Currency:      currency,
		PaymentMethod: models.PaymentMethodPayPal,
		PaymentRef:    order.ID,
		Status:        models.DonationStatusPending,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Message:       req.Message,
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	return &dto.PayPalOrderResponse{
		OrderID:     order.ID,
		ApprovalURL: order.ApprovalURL(),
		DonationID:  donation.ID.String(),
	}, nil
}

func (s *DonationService) CapturePayPalOrder(userID uuid.UUID, orderID string) (*dto.PaymentResult, error) {
	order, err := s.paypal.CaptureOrder(orderID)
	if err != nil {
		return nil, err
	}

	status := models.DonationStatusFailed
	result := &dto.PaymentResult{Success: false, Status: order.Status, Message: "Error en el pago"}
	if order.Status == "COMPLETED" {
		status = models.DonationStatusCompleted
		result.Success = true
		result.Message = "¡Donación procesada exitosamente con PayPal!"
	}

	if err := s.resolve(userID, models.PaymentMethodPayPal, orderID, status, order); err != nil {
		return nil, err
	}
	return result, nil
}

// resolve transitions a pending donation to its final status, keeping the raw
// provider payload for later reconciliation.
func (s *DonationService) resolve(userID uuid.UUID, method, paymentRef, status string, providerData interface{}) error {
	raw, err := json.Marshal(providerData)
	if err != nil {
		raw = []byte("{}")
	}

	updates := map[string]interface{}{
		"status":        status,
		"provider_data": raw,
	}
	if status == models.DonationStatusCompleted {
		now := time.Now().UTC()
		updates["completed_at"] = &now
	}

	res := s.db.Model(&models.Donation{}).
		Where("user_id = ? AND payment_method = ? AND payment_ref = ?", userID, method, paymentRef).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update donation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

func (s *DonationService) ListByUser(userID uuid.UUID) ([]models.Donation, error) {
	var donations []models.Donation
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// ListAll returns every donation. Admin use only.
func (s *DonationService) ListAll(limit int) ([]models.Donation, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var donations []models.Donation
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

func (s *DonationService) Get(userID, donationID uuid.UUID) (*models.Donation, error) {
	var donation models.Donation
	err := s.db.Where("id = ? AND user_id = ?", donationID, userID).First(&donation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDonationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load donation: %w", err)
	}
	return &donation, nil
}

func normalizeCurrency(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}

// amountToCents rounds to the nearest cent; plain truncation would turn
// 10.55 into 1054 because of float representation.
func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
