package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/unmillondepredicadores/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrWorkshopNotFound = errors.New("workshop not found")

type WorkshopService struct {
	db *gorm.DB
}

func NewWorkshopService(db *gorm.DB) *WorkshopService {
	return &WorkshopService{db: db}
}

// List returns the full catalog in display order.
func (s *WorkshopService) List() ([]models.Workshop, error) {
	var workshops []models.Workshop
	if err := s.db.Order("sort_order ASC").Find(&workshops).Error; err != nil {
		return nil, err
	}
	return workshops, nil
}

func (s *WorkshopService) Get(id uuid.UUID) (*models.Workshop, error) {
	var workshop models.Workshop
	if err := s.db.First(&workshop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	return &workshop, nil
}

// Complete records a workshop in the user's completed_workshops progress list.
// Completing the same workshop twice is a no-op.
func (s *WorkshopService) Complete(userID, workshopID uuid.UUID) error {
	if _, err := s.Get(workshopID); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Progress == nil {
		user.Progress = datatypes.JSONMap{}
	}
	completed, _ := user.Progress[models.ProgressCompletedWorkshops].([]interface{})
	id := workshopID.String()
	for _, entry := range completed {
		if entry == id {
			return nil
		}
	}
	user.Progress[models.ProgressCompletedWorkshops] = append(completed, id)

	if err := s.db.Model(&user).Update("progress", user.Progress).Error; err != nil {
		return fmt.Errorf("failed to update workshop progress: %w", err)
	}
	return nil
}

// HasCompleted reports whether the user finished the given workshop.
func (s *WorkshopService) HasCompleted(user *models.User, workshopID uuid.UUID) bool {
	if user.Progress == nil {
		return false
	}
	completed, _ := user.Progress[models.ProgressCompletedWorkshops].([]interface{})
	id := workshopID.String()
	for _, entry := range completed {
		if entry == id {
			return true
		}
	}
	return false
}
