package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/unmillondepredicadores/backend/internal/dto"
	"github.com/unmillondepredicadores/backend/internal/services"
)

type AdminHandler struct {
	metrics         *services.MetricsService
	donationService *services.DonationService
}

func NewAdminHandler(metrics *services.MetricsService, donationService *services.DonationService) *AdminHandler {
	return &AdminHandler{metrics: metrics, donationService: donationService}
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.metrics.PlatformStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(stats)
}

func (h *AdminHandler) Donations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	donations, err := h.donationService.ListAll(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(donations)
}
