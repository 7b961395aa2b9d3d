package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/unmillondepredicadores/backend/internal/dto"
	"github.com/unmillondepredicadores/backend/internal/middleware"
	"github.com/unmillondepredicadores/backend/internal/services"
)

type ExportHandler struct {
	exportService   *services.ExportService
	chatService     *services.ChatService
	workshopService *services.WorkshopService
	users           services.UserStore
}

func NewExportHandler(exportService *services.ExportService, chatService *services.ChatService, workshopService *services.WorkshopService, users services.UserStore) *ExportHandler {
	return &ExportHandler{
		exportService:   exportService,
		chatService:     chatService,
		workshopService: workshopService,
		users:           users,
	}
}

func (h *ExportHandler) ConversationPDF(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation id",
		})
	}

	conv, err := h.chatService.GetConversation(userID, convID)
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	user, err := h.users.FindUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	pdfBytes, err := h.exportService.ConversationPDF(conv, user.FullName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=conversacion-%s.pdf", conv.AssistantType))
	return c.Send(pdfBytes)
}

func (h *ExportHandler) WorkshopCertificatePDF(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workshopID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid workshop id",
		})
	}

	workshop, err := h.workshopService.Get(workshopID)
	if err != nil {
		if errors.Is(err, services.ErrWorkshopNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	user, err := h.users.FindUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	if !h.workshopService.HasCompleted(user, workshopID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Workshop not completed yet",
		})
	}

	pdfBytes, err := h.exportService.WorkshopCertificatePDF(workshop, user.FullName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=certificado-%d.pdf", workshop.SortOrder))
	return c.Send(pdfBytes)
}
