package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/unmillondepredicadores/backend/internal/config"
	"github.com/unmillondepredicadores/backend/internal/handlers"
	"github.com/unmillondepredicadores/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	workshopHandler *handlers.WorkshopHandler,
	paymentHandler *handlers.PaymentHandler,
	exportHandler *handlers.ExportHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Everything below requires a valid access token
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/workshops", workshopHandler.List)
	protected.Get("/workshops/:id", workshopHandler.Get)
	protected.Post("/workshops/:id/complete", workshopHandler.Complete)

	protected.Post("/ai/chat", chatHandler.Chat)
	protected.Get("/conversations", chatHandler.ListConversations)
	protected.Get("/conversations/:id", chatHandler.GetConversation)

	payments := protected.Group("/payments")
	payments.Post("/stripe/create-intent", paymentHandler.CreateStripeIntent)
	payments.Post("/stripe/confirm", paymentHandler.ConfirmStripe)
	payments.Post("/paypal/create-order", paymentHandler.CreatePayPalOrder)
	payments.Post("/paypal/capture-order", paymentHandler.CapturePayPalOrder)
	payments.Get("/donations", paymentHandler.ListDonations)
	payments.Get("/donations/:id", paymentHandler.GetDonation)

	export := protected.Group("/export")
	export.Get("/conversations/:id", exportHandler.ConversationPDF)
	export.Get("/workshops/:id/certificate", exportHandler.WorkshopCertificatePDF)

	// Admin panel (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/donations", adminHandler.Donations)
}
