package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/techconnect/backend/internal/delivery/http/handler"
	"github.com/techconnect/backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	eventHandler      *handler.EventHandler
	profileHandler    *handler.ProfileHandler
	discoverHandler   *handler.DiscoverHandler
	connectionHandler *handler.ConnectionHandler
	messageHandler    *handler.MessageHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	profileHandler *handler.ProfileHandler,
	discoverHandler *handler.DiscoverHandler,
	connectionHandler *handler.ConnectionHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		eventHandler:      eventHandler,
		profileHandler:    profileHandler,
		discoverHandler:   discoverHandler,
		connectionHandler: connectionHandler,
		messageHandler:    messageHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Tag lists (skills, interests, looking_for) reject whitespace-only
	// entries at the binding layer.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public except /me)
		auth := v1.Group("/auth")
		{
			auth.POST("/request-code", r.authHandler.RequestCode)
			auth.POST("/verify", r.authHandler.Verify)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Event catalog (public)
		v1.GET("/events", r.eventHandler.List)
		v1.GET("/events/:event_id", r.eventHandler.Get)

		// Everything inside an event requires a session
		ev := v1.Group("/events/:event_id")
		ev.Use(r.authMiddleware.RequireAuth())
		{
			ev.POST("/join", r.eventHandler.Join)

			profile := ev.Group("/profile")
			{
				profile.GET("", r.profileHandler.GetMyProfile)
				profile.PUT("", r.profileHandler.SaveMyProfile)
				profile.PATCH("/visibility", r.profileHandler.SetVisibility)
			}

			ev.GET("/attendees/:user_id", r.profileHandler.GetAttendee)

			ev.GET("/discover", r.discoverHandler.Discover)

			connections := ev.Group("/connections")
			{
				connections.GET("", r.connectionHandler.List)
				connections.POST("", r.connectionHandler.Request)
				connections.POST("/:connection_id/accept", r.connectionHandler.Accept)
			}

			messages := ev.Group("/messages/:partner_id")
			{
				messages.GET("", r.messageHandler.Thread)
				messages.POST("", r.messageHandler.Send)
				messages.POST("/read", r.messageHandler.MarkRead)
			}

			ev.GET("/conversations", r.messageHandler.Conversations)
			ev.GET("/icebreakers/:partner_id", r.messageHandler.Icebreakers)
		}
	}

	return router
}
