package container

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/techconnect/backend/internal/config"
	"github.com/techconnect/backend/internal/delivery/http"
	"github.com/techconnect/backend/internal/delivery/http/handler"
	"github.com/techconnect/backend/internal/delivery/http/middleware"
	"github.com/techconnect/backend/internal/infrastructure/database"
	"github.com/techconnect/backend/internal/infrastructure/gemini"
	"github.com/techconnect/backend/internal/infrastructure/server"
	"github.com/techconnect/backend/internal/repository/postgres"
	"github.com/techconnect/backend/internal/repository/redisstore"
	"github.com/techconnect/backend/internal/usecase/auth"
	"github.com/techconnect/backend/internal/usecase/connection"
	"github.com/techconnect/backend/internal/usecase/discover"
	"github.com/techconnect/backend/internal/usecase/event"
	"github.com/techconnect/backend/internal/usecase/messaging"
	"github.com/techconnect/backend/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client. AI suggestions are optional; the
	// messaging flow falls back to canned icebreakers without it.
	var icebreakers messaging.Icebreakers
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			slog.Warn("gemini client unavailable, using canned icebreakers", "error", err)
		} else {
			icebreakers = geminiClient
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	connectionRepo := postgres.NewConnectionRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	codeStore := redisstore.NewCodeStore(redisClient)
	discoverCache := redisstore.NewDiscoverCache(redisClient, cfg.Discover.CacheTTL)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		codeStore,
		cfg.JWT.Secret,
		cfg.Auth.CodeTTL,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	eventUseCase := event.NewEventUseCase(
		eventRepo,
		profileRepo,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		userRepo,
		connectionRepo,
	)

	discoverUseCase := discover.NewDiscoverUseCase(
		userRepo,
		profileRepo,
		connectionRepo,
		discoverCache,
	)

	connectionUseCase := connection.NewConnectionUseCase(
		connectionRepo,
		userRepo,
		profileRepo,
	)

	messagingUseCase := messaging.NewMessagingUseCase(
		messageRepo,
		profileRepo,
		userRepo,
		icebreakers,
		cfg.Messaging.DailyLimit,
		cfg.Messaging.Window,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, cfg.Server.IsDevelopment())
	eventHandler := handler.NewEventHandler(eventUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	discoverHandler := handler.NewDiscoverHandler(discoverUseCase)
	connectionHandler := handler.NewConnectionHandler(connectionUseCase, discoverUseCase)
	messageHandler := handler.NewMessageHandler(messagingUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		eventHandler,
		profileHandler,
		discoverHandler,
		connectionHandler,
		messageHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			slog.Error("failed to close redis", "error", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
