package container

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/mentor-directory/internal/config"
	"github.com/gdugdh24/mentor-directory/internal/delivery/http"
	"github.com/gdugdh24/mentor-directory/internal/delivery/http/handler"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/database"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/event"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/memberstack"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/server"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	"github.com/gdugdh24/mentor-directory/internal/usecase/directory"
	"github.com/gdugdh24/mentor-directory/internal/usecase/membership"
	"github.com/gdugdh24/mentor-directory/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Store     repository.DocumentRepository
	Publisher event.Publisher
	Server    *server.Server
	log       *slog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *slog.Logger) (*Container, error) {
	store, err := database.NewDocumentStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", cfg.Store.Driver, err)
	}
	log.Info("document store ready", "driver", cfg.Store.Driver)

	publisher, err := event.NewRabbitPublisher(cfg.Events.RabbitURL, cfg.Events.Exchange, log)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	if cfg.Memberstack.APIKey == "" {
		log.Warn("memberstack api key is empty, member sync requests will be rejected upstream")
	}
	memberClient := memberstack.NewClient(&cfg.Memberstack)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(store, publisher, log)
	directoryUseCase := directory.NewDirectoryUseCase(store, log)
	membershipUseCase := membership.NewMembershipUseCase(memberClient, store, publisher, log)

	// Initialize handlers
	router := http.NewRouter(
		handler.NewDirectoryHandler(directoryUseCase, log),
		handler.NewProfileHandler(profileUseCase, log),
		handler.NewWebhookHandler(profileUseCase, log),
		handler.NewMembershipHandler(membershipUseCase, log),
		handler.NewHealthHandler(store, log),
		&cfg.CORS,
		log,
	)

	srv := server.NewServer(&cfg.Server, router.Setup(), log)

	return &Container{
		Config:    cfg,
		Store:     store,
		Publisher: publisher,
		Server:    srv,
		log:       log,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error

	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			c.log.Error("failed to close event publisher", "error", err)
			errs = append(errs, err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
	}

	return errors.Join(errs...)
}
