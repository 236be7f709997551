package setup

import (
	"context"

	"github.com/shareit-dev/shareit/server/internal/handler"
	"github.com/shareit-dev/shareit/server/internal/service"
	"github.com/shareit-dev/shareit/server/internal/storage/pg"
	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/jwt"
	"github.com/shareit-dev/shareit/shared/logger"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
	// nil when no service key is configured
	ServiceTokens jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the server.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	cfg.MustValidatePg()
	storage, err := pg.New(ctx, cfg.Pg())
	if err != nil {
		return nil, err
	}
	if cfg.Public.Server.AutoMigrate {
		if err := storage.Migrate(ctx); err != nil {
			storage.Cleanup()
			return nil, err
		}
		logger.Log.Info("database schema is up to date")
	}

	user := service.NewUser(storage)
	item := service.NewItem(storage)
	booking := service.NewBooking(storage)
	request := service.NewItemRequest(storage)

	var tokens jwt.JwtService
	if key := cfg.ServiceKey(); key != "" {
		tokens = jwt.New(key, cfg.ServiceTokenTTL())
	} else {
		logger.Log.Warn("service_key is empty, accepting calls without service token")
	}

	return &Dependencies{
		Storage:       storage,
		Handler:       handler.New(user, item, booking, request, storage, cfg.Public.Paging),
		Config:        cfg,
		ServiceTokens: tokens,
	}, nil
}
