package setup

import (
	"time"

	"github.com/shareit-dev/shareit/gateway/internal/apiclient"
	"github.com/shareit-dev/shareit/gateway/internal/handler"
	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/jwt"
	"github.com/shareit-dev/shareit/shared/logger"
	"github.com/shareit-dev/shareit/shared/middleware/ratelimiter"
)

// idle client buckets are dropped after this
const limiterTTL = 10 * time.Minute

type Dependencies struct {
	Handler *handler.Handler
	Limiter *ratelimiter.UserRateLimiter
	// nil when booking_rate_limit_rps is 0
	BookingLimiter *ratelimiter.UserRateLimiter
	Config         *config.Config
}

// SetupDependencies wires the gateway. Nothing here does I/O, the server is
// only contacted when the first call is forwarded.
func SetupDependencies(cfg *config.Config) *Dependencies {
	gw := cfg.Public.Gateway

	var tokens jwt.JwtService
	if key := cfg.ServiceKey(); key != "" {
		tokens = jwt.New(key, cfg.ServiceTokenTTL())
	} else {
		logger.Log.Warn("service_key is empty, forwarding calls without service token")
	}
	client := apiclient.New(gw.ServerURL, gw.RequestTimeout, tokens)

	var bookingLimiter *ratelimiter.UserRateLimiter
	if gw.BookingRateLimitRPS > 0 {
		bookingLimiter = ratelimiter.New(gw.BookingRateLimitRPS, gw.BookingRateLimitBurst, limiterTTL)
	}

	return &Dependencies{
		Handler:        handler.New(client, cfg.Public.Paging),
		Limiter:        ratelimiter.New(gw.RateLimitRPS, gw.RateLimitBurst, limiterTTL),
		BookingLimiter: bookingLimiter,
		Config:         cfg,
	}
}
