package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shareit-dev/shareit/server/internal/handler"
	"github.com/shareit-dev/shareit/shared/jwt"
	mw "github.com/shareit-dev/shareit/shared/middleware"
	"github.com/shareit-dev/shareit/shared/middleware/metrics"
)

type Options struct {
	// ServiceTokens verifies the gateway's token; nil accepts every caller.
	ServiceTokens  jwt.JwtService
	RequestTimeout time.Duration
}

// New creates the server router. Probes and /metrics stay outside service auth.
func New(h *handler.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(mw.RequestID)
	r.Use(mw.AccessLog)
	r.Use(metrics.Middleware("server"))
	r.Use(mw.SecurityHeaders(false))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(mw.ServiceAuth(opts.ServiceTokens))
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.GetUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{userId}", h.GetUser)
			r.Patch("/{userId}", h.UpdateUser)
			r.Delete("/{userId}", h.DeleteUser)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.SharerUserId)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", h.GetOwnItems)
				r.Post("/", h.CreateItem)
				r.Get("/search", h.SearchItems)
				r.Get("/{itemId}", h.GetItem)
				r.Patch("/{itemId}", h.UpdateItem)
				r.Post("/{itemId}/comment", h.CreateComment)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", h.GetBookerBookings)
				r.Post("/", h.CreateBooking)
				r.Get("/owner", h.GetOwnerBookings)
				r.Get("/{bookingId}", h.GetBooking)
				r.Patch("/{bookingId}", h.ApproveBooking)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.GetOwnItemRequests)
				r.Post("/", h.CreateItemRequest)
				r.Get("/all", h.GetOtherItemRequests)
				r.Get("/{requestId}", h.GetItemRequest)
			})
		})
	})

	return r
}
