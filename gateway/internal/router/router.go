package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shareit-dev/shareit/gateway/internal/handler"
	mw "github.com/shareit-dev/shareit/shared/middleware"
	"github.com/shareit-dev/shareit/shared/middleware/metrics"
	"github.com/shareit-dev/shareit/shared/middleware/ratelimiter"
)

type Options struct {
	AllowedOrigins []string
	// per client IP; nil disables limiting
	Limiter *ratelimiter.UserRateLimiter
	// per acting user on booking creation and approval; nil disables
	BookingLimiter *ratelimiter.UserRateLimiter
	RequestTimeout time.Duration
}

// New creates the gateway router. The route table mirrors the server's.
func New(h *handler.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(mw.RequestID)
	r.Use(mw.AccessLog)
	r.Use(metrics.Middleware("gateway"))
	r.Use(mw.SecurityHeaders(false))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", mw.SharerHeader, mw.RequestIDHeader},
		ExposedHeaders:   []string{mw.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter, mw.GetIP))
		}
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
				r.Get("/owner", h.GetOwnerBookings)
				r.Get("/{bookingId}", h.GetBooking)

				r.Group(func(r chi.Router) {
					if opts.BookingLimiter != nil {
						r.Use(mw.RateLimit(opts.BookingLimiter, mw.GetSharerFromContext))
					}
					r.Post("/", h.CreateBooking)
					r.Patch("/{bookingId}", h.ApproveBooking)
				})
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
