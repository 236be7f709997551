package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shareit-dev/shareit/server/internal/service"
	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
	mw "github.com/shareit-dev/shareit/shared/middleware"
	"github.com/shareit-dev/shareit/shared/utils"
)

// HealthChecker is satisfied by the storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user    service.UserService
	item    service.ItemService
	booking service.BookingService
	request service.ItemRequestService
	health  HealthChecker
	paging  config.Paging
}

func New(user service.UserService, item service.ItemService, booking service.BookingService, request service.ItemRequestService, health HealthChecker, paging config.Paging) *Handler {
	return &Handler{user, item, booking, request, health, paging}
}

// sharer returns the acting user set by the SharerUserId middleware.
func sharer(r *http.Request) (domain.UserId, error) {
	id, ok := mw.GetUserIdFromContext(r)
	if !ok {
		return 0, errors.BadRequest("Required request header '%s' is not present", mw.SharerHeader)
	}
	return id, nil
}

func pathId(r *http.Request, name string) (int64, error) {
	return utils.ParseIntParam(chi.URLParam(r, name), name)
}

func (h *Handler) page(r *http.Request) (domain.Page, error) {
	return utils.ParsePage(r, h.paging.DefaultSize, h.paging.MaxSize)
}
