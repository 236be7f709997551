package handler

import (
	"context"
	"net/http"

	"github.com/shareit-dev/shareit/gateway/internal/apiclient"
	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/utils"
)

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.CreateBookingRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := body.CheckPeriod(h.now()); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.CreateBooking(r.Context(), userId, body)
	relay(w, r, reply, err)
}

func (h *Handler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	bookingId, err := pathId(r, "bookingId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	approved, err := utils.QueryBool(r, "approved")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.ApproveBooking(r.Context(), userId, bookingId, approved)
	relay(w, r, reply, err)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	bookingId, err := pathId(r, "bookingId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := h.client.GetBooking(r.Context(), userId, bookingId)
	relay(w, r, reply, err)
}

func (h *Handler) GetBookerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.client.GetBookerBookings)
}

func (h *Handler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.client.GetOwnerBookings)
}

type bookingLister func(ctx context.Context, userId int64, state domain.BookingState, page domain.Page) (*apiclient.Reply, error)

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request, list bookingLister) {
	userId, err := sharer(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	state, err := domain.ParseBookingState(r.URL.Query().Get("state"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("%s", err.Error()))
		return
	}
	page, err := h.page(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	reply, err := list(r.Context(), userId, state, page)
	relay(w, r, reply, err)
}
