package handler

import (
	"context"
	"net/http"

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

	booking, err := h.booking.Create(r.Context(), domain.BookingCreationData{
		ItemId:   body.ItemId,
		BookerId: userId,
		Start:    *body.Start,
		End:      *body.End,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, booking)
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

	booking, err := h.booking.Approve(r.Context(), userId, bookingId, approved)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, booking)
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

	booking, err := h.booking.Get(r.Context(), userId, bookingId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, booking)
}

func (h *Handler) GetBookerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.booking.ListByBooker)
}

func (h *Handler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.booking.ListByOwner)
}

type bookingLister func(ctx context.Context, userId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error)

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

	bookings, err := list(r.Context(), userId, state, page)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, bookings)
}
