package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
)

func (c *APIClient) CreateBooking(ctx context.Context, userId int64, data api.CreateBookingRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPost, path: "/bookings", sharer: &userId, body: data})
}

func (c *APIClient) ApproveBooking(ctx context.Context, userId, bookingId int64, approved bool) (*Reply, error) {
	return c.do(ctx, call{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/bookings/%d", bookingId),
		sharer: &userId,
		query:  url.Values{"approved": {strconv.FormatBool(approved)}},
	})
}

func (c *APIClient) GetBooking(ctx context.Context, userId, bookingId int64) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/bookings/%d", bookingId), sharer: &userId})
}

func (c *APIClient) GetBookerBookings(ctx context.Context, userId int64, state domain.BookingState, page domain.Page) (*Reply, error) {
	return c.listBookings(ctx, "/bookings", userId, state, page)
}

func (c *APIClient) GetOwnerBookings(ctx context.Context, userId int64, state domain.BookingState, page domain.Page) (*Reply, error) {
	return c.listBookings(ctx, "/bookings/owner", userId, state, page)
}

func (c *APIClient) listBookings(ctx context.Context, path string, userId int64, state domain.BookingState, page domain.Page) (*Reply, error) {
	query := pageQuery(page.From, page.Size)
	query.Set("state", string(state))
	return c.do(ctx, call{method: http.MethodGet, path: path, sharer: &userId, query: query})
}
