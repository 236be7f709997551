package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/domain"
	mw "github.com/shareit-dev/shareit/shared/middleware"
)

type MockUserService struct {
	MockCreate func(data domain.UserCreationData) (domain.User, error)
	MockGet    func(id domain.UserId) (domain.User, error)
	MockList   func() ([]domain.User, error)
	MockUpdate func(id domain.UserId, data domain.UserUpdateData) (domain.User, error)
	MockDelete func(id domain.UserId) error
}

func (m *MockUserService) Create(_ context.Context, data domain.UserCreationData) (domain.User, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.User{Id: 1, Name: data.Name, Email: data.Email}, nil
}

func (m *MockUserService) Get(_ context.Context, id domain.UserId) (domain.User, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockUserService) List(_ context.Context) ([]domain.User, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return []domain.User{}, nil
}

func (m *MockUserService) Update(_ context.Context, id domain.UserId, data domain.UserUpdateData) (domain.User, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, data)
	}
	return domain.User{Id: id}, nil
}

func (m *MockUserService) Delete(_ context.Context, id domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockItemService struct {
	MockCreate      func(data domain.ItemCreationData) (domain.Item, error)
	MockUpdate      func(userId domain.UserId, itemId domain.ItemId, data domain.ItemUpdateData) (domain.Item, error)
	MockGet         func(userId domain.UserId, itemId domain.ItemId) (domain.ItemWithInfo, error)
	MockListByOwner func(ownerId domain.UserId, page domain.Page) ([]domain.ItemWithInfo, error)
	MockSearch      func(userId domain.UserId, text string, page domain.Page) ([]domain.Item, error)
	MockAddComment  func(data domain.CommentCreationData) (domain.Comment, error)
}

func (m *MockItemService) Create(_ context.Context, data domain.ItemCreationData) (domain.Item, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Item{Id: 1, Name: data.Name}, nil
}

func (m *MockItemService) Update(_ context.Context, userId domain.UserId, itemId domain.ItemId, data domain.ItemUpdateData) (domain.Item, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(userId, itemId, data)
	}
	return domain.Item{Id: itemId}, nil
}

func (m *MockItemService) Get(_ context.Context, userId domain.UserId, itemId domain.ItemId) (domain.ItemWithInfo, error) {
	if m.MockGet != nil {
		return m.MockGet(userId, itemId)
	}
	return domain.ItemWithInfo{Item: domain.Item{Id: itemId}, Comments: []domain.Comment{}}, nil
}

func (m *MockItemService) ListByOwner(_ context.Context, ownerId domain.UserId, page domain.Page) ([]domain.ItemWithInfo, error) {
	if m.MockListByOwner != nil {
		return m.MockListByOwner(ownerId, page)
	}
	return []domain.ItemWithInfo{}, nil
}

func (m *MockItemService) Search(_ context.Context, userId domain.UserId, text string, page domain.Page) ([]domain.Item, error) {
	if m.MockSearch != nil {
		return m.MockSearch(userId, text, page)
	}
	return []domain.Item{}, nil
}

func (m *MockItemService) AddComment(_ context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	if m.MockAddComment != nil {
		return m.MockAddComment(data)
	}
	return domain.Comment{Id: 1, Text: data.Text}, nil
}

type MockBookingService struct {
	MockCreate       func(data domain.BookingCreationData) (domain.Booking, error)
	MockApprove      func(ownerId domain.UserId, bookingId domain.BookingId, approved bool) (domain.Booking, error)
	MockGet          func(userId domain.UserId, bookingId domain.BookingId) (domain.Booking, error)
	MockListByBooker func(bookerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error)
	MockListByOwner  func(ownerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error)
}

func (m *MockBookingService) Create(_ context.Context, data domain.BookingCreationData) (domain.Booking, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Booking{Id: 1, Start: data.Start, End: data.End, Status: domain.StatusWaiting}, nil
}

func (m *MockBookingService) Approve(_ context.Context, ownerId domain.UserId, bookingId domain.BookingId, approved bool) (domain.Booking, error) {
	if m.MockApprove != nil {
		return m.MockApprove(ownerId, bookingId, approved)
	}
	return domain.Booking{Id: bookingId}, nil
}

func (m *MockBookingService) Get(_ context.Context, userId domain.UserId, bookingId domain.BookingId) (domain.Booking, error) {
	if m.MockGet != nil {
		return m.MockGet(userId, bookingId)
	}
	return domain.Booking{Id: bookingId}, nil
}

func (m *MockBookingService) ListByBooker(_ context.Context, bookerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error) {
	if m.MockListByBooker != nil {
		return m.MockListByBooker(bookerId, state, page)
	}
	return []domain.Booking{}, nil
}

func (m *MockBookingService) ListByOwner(_ context.Context, ownerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error) {
	if m.MockListByOwner != nil {
		return m.MockListByOwner(ownerId, state, page)
	}
	return []domain.Booking{}, nil
}

type MockItemRequestService struct {
	MockCreate     func(data domain.ItemRequestCreationData) (domain.ItemRequest, error)
	MockListOwn    func(userId domain.UserId) ([]domain.ItemRequestWithItems, error)
	MockListOthers func(userId domain.UserId, page domain.Page) ([]domain.ItemRequestWithItems, error)
	MockGet        func(userId domain.UserId, requestId domain.RequestId) (domain.ItemRequestWithItems, error)
}

func (m *MockItemRequestService) Create(_ context.Context, data domain.ItemRequestCreationData) (domain.ItemRequest, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.ItemRequest{Id: 1, Description: data.Description}, nil
}

func (m *MockItemRequestService) ListOwn(_ context.Context, userId domain.UserId) ([]domain.ItemRequestWithItems, error) {
	if m.MockListOwn != nil {
		return m.MockListOwn(userId)
	}
	return []domain.ItemRequestWithItems{}, nil
}

func (m *MockItemRequestService) ListOthers(_ context.Context, userId domain.UserId, page domain.Page) ([]domain.ItemRequestWithItems, error) {
	if m.MockListOthers != nil {
		return m.MockListOthers(userId, page)
	}
	return []domain.ItemRequestWithItems{}, nil
}

func (m *MockItemRequestService) Get(_ context.Context, userId domain.UserId, requestId domain.RequestId) (domain.ItemRequestWithItems, error) {
	if m.MockGet != nil {
		return m.MockGet(userId, requestId)
	}
	return domain.ItemRequestWithItems{ItemRequest: domain.ItemRequest{Id: requestId}, Items: []domain.Item{}}, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

var testPaging = config.Paging{DefaultSize: 20, MaxSize: 100}

func newTestHandler() *Handler {
	return New(&MockUserService{}, &MockItemService{}, &MockBookingService{}, &MockItemRequestService{}, &MockHealthChecker{}, testPaging)
}

// newTestRouter mounts the handlers the way the server does, sharer middleware included.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.GetUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{userId}", h.GetUser)
		r.Patch("/{userId}", h.UpdateUser)
		r.Delete("/{userId}", h.DeleteUser)
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.SharerUserId)
		r.Get("/items", h.GetOwnItems)
		r.Post("/items", h.CreateItem)
		r.Get("/items/search", h.SearchItems)
		r.Get("/items/{itemId}", h.GetItem)
		r.Patch("/items/{itemId}", h.UpdateItem)
		r.Post("/items/{itemId}/comment", h.CreateComment)
		r.Get("/bookings", h.GetBookerBookings)
		r.Post("/bookings", h.CreateBooking)
		r.Get("/bookings/owner", h.GetOwnerBookings)
		r.Get("/bookings/{bookingId}", h.GetBooking)
		r.Patch("/bookings/{bookingId}", h.ApproveBooking)
		r.Get("/requests", h.GetOwnItemRequests)
		r.Post("/requests", h.CreateItemRequest)
		r.Get("/requests/all", h.GetOtherItemRequests)
		r.Get("/requests/{requestId}", h.GetItemRequest)
	})
	return r
}

func do(t *testing.T, router http.Handler, method, url string, userId domain.UserId, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	if userId != 0 {
		req.Header.Set(mw.SharerHeader, strconv.FormatInt(userId, 10))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
