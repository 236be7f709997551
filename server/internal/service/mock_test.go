package service

import (
	"context"

	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
)

// MockStorage mocks every storage interface of the package. Unset user lookups
// succeed, other unset methods return zero values.
type MockStorage struct {
	saveUserFunc   func(data domain.UserCreationData) (domain.User, error)
	userFunc       func(id domain.UserId) (domain.User, error)
	usersFunc      func() ([]domain.User, error)
	updateUserFunc func(id domain.UserId, data domain.UserUpdateData) (domain.User, error)
	deleteUserFunc func(id domain.UserId) error

	saveItemFunc        func(data domain.ItemCreationData) (domain.Item, error)
	itemFunc            func(id domain.ItemId) (domain.Item, error)
	updateItemFunc      func(id domain.ItemId, data domain.ItemUpdateData) (domain.Item, error)
	itemsByOwnerFunc    func(ownerId domain.UserId, page domain.Page) ([]domain.Item, error)
	searchItemsFunc     func(text string, page domain.Page) ([]domain.Item, error)
	itemsByRequestsFunc func(ids []domain.RequestId) (map[domain.RequestId][]domain.Item, error)

	saveCommentFunc     func(data domain.CommentCreationData) (domain.Comment, error)
	commentsByItemsFunc func(ids []domain.ItemId) (map[domain.ItemId][]domain.Comment, error)

	saveBookingFunc             func(data domain.BookingCreationData, check func(domain.Item) error) (domain.Booking, error)
	bookingFunc                 func(id domain.BookingId) (domain.Booking, error)
	updateBookingStatusFunc     func(id domain.BookingId, status domain.BookingStatus, check func(domain.Booking) error) (domain.Booking, error)
	bookingsByBookerFunc        func(bookerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error)
	bookingsByOwnerFunc         func(ownerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error)
	ownerHasBookingsFunc        func(ownerId domain.UserId) (bool, error)
	lastAndNextBookingsFunc     func(ids []domain.ItemId, now domain.DateTime) (map[domain.ItemId]domain.BookingShort, map[domain.ItemId]domain.BookingShort, error)
	hasFinishedBookingFunc      func(bookerId domain.UserId, itemId domain.ItemId, now domain.DateTime) (bool, error)
	saveItemRequestFunc         func(data domain.ItemRequestCreationData) (domain.ItemRequest, error)
	itemRequestFunc             func(id domain.RequestId) (domain.ItemRequest, error)
	itemRequestsByRequesterFunc func(requesterId domain.UserId) ([]domain.ItemRequest, error)
	otherItemRequestsFunc       func(userId domain.UserId, page domain.Page) ([]domain.ItemRequest, error)
}

func (m *MockStorage) SaveUser(_ context.Context, data domain.UserCreationData) (domain.User, error) {
	if m.saveUserFunc != nil {
		return m.saveUserFunc(data)
	}
	return domain.User{Id: 1, Name: data.Name, Email: data.Email}, nil
}

func (m *MockStorage) User(_ context.Context, id domain.UserId) (domain.User, error) {
	if m.userFunc != nil {
		return m.userFunc(id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockStorage) Users(_ context.Context) ([]domain.User, error) {
	if m.usersFunc != nil {
		return m.usersFunc()
	}
	return []domain.User{}, nil
}

func (m *MockStorage) UpdateUser(_ context.Context, id domain.UserId, data domain.UserUpdateData) (domain.User, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(id, data)
	}
	return domain.User{Id: id}, nil
}

func (m *MockStorage) DeleteUser(_ context.Context, id domain.UserId) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(id)
	}
	return nil
}

func (m *MockStorage) SaveItem(_ context.Context, data domain.ItemCreationData) (domain.Item, error) {
	if m.saveItemFunc != nil {
		return m.saveItemFunc(data)
	}
	return domain.Item{Id: 1, Name: data.Name, Description: data.Description, Available: data.Available, OwnerId: data.OwnerId, RequestId: data.RequestId}, nil
}

func (m *MockStorage) Item(_ context.Context, id domain.ItemId) (domain.Item, error) {
	if m.itemFunc != nil {
		return m.itemFunc(id)
	}
	return domain.Item{Id: id}, nil
}

func (m *MockStorage) UpdateItem(_ context.Context, id domain.ItemId, data domain.ItemUpdateData) (domain.Item, error) {
	if m.updateItemFunc != nil {
		return m.updateItemFunc(id, data)
	}
	return domain.Item{Id: id}, nil
}

func (m *MockStorage) ItemsByOwner(_ context.Context, ownerId domain.UserId, page domain.Page) ([]domain.Item, error) {
	if m.itemsByOwnerFunc != nil {
		return m.itemsByOwnerFunc(ownerId, page)
	}
	return []domain.Item{}, nil
}

func (m *MockStorage) SearchItems(_ context.Context, text string, page domain.Page) ([]domain.Item, error) {
	if m.searchItemsFunc != nil {
		return m.searchItemsFunc(text, page)
	}
	return []domain.Item{}, nil
}

func (m *MockStorage) ItemsByRequests(_ context.Context, ids []domain.RequestId) (map[domain.RequestId][]domain.Item, error) {
	if m.itemsByRequestsFunc != nil {
		return m.itemsByRequestsFunc(ids)
	}
	return map[domain.RequestId][]domain.Item{}, nil
}

func (m *MockStorage) SaveComment(_ context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	if m.saveCommentFunc != nil {
		return m.saveCommentFunc(data)
	}
	return domain.Comment{Id: 1, Text: data.Text, Created: data.Created, ItemId: data.ItemId, AuthorId: data.AuthorId}, nil
}

func (m *MockStorage) CommentsByItems(_ context.Context, ids []domain.ItemId) (map[domain.ItemId][]domain.Comment, error) {
	if m.commentsByItemsFunc != nil {
		return m.commentsByItemsFunc(ids)
	}
	return map[domain.ItemId][]domain.Comment{}, nil
}

func (m *MockStorage) SaveBooking(_ context.Context, data domain.BookingCreationData, check func(domain.Item) error) (domain.Booking, error) {
	if m.saveBookingFunc != nil {
		return m.saveBookingFunc(data, check)
	}
	return domain.Booking{Id: 1, Start: data.Start, End: data.End, Status: domain.StatusWaiting}, nil
}

func (m *MockStorage) Booking(_ context.Context, id domain.BookingId) (domain.Booking, error) {
	if m.bookingFunc != nil {
		return m.bookingFunc(id)
	}
	return domain.Booking{}, errors.NotFound("Booking with id %d not found", id)
}

func (m *MockStorage) UpdateBookingStatus(_ context.Context, id domain.BookingId, status domain.BookingStatus, check func(domain.Booking) error) (domain.Booking, error) {
	if m.updateBookingStatusFunc != nil {
		return m.updateBookingStatusFunc(id, status, check)
	}
	return domain.Booking{Id: id, Status: status}, nil
}

func (m *MockStorage) BookingsByBooker(_ context.Context, bookerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error) {
	if m.bookingsByBookerFunc != nil {
		return m.bookingsByBookerFunc(bookerId, state, now, page)
	}
	return []domain.Booking{}, nil
}

func (m *MockStorage) BookingsByOwner(_ context.Context, ownerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error) {
	if m.bookingsByOwnerFunc != nil {
		return m.bookingsByOwnerFunc(ownerId, state, now, page)
	}
	return []domain.Booking{}, nil
}

func (m *MockStorage) OwnerHasBookings(_ context.Context, ownerId domain.UserId) (bool, error) {
	if m.ownerHasBookingsFunc != nil {
		return m.ownerHasBookingsFunc(ownerId)
	}
	return true, nil
}

func (m *MockStorage) LastAndNextBookings(_ context.Context, ids []domain.ItemId, now domain.DateTime) (map[domain.ItemId]domain.BookingShort, map[domain.ItemId]domain.BookingShort, error) {
	if m.lastAndNextBookingsFunc != nil {
		return m.lastAndNextBookingsFunc(ids, now)
	}
	return map[domain.ItemId]domain.BookingShort{}, map[domain.ItemId]domain.BookingShort{}, nil
}

func (m *MockStorage) HasFinishedBooking(_ context.Context, bookerId domain.UserId, itemId domain.ItemId, now domain.DateTime) (bool, error) {
	if m.hasFinishedBookingFunc != nil {
		return m.hasFinishedBookingFunc(bookerId, itemId, now)
	}
	return false, nil
}

func (m *MockStorage) SaveItemRequest(_ context.Context, data domain.ItemRequestCreationData) (domain.ItemRequest, error) {
	if m.saveItemRequestFunc != nil {
		return m.saveItemRequestFunc(data)
	}
	return domain.ItemRequest{Id: 1, Description: data.Description, Created: data.Created, RequesterId: data.RequesterId}, nil
}

func (m *MockStorage) ItemRequest(_ context.Context, id domain.RequestId) (domain.ItemRequest, error) {
	if m.itemRequestFunc != nil {
		return m.itemRequestFunc(id)
	}
	return domain.ItemRequest{Id: id}, nil
}

func (m *MockStorage) ItemRequestsByRequester(_ context.Context, requesterId domain.UserId) ([]domain.ItemRequest, error) {
	if m.itemRequestsByRequesterFunc != nil {
		return m.itemRequestsByRequesterFunc(requesterId)
	}
	return []domain.ItemRequest{}, nil
}

func (m *MockStorage) OtherItemRequests(_ context.Context, userId domain.UserId, page domain.Page) ([]domain.ItemRequest, error) {
	if m.otherItemRequestsFunc != nil {
		return m.otherItemRequestsFunc(userId, page)
	}
	return []domain.ItemRequest{}, nil
}

var (
	_ UserStorage        = (*MockStorage)(nil)
	_ ItemStorage        = (*MockStorage)(nil)
	_ BookingStorage     = (*MockStorage)(nil)
	_ ItemRequestStorage = (*MockStorage)(nil)
)

func userNotFound(id domain.UserId) (domain.User, error) {
	return domain.User{}, errors.NotFound("User with id %d not found", id)
}
