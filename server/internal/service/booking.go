package service

import (
	"context"
	"time"

	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
)

// to mock service in tests
type BookingService interface {
	Create(ctx context.Context, data domain.BookingCreationData) (domain.Booking, error)
	Approve(ctx context.Context, ownerId domain.UserId, bookingId domain.BookingId, approved bool) (domain.Booking, error)
	Get(ctx context.Context, userId domain.UserId, bookingId domain.BookingId) (domain.Booking, error)
	ListByBooker(ctx context.Context, bookerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error)
}

type Booking struct {
	storage BookingStorage
	now     func() time.Time
}

type BookingStorage interface {
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	// check runs inside the transaction, with the item row locked
	SaveBooking(ctx context.Context, data domain.BookingCreationData, check func(domain.Item) error) (domain.Booking, error)
	Booking(ctx context.Context, id domain.BookingId) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id domain.BookingId, status domain.BookingStatus, check func(domain.Booking) error) (domain.Booking, error)
	BookingsByBooker(ctx context.Context, bookerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error)
	BookingsByOwner(ctx context.Context, ownerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error)
	OwnerHasBookings(ctx context.Context, ownerId domain.UserId) (bool, error)
}

func NewBooking(storage BookingStorage) BookingService {
	return &Booking{storage: storage, now: time.Now}
}

// Create books an item for a period. The period may not overlap an approved booking
// of the same item; that check happens in storage under the item lock.
func (s *Booking) Create(ctx context.Context, data domain.BookingCreationData) (domain.Booking, error) {
	if data.End.Before(data.Start.Time) {
		return domain.Booking{}, errors.BadRequest("Booking end %s is before its start %s", data.End, data.Start)
	}
	if _, err := s.storage.User(ctx, data.BookerId); err != nil {
		return domain.Booking{}, err
	}

	return s.storage.SaveBooking(ctx, data, func(item domain.Item) error {
		if item.OwnerId == data.BookerId {
			return errors.Forbidden("Item %d cannot be booked by its owner", item.Id)
		}
		if !item.Available {
			return errors.BadRequest("Item %d is not available for booking", item.Id)
		}
		return nil
	})
}

func (s *Booking) Approve(ctx context.Context, ownerId domain.UserId, bookingId domain.BookingId, approved bool) (domain.Booking, error) {
	status := domain.StatusRejected
	if approved {
		status = domain.StatusApproved
	}
	return s.storage.UpdateBookingStatus(ctx, bookingId, status, func(b domain.Booking) error {
		if b.Item.OwnerId != ownerId {
			return errors.Forbidden("User %d is not the owner of item %d", ownerId, b.Item.Id)
		}
		if b.Status == domain.StatusApproved {
			return errors.BadRequest("Booking %d is already approved", b.Id)
		}
		return nil
	})
}

// Get is visible to the booker and to the owner of the booked item.
func (s *Booking) Get(ctx context.Context, userId domain.UserId, bookingId domain.BookingId) (domain.Booking, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return domain.Booking{}, err
	}
	booking, err := s.storage.Booking(ctx, bookingId)
	if err != nil {
		return domain.Booking{}, err
	}
	if booking.Booker.Id != userId && booking.Item.OwnerId != userId {
		return domain.Booking{}, errors.Forbidden("User %d may not view booking %d", userId, bookingId)
	}
	return booking, nil
}

func (s *Booking) ListByBooker(ctx context.Context, bookerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error) {
	if _, err := s.storage.User(ctx, bookerId); err != nil {
		return nil, err
	}
	return s.storage.BookingsByBooker(ctx, bookerId, state, domain.NewDateTime(s.now()), page)
}

// ListByOwner answers 404 to an owner none of whose items was ever booked.
func (s *Booking) ListByOwner(ctx context.Context, ownerId domain.UserId, state domain.BookingState, page domain.Page) ([]domain.Booking, error) {
	if _, err := s.storage.User(ctx, ownerId); err != nil {
		return nil, err
	}
	has, err := s.storage.OwnerHasBookings(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, errors.NotFound("User %d has no bookings of own items", ownerId)
	}
	return s.storage.BookingsByOwner(ctx, ownerId, state, domain.NewDateTime(s.now()), page)
}
