package service

import (
	"context"
	"strings"
	"time"

	"github.com/shareit-dev/shareit/server/internal/service/utils"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
)

// to mock service in tests
type ItemService interface {
	Create(ctx context.Context, data domain.ItemCreationData) (domain.Item, error)
	Update(ctx context.Context, userId domain.UserId, itemId domain.ItemId, data domain.ItemUpdateData) (domain.Item, error)
	Get(ctx context.Context, userId domain.UserId, itemId domain.ItemId) (domain.ItemWithInfo, error)
	ListByOwner(ctx context.Context, ownerId domain.UserId, page domain.Page) ([]domain.ItemWithInfo, error)
	Search(ctx context.Context, userId domain.UserId, text string, page domain.Page) ([]domain.Item, error)
	AddComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error)
}

type Item struct {
	storage ItemStorage
	now     func() time.Time
}

type ItemStorage interface {
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	ItemRequest(ctx context.Context, id domain.RequestId) (domain.ItemRequest, error)

	SaveItem(ctx context.Context, data domain.ItemCreationData) (domain.Item, error)
	Item(ctx context.Context, id domain.ItemId) (domain.Item, error)
	UpdateItem(ctx context.Context, id domain.ItemId, data domain.ItemUpdateData) (domain.Item, error)
	ItemsByOwner(ctx context.Context, ownerId domain.UserId, page domain.Page) ([]domain.Item, error)
	SearchItems(ctx context.Context, text string, page domain.Page) ([]domain.Item, error)

	SaveComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error)
	CommentsByItems(ctx context.Context, ids []domain.ItemId) (map[domain.ItemId][]domain.Comment, error)

	LastAndNextBookings(ctx context.Context, ids []domain.ItemId, now domain.DateTime) (last, next map[domain.ItemId]domain.BookingShort, err error)
	HasFinishedBooking(ctx context.Context, bookerId domain.UserId, itemId domain.ItemId, now domain.DateTime) (bool, error)
}

func NewItem(storage ItemStorage) ItemService {
	return &Item{storage: storage, now: time.Now}
}

func (s *Item) Create(ctx context.Context, data domain.ItemCreationData) (domain.Item, error) {
	data.Name = utils.SanitizeText(data.Name)
	data.Description = utils.SanitizeText(data.Description)
	if data.Name == "" {
		return domain.Item{}, errors.BadRequest("name must not be blank")
	}
	if data.Description == "" {
		return domain.Item{}, errors.BadRequest("description must not be blank")
	}
	if _, err := s.storage.User(ctx, data.OwnerId); err != nil {
		return domain.Item{}, err
	}
	if data.RequestId != nil {
		if _, err := s.storage.ItemRequest(ctx, *data.RequestId); err != nil {
			return domain.Item{}, err
		}
	}
	return s.storage.SaveItem(ctx, data)
}

// Update is only allowed to the owner; nil fields are kept.
func (s *Item) Update(ctx context.Context, userId domain.UserId, itemId domain.ItemId, data domain.ItemUpdateData) (domain.Item, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return domain.Item{}, err
	}
	item, err := s.storage.Item(ctx, itemId)
	if err != nil {
		return domain.Item{}, err
	}
	if item.OwnerId != userId {
		return domain.Item{}, errors.Forbidden("User %d is not the owner of item %d", userId, itemId)
	}

	if data.Name != nil {
		name := utils.SanitizeText(*data.Name)
		if name == "" {
			return domain.Item{}, errors.BadRequest("name must not be blank")
		}
		data.Name = &name
	}
	if data.Description != nil {
		description := utils.SanitizeText(*data.Description)
		if description == "" {
			return domain.Item{}, errors.BadRequest("description must not be blank")
		}
		data.Description = &description
	}
	if data.Name == nil && data.Description == nil && data.Available == nil {
		return item, nil
	}
	return s.storage.UpdateItem(ctx, itemId, data)
}

// Get shows comments to everyone and the surrounding bookings to the owner only.
func (s *Item) Get(ctx context.Context, userId domain.UserId, itemId domain.ItemId) (domain.ItemWithInfo, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return domain.ItemWithInfo{}, err
	}
	item, err := s.storage.Item(ctx, itemId)
	if err != nil {
		return domain.ItemWithInfo{}, err
	}
	withInfo, err := s.withInfo(ctx, []domain.Item{item}, item.OwnerId == userId)
	if err != nil {
		return domain.ItemWithInfo{}, err
	}
	return withInfo[0], nil
}

func (s *Item) ListByOwner(ctx context.Context, ownerId domain.UserId, page domain.Page) ([]domain.ItemWithInfo, error) {
	if _, err := s.storage.User(ctx, ownerId); err != nil {
		return nil, err
	}
	items, err := s.storage.ItemsByOwner(ctx, ownerId, page)
	if err != nil {
		return nil, err
	}
	return s.withInfo(ctx, items, true)
}

// Search returns nothing for blank text rather than every item.
func (s *Item) Search(ctx context.Context, userId domain.UserId, text string, page domain.Page) ([]domain.Item, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return nil, err
	}
	// blank text matches nothing; other text is searched as given
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.storage.SearchItems(ctx, text, page)
}

// AddComment requires the author to have an approved booking of the item that has already ended.
func (s *Item) AddComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	data.Text = utils.SanitizeText(data.Text)
	if data.Text == "" {
		return domain.Comment{}, errors.BadRequest("text must not be blank")
	}
	if _, err := s.storage.User(ctx, data.AuthorId); err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.storage.Item(ctx, data.ItemId); err != nil {
		return domain.Comment{}, err
	}

	now := domain.NewDateTime(s.now())
	booked, err := s.storage.HasFinishedBooking(ctx, data.AuthorId, data.ItemId, now)
	if err != nil {
		return domain.Comment{}, err
	}
	if !booked {
		return domain.Comment{}, errors.BadRequest("User %d has no finished booking of item %d", data.AuthorId, data.ItemId)
	}

	data.Created = now
	return s.storage.SaveComment(ctx, data)
}

func (s *Item) withInfo(ctx context.Context, items []domain.Item, withBookings bool) ([]domain.ItemWithInfo, error) {
	result := make([]domain.ItemWithInfo, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}
	ids := make([]domain.ItemId, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Id)
	}

	comments, err := s.storage.CommentsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	var last, next map[domain.ItemId]domain.BookingShort
	if withBookings {
		last, next, err = s.storage.LastAndNextBookings(ctx, ids, domain.NewDateTime(s.now()))
		if err != nil {
			return nil, err
		}
	}

	for _, item := range items {
		info := domain.ItemWithInfo{Item: item, Comments: comments[item.Id]}
		if info.Comments == nil {
			info.Comments = []domain.Comment{}
		}
		if b, ok := last[item.Id]; ok {
			info.LastBooking = &b
		}
		if b, ok := next[item.Id]; ok {
			info.NextBooking = &b
		}
		result = append(result, info)
	}
	return result, nil
}
