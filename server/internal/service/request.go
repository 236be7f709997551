package service

import (
	"context"
	"time"

	"github.com/shareit-dev/shareit/server/internal/service/utils"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
)

// to mock service in tests
type ItemRequestService interface {
	Create(ctx context.Context, data domain.ItemRequestCreationData) (domain.ItemRequest, error)
	ListOwn(ctx context.Context, userId domain.UserId) ([]domain.ItemRequestWithItems, error)
	ListOthers(ctx context.Context, userId domain.UserId, page domain.Page) ([]domain.ItemRequestWithItems, error)
	Get(ctx context.Context, userId domain.UserId, requestId domain.RequestId) (domain.ItemRequestWithItems, error)
}

type ItemRequest struct {
	storage ItemRequestStorage
	now     func() time.Time
}

type ItemRequestStorage interface {
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	SaveItemRequest(ctx context.Context, data domain.ItemRequestCreationData) (domain.ItemRequest, error)
	ItemRequest(ctx context.Context, id domain.RequestId) (domain.ItemRequest, error)
	ItemRequestsByRequester(ctx context.Context, requesterId domain.UserId) ([]domain.ItemRequest, error)
	OtherItemRequests(ctx context.Context, userId domain.UserId, page domain.Page) ([]domain.ItemRequest, error)
	ItemsByRequests(ctx context.Context, ids []domain.RequestId) (map[domain.RequestId][]domain.Item, error)
}

func NewItemRequest(storage ItemRequestStorage) ItemRequestService {
	return &ItemRequest{storage: storage, now: time.Now}
}

func (s *ItemRequest) Create(ctx context.Context, data domain.ItemRequestCreationData) (domain.ItemRequest, error) {
	data.Description = utils.SanitizeText(data.Description)
	if data.Description == "" {
		return domain.ItemRequest{}, errors.BadRequest("description must not be blank")
	}
	if _, err := s.storage.User(ctx, data.RequesterId); err != nil {
		return domain.ItemRequest{}, err
	}
	data.Created = domain.NewDateTime(s.now())
	return s.storage.SaveItemRequest(ctx, data)
}

func (s *ItemRequest) ListOwn(ctx context.Context, userId domain.UserId) ([]domain.ItemRequestWithItems, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return nil, err
	}
	requests, err := s.storage.ItemRequestsByRequester(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *ItemRequest) ListOthers(ctx context.Context, userId domain.UserId, page domain.Page) ([]domain.ItemRequestWithItems, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return nil, err
	}
	requests, err := s.storage.OtherItemRequests(ctx, userId, page)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// Get lets any existing user view any request.
func (s *ItemRequest) Get(ctx context.Context, userId domain.UserId, requestId domain.RequestId) (domain.ItemRequestWithItems, error) {
	if _, err := s.storage.User(ctx, userId); err != nil {
		return domain.ItemRequestWithItems{}, err
	}
	request, err := s.storage.ItemRequest(ctx, requestId)
	if err != nil {
		return domain.ItemRequestWithItems{}, err
	}
	withItems, err := s.withItems(ctx, []domain.ItemRequest{request})
	if err != nil {
		return domain.ItemRequestWithItems{}, err
	}
	return withItems[0], nil
}

func (s *ItemRequest) withItems(ctx context.Context, requests []domain.ItemRequest) ([]domain.ItemRequestWithItems, error) {
	result := make([]domain.ItemRequestWithItems, 0, len(requests))
	if len(requests) == 0 {
		return result, nil
	}
	ids := make([]domain.RequestId, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.Id)
	}
	items, err := s.storage.ItemsByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		answers := items[r.Id]
		if answers == nil {
			answers = []domain.Item{}
		}
		result = append(result, domain.ItemRequestWithItems{ItemRequest: r, Items: answers})
	}
	return result, nil
}
