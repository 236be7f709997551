package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shareit-dev/shareit/shared/domain"
	internal_errors "github.com/shareit-dev/shareit/shared/errors"
)

const requestColumns = "r.id, r.description, r.created, r.requester_id"

func scanItemRequests(rows *sql.Rows) ([]domain.ItemRequest, error) {
	defer rows.Close()
	requests := []domain.ItemRequest{}
	for rows.Next() {
		var r domain.ItemRequest
		if err := rows.Scan(&r.Id, &r.Description, &r.Created, &r.RequesterId); err != nil {
			return nil, fmt.Errorf("failed to scan item request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item requests: %w", err)
	}
	return requests, nil
}

func (s *Storage) SaveItemRequest(ctx context.Context, data domain.ItemRequestCreationData) (domain.ItemRequest, error) {
	request := domain.ItemRequest{
		Description: data.Description,
		Created:     data.Created,
		RequesterId: data.RequesterId,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO item_requests(description, requester_id, created)
		VALUES($1, $2, $3) RETURNING id`,
		data.Description, data.RequesterId, data.Created,
	).Scan(&request.Id)
	if err != nil {
		return domain.ItemRequest{}, fmt.Errorf("failed to insert item request: %w", err)
	}
	return request, nil
}

func (s *Storage) ItemRequest(ctx context.Context, id domain.RequestId) (domain.ItemRequest, error) {
	var r domain.ItemRequest
	err := s.db.QueryRowContext(ctx, "SELECT "+requestColumns+" FROM item_requests r WHERE r.id = $1", id).
		Scan(&r.Id, &r.Description, &r.Created, &r.RequesterId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ItemRequest{}, internal_errors.NotFound("Item request with id %d not found", id)
		}
		return domain.ItemRequest{}, fmt.Errorf("failed to query item request: %w", err)
	}
	return r, nil
}

// ItemRequestsByRequester returns all of the user's requests, newest first.
func (s *Storage) ItemRequestsByRequester(ctx context.Context, requesterId domain.UserId) ([]domain.ItemRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM item_requests r
		WHERE r.requester_id = $1
		ORDER BY r.created DESC, r.id DESC`, requesterId)
	if err != nil {
		return nil, fmt.Errorf("failed to query item requests: %w", err)
	}
	return scanItemRequests(rows)
}

// OtherItemRequests pages through requests made by anyone but userId, newest first.
func (s *Storage) OtherItemRequests(ctx context.Context, userId domain.UserId, page domain.Page) ([]domain.ItemRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM item_requests r
		WHERE r.requester_id <> $1
		ORDER BY r.created DESC, r.id DESC
		LIMIT $2 OFFSET $3`, userId, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query item requests: %w", err)
	}
	return scanItemRequests(rows)
}
