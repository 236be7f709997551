package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shareit-dev/shareit/shared/domain"
	internal_errors "github.com/shareit-dev/shareit/shared/errors"
)

const itemColumns = "i.id, i.name, i.description, i.is_available, i.owner_id, i.request_id"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (domain.Item, error) {
	var item domain.Item
	var requestId sql.NullInt64
	if err := row.Scan(&item.Id, &item.Name, &item.Description, &item.Available, &item.OwnerId, &requestId); err != nil {
		return domain.Item{}, err
	}
	if requestId.Valid {
		item.RequestId = &requestId.Int64
	}
	return item, nil
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	defer rows.Close()
	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

// =========================================================================
// Public Methods (satisfy the service.ItemStorage interface)
// =========================================================================

func (s *Storage) SaveItem(ctx context.Context, data domain.ItemCreationData) (domain.Item, error) {
	item := domain.Item{
		Name:        data.Name,
		Description: data.Description,
		Available:   data.Available,
		OwnerId:     data.OwnerId,
		RequestId:   data.RequestId,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO items(name, description, is_available, owner_id, request_id)
		VALUES($1, $2, $3, $4, $5) RETURNING id`,
		data.Name, data.Description, data.Available, data.OwnerId, data.RequestId,
	).Scan(&item.Id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}
	return item, nil
}

func (s *Storage) Item(ctx context.Context, id domain.ItemId) (domain.Item, error) {
	return s.item(ctx, s.db, id, false)
}

func (s *Storage) UpdateItem(ctx context.Context, id domain.ItemId, data domain.ItemUpdateData) (domain.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, `
		UPDATE items AS i
		SET name = COALESCE($2, i.name),
		    description = COALESCE($3, i.description),
		    is_available = COALESCE($4, i.is_available)
		WHERE i.id = $1
		RETURNING `+itemColumns,
		id, data.Name, data.Description, data.Available,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, internal_errors.NotFound("Item with id %d not found", id)
		}
		return domain.Item{}, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// ItemsByOwner returns one page of the owner's items ordered by id.
func (s *Storage) ItemsByOwner(ctx context.Context, ownerId domain.UserId, page domain.Page) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE i.owner_id = $1
		ORDER BY i.id
		LIMIT $2 OFFSET $3`,
		ownerId, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by owner: %w", err)
	}
	return scanItems(rows)
}

// SearchItems matches text against name and description case-insensitively.
// Only available items are returned.
func (s *Storage) SearchItems(ctx context.Context, text string, page domain.Page) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE i.is_available
		  AND (i.name ILIKE '%' || $1 || '%' ESCAPE '\' OR i.description ILIKE '%' || $1 || '%' ESCAPE '\')
		ORDER BY i.id
		LIMIT $2 OFFSET $3`,
		escapeLike(text), page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return scanItems(rows)
}

// ItemsByRequests groups the items answering each of the given requests.
func (s *Storage) ItemsByRequests(ctx context.Context, ids []domain.RequestId) (map[domain.RequestId][]domain.Item, error) {
	result := make(map[domain.RequestId][]domain.Item, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE i.request_id = ANY($1)
		ORDER BY i.id`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by requests: %w", err)
	}
	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		result[*item.RequestId] = append(result[*item.RequestId], item)
	}
	return result, nil
}

// =========================================================================
// Internal Methods
// =========================================================================

// item optionally takes a row lock, used to serialise bookings of one item.
func (s *Storage) item(ctx context.Context, q Querier, id domain.ItemId, forUpdate bool) (domain.Item, error) {
	query := "SELECT " + itemColumns + " FROM items i WHERE i.id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}
	item, err := scanItem(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, internal_errors.NotFound("Item with id %d not found", id)
		}
		return domain.Item{}, fmt.Errorf("failed to query item: %w", err)
	}
	return item, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
