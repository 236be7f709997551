package pg

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/shareit-dev/shareit/shared/domain"
)

// SaveComment stores the comment and returns it with the author's name filled in.
func (s *Storage) SaveComment(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	comment := domain.Comment{
		Text:     data.Text,
		Created:  data.Created,
		ItemId:   data.ItemId,
		AuthorId: data.AuthorId,
	}
	err := s.db.QueryRowContext(ctx, `
		WITH inserted AS (
			INSERT INTO comments(text, item_id, author_id, created)
			VALUES($1, $2, $3, $4)
			RETURNING id, author_id
		)
		SELECT inserted.id, u.name
		FROM inserted JOIN users u ON u.id = inserted.author_id`,
		data.Text, data.ItemId, data.AuthorId, data.Created,
	).Scan(&comment.Id, &comment.AuthorName)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return comment, nil
}

// CommentsByItems groups comments by item, oldest first.
func (s *Storage) CommentsByItems(ctx context.Context, ids []domain.ItemId) (map[domain.ItemId][]domain.Comment, error) {
	result := make(map[domain.ItemId][]domain.Comment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.text, u.name, c.created, c.item_id, c.author_id
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created, c.id`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.Text, &c.AuthorName, &c.Created, &c.ItemId, &c.AuthorId); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result[c.ItemId] = append(result[c.ItemId], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return result, nil
}
