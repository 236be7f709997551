package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shareit-dev/shareit/shared/domain"
	internal_errors "github.com/shareit-dev/shareit/shared/errors"
	sharedpg "github.com/shareit-dev/shareit/shared/storage/pg"
)

const emailConstraint = "users_email_key"

// =========================================================================
// Public Methods (satisfy the service.UserStorage interface)
// =========================================================================

func (s *Storage) SaveUser(ctx context.Context, data domain.UserCreationData) (domain.User, error) {
	return s.saveUser(ctx, s.db, data)
}

func (s *Storage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	return s.user(ctx, s.db, id)
}

// Users returns every user ordered by id.
func (s *Storage) Users(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Id, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of data and returns the resulting row.
func (s *Storage) UpdateUser(ctx context.Context, id domain.UserId, data domain.UserUpdateData) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = COALESCE($2, name), email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, name, email`,
		id, data.Name, data.Email,
	).Scan(&user.Id, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User with id %d not found", id)
		}
		if sharedpg.IsUniqueViolation(err, emailConstraint) {
			return domain.User{}, internal_errors.Conflict("Email %s is already in use", *data.Email)
		}
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the user; ON DELETE CASCADE cleans up items, bookings,
// requests and comments.
func (s *Storage) DeleteUser(ctx context.Context, id domain.UserId) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for user deletion: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("User with id %d not found", id)
	}
	return nil
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) saveUser(ctx context.Context, q Querier, data domain.UserCreationData) (domain.User, error) {
	user := domain.User{Name: data.Name, Email: data.Email}
	err := q.QueryRowContext(ctx, "INSERT INTO users(name, email) VALUES($1, $2) RETURNING id",
		data.Name, data.Email).Scan(&user.Id)
	if err != nil {
		if sharedpg.IsUniqueViolation(err, emailConstraint) {
			return domain.User{}, internal_errors.Conflict("Email %s is already in use", data.Email)
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) user(ctx context.Context, q Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx, "SELECT id, name, email FROM users WHERE id = $1", id).
		Scan(&user.Id, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User with id %d not found", id)
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
