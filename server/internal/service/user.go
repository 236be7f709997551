package service

import (
	"context"

	"github.com/shareit-dev/shareit/server/internal/service/utils"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
)

// to mock service in tests
type UserService interface {
	Create(ctx context.Context, data domain.UserCreationData) (domain.User, error)
	Get(ctx context.Context, id domain.UserId) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id domain.UserId, data domain.UserUpdateData) (domain.User, error)
	Delete(ctx context.Context, id domain.UserId) error
}

type User struct {
	storage UserStorage
}

type UserStorage interface {
	SaveUser(ctx context.Context, data domain.UserCreationData) (domain.User, error)
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserId, data domain.UserUpdateData) (domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserId) error
}

func NewUser(storage UserStorage) UserService {
	return &User{storage}
}

func (u *User) Create(ctx context.Context, data domain.UserCreationData) (domain.User, error) {
	data.Name = utils.SanitizeText(data.Name)
	if data.Name == "" {
		return domain.User{}, errors.BadRequest("name must not be blank")
	}
	return u.storage.SaveUser(ctx, data)
}

func (u *User) Get(ctx context.Context, id domain.UserId) (domain.User, error) {
	return u.storage.User(ctx, id)
}

func (u *User) List(ctx context.Context) ([]domain.User, error) {
	return u.storage.Users(ctx)
}

// Update changes only the provided fields. An empty update returns the user as is.
func (u *User) Update(ctx context.Context, id domain.UserId, data domain.UserUpdateData) (domain.User, error) {
	if data.Name != nil {
		name := utils.SanitizeText(*data.Name)
		if name == "" {
			return domain.User{}, errors.BadRequest("name must not be blank")
		}
		data.Name = &name
	}
	if data.Name == nil && data.Email == nil {
		return u.storage.User(ctx, id)
	}
	return u.storage.UpdateUser(ctx, id, data)
}

func (u *User) Delete(ctx context.Context, id domain.UserId) error {
	return u.storage.DeleteUser(ctx, id)
}
