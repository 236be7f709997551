package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
)

func (c *APIClient) CreateUser(ctx context.Context, data api.CreateUserRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPost, path: "/users", body: data})
}

func (c *APIClient) GetUsers(ctx context.Context) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: "/users"})
}

func (c *APIClient) GetUser(ctx context.Context, userId int64) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/users/%d", userId)})
}

func (c *APIClient) UpdateUser(ctx context.Context, userId int64, data api.UpdateUserRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPatch, path: fmt.Sprintf("/users/%d", userId), body: data})
}

func (c *APIClient) DeleteUser(ctx context.Context, userId int64) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodDelete, path: fmt.Sprintf("/users/%d", userId)})
}
