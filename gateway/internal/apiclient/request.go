package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
)

func (c *APIClient) CreateItemRequest(ctx context.Context, userId int64, data api.CreateItemRequestRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPost, path: "/requests", sharer: &userId, body: data})
}

func (c *APIClient) GetOwnItemRequests(ctx context.Context, userId int64) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: "/requests", sharer: &userId})
}

func (c *APIClient) GetOtherItemRequests(ctx context.Context, userId int64, page domain.Page) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: "/requests/all", sharer: &userId, query: pageQuery(page.From, page.Size)})
}

func (c *APIClient) GetItemRequest(ctx context.Context, userId, requestId int64) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/requests/%d", requestId), sharer: &userId})
}
