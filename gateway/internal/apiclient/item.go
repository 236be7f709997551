package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
)

func (c *APIClient) CreateItem(ctx context.Context, userId int64, data api.CreateItemRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPost, path: "/items", sharer: &userId, body: data})
}

func (c *APIClient) UpdateItem(ctx context.Context, userId, itemId int64, data api.UpdateItemRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPatch, path: fmt.Sprintf("/items/%d", itemId), sharer: &userId, body: data})
}

func (c *APIClient) GetItem(ctx context.Context, userId, itemId int64) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/items/%d", itemId), sharer: &userId})
}

func (c *APIClient) GetOwnItems(ctx context.Context, userId int64, page domain.Page) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodGet, path: "/items", sharer: &userId, query: pageQuery(page.From, page.Size)})
}

func (c *APIClient) SearchItems(ctx context.Context, userId int64, text string, page domain.Page) (*Reply, error) {
	query := pageQuery(page.From, page.Size)
	query.Set("text", text)
	return c.do(ctx, call{method: http.MethodGet, path: "/items/search", sharer: &userId, query: query})
}

func (c *APIClient) CreateComment(ctx context.Context, userId, itemId int64, data api.CreateCommentRequest) (*Reply, error) {
	return c.do(ctx, call{method: http.MethodPost, path: fmt.Sprintf("/items/%d/comment", itemId), sharer: &userId, body: data})
}
