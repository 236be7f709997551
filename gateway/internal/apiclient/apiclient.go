package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	internal_errors "github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/jwt"
	"github.com/shareit-dev/shareit/shared/logger"
	mw "github.com/shareit-dev/shareit/shared/middleware"
)

// answers larger than this are cut off
const maxReplySize = 10 << 20

// APIClient forwards validated calls to the server.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
	// nil means the server runs without service auth
	tokens jwt.JwtService
}

// Reply is the server's answer, relayed to the caller unchanged.
type Reply struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func New(baseURL string, timeout time.Duration, tokens jwt.JwtService) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// call describes one forwarded request.
type call struct {
	method string
	path   string
	query  url.Values
	// nil on routes that take no sharer header
	sharer *int64
	body   any
}

func (c *APIClient) do(ctx context.Context, cl call) (*Reply, error) {
	var body io.Reader
	if cl.body != nil {
		jsonBody, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	target := c.BaseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.sharer != nil {
		req.Header.Set(mw.SharerHeader, strconv.FormatInt(*cl.sharer, 10))
	}
	if id := mw.GetRequestID(ctx); id != "" {
		req.Header.Set(mw.RequestIDHeader, id)
	}
	if c.tokens != nil {
		token, err := c.tokens.NewToken("gateway")
		if err != nil {
			return nil, fmt.Errorf("failed to sign service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Error("server request failed", "method", cl.method, "path", cl.path, "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "backend unavailable", StatusCode: http.StatusBadGateway}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		logger.FromContext(ctx).Error("reading server reply failed", "method", cl.method, "path", cl.path, "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "backend unavailable", StatusCode: http.StatusBadGateway}
	}
	return &Reply{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

func pageQuery(from, size int) url.Values {
	return url.Values{
		"from": {strconv.Itoa(from)},
		"size": {strconv.Itoa(size)},
	}
}
