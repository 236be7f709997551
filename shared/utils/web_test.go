package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
	shared_errors "github.com/shareit-dev/shareit/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidate(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		target         any
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "valid user",
			requestBody: `{"name": "Alice", "email": "alice@example.com"}`,
			target:      &api.CreateUserRequest{},
		},
		{
			name:           "invalid json",
			requestBody:    `{"name": "Alice"`,
			target:         &api.CreateUserRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Body is invalid json",
		},
		{
			name:           "empty body",
			requestBody:    "",
			target:         &api.CreateUserRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Body is invalid json",
		},
		{
			name:           "missing email",
			requestBody:    `{"name": "Alice"}`,
			target:         &api.CreateUserRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "email is required",
		},
		{
			name:           "bad email",
			requestBody:    `{"name": "Alice", "email": "not-an-email"}`,
			target:         &api.CreateUserRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "email must be a valid email address",
		},
		{
			name:           "blank name",
			requestBody:    `{"name": "   ", "email": "alice@example.com"}`,
			target:         &api.CreateUserRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "name must not be blank",
		},
		{
			name:        "partial update without fields",
			requestBody: `{}`,
			target:      &api.UpdateUserRequest{},
		},
		{
			name:           "partial update with bad email",
			requestBody:    `{"email": "nope"}`,
			target:         &api.UpdateUserRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "email must be a valid email address",
		},
		{
			name:           "item without available flag",
			requestBody:    `{"name": "Drill", "description": "Works"}`,
			target:         &api.CreateItemRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "available is required",
		},
		{
			name:        "item with available false",
			requestBody: `{"name": "Drill", "description": "Works", "available": false}`,
			target:      &api.CreateItemRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(tt.requestBody)))

			err := DecodeValidate(req.Body, tt.target)

			if tt.expectedStatus == 0 {
				assert.NoError(t, err)
				return
			}
			var e *shared_errors.ErrorWithStatusCode
			require.True(t, errors.As(err, &e), "error should be ErrorWithStatusCode")
			assert.Equal(t, tt.expectedStatus, e.StatusCode)
			assert.Contains(t, e.Message, tt.expectedMsg)
		})
	}
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, shared_errors.NotFound("Item with id %d not found", 3))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var body api.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "Item with id 3 not found", body.Error)
	})

	t.Run("plain error is 500 without details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, fmt.Errorf("failed to insert booking: %w", errors.New(`pq: relation "bookings" does not exist`)))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
	})

	t.Run("explicit 5xx keeps its message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := fmt.Errorf("forwarding: %w", &shared_errors.ErrorWithStatusCode{Message: "backend unavailable", StatusCode: http.StatusBadGateway})
		WriteErrorAndStatusCode(rr, err)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.JSONEq(t, `{"error":"backend unavailable"}`, rr.Body.String())
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, map[string]string{"message": "hello"})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "{\"message\":\"hello\"}\n", rr.Body.String())
	})

	t.Run("unencodable value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, make(chan int))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal error\n", rr.Body.String())
	})
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.Page
		wantErr  bool
	}{
		{name: "defaults", query: "", expected: domain.Page{From: 0, Size: 20}},
		{name: "explicit", query: "?from=10&size=5", expected: domain.Page{From: 10, Size: 5}},
		{name: "capped size", query: "?size=1000", expected: domain.Page{From: 0, Size: 100}},
		{name: "negative from", query: "?from=-1", wantErr: true},
		{name: "zero size", query: "?size=0", wantErr: true},
		{name: "not a number", query: "?from=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)
			page, err := ParsePage(req, 20, 100)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, shared_errors.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestQueryBool(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/bookings/1?approved=true", nil)
	v, err := QueryBool(req, "approved")
	require.NoError(t, err)
	assert.True(t, v)

	req = httptest.NewRequest(http.MethodPatch, "/bookings/1", nil)
	_, err = QueryBool(req, "approved")
	assert.Equal(t, http.StatusBadRequest, shared_errors.StatusCode(err))

	req = httptest.NewRequest(http.MethodPatch, "/bookings/1?approved=maybe", nil)
	_, err = QueryBool(req, "approved")
	assert.Equal(t, http.StatusBadRequest, shared_errors.StatusCode(err))
}
