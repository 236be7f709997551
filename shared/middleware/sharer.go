package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/utils"
)

// SharerHeader identifies the acting user on every non-admin call.
const SharerHeader = "X-Sharer-User-Id"

type key int

const userIdKey key = 0

// SharerUserId requires a valid X-Sharer-User-Id header and stores it in the request context.
func SharerUserId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(SharerHeader))
		if raw == "" {
			utils.WriteErrorAndStatusCode(w, errors.BadRequest("Required request header '%s' is not present", SharerHeader))
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, errors.BadRequest("Header %s must be an integer, got %q", SharerHeader, raw))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserId(r.Context(), id)))
	})
}

func WithUserId(ctx context.Context, id domain.UserId) context.Context {
	return context.WithValue(ctx, userIdKey, id)
}

// GetUserIdFromContext retrieves the acting user id stored by SharerUserId
func GetUserIdFromContext(r *http.Request) (domain.UserId, bool) {
	id, ok := r.Context().Value(userIdKey).(domain.UserId)
	return id, ok
}
