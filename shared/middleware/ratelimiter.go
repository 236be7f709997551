package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/middleware/ratelimiter"
	"github.com/shareit-dev/shareit/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Rate limit exceeded, try again later", StatusCode: http.StatusTooManyRequests})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr only; forwarding headers can be spoofed.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without port
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}

// GetSharerFromContext keys limits by acting user; requires SharerUserId to run first.
func GetSharerFromContext(r *http.Request) (string, error) {
	id, ok := GetUserIdFromContext(r)
	if !ok {
		return GetIP(r)
	}
	return fmt.Sprintf("user_%d", id), nil
}
