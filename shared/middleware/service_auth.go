package middleware

import (
	"net/http"
	"strings"

	"github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/jwt"
	"github.com/shareit-dev/shareit/shared/logger"
	"github.com/shareit-dev/shareit/shared/utils"
)

// ServiceAuth only lets through calls carrying a service token signed with the shared key.
// A nil verifier disables the check.
func ServiceAuth(verifier jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Missing service token", StatusCode: http.StatusUnauthorized})
				return
			}
			if _, err := verifier.DecodeToken(tokenString); err != nil {
				logger.FromContext(r.Context()).Warn("rejected service token", "error", err)
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
