package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	repo "github.com/taskhive/taskhive/internal/domain/repository"
	"github.com/taskhive/taskhive/pkg/helpers"
	"github.com/taskhive/taskhive/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// RequireAuth validates the bearer token from the Authorization header
// and injects the resolved identity into the Gin context. The identity
// comes from the verified claims only, never from request-supplied
// fields. A token whose user has since been deleted is rejected, so a
// surviving token cannot authorize access to a dead account.
func RequireAuth(tokens *helpers.TokenManager, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			response.Error(c, http.StatusUnauthorized, "missing credential")
			return
		}

		claims, err := tokens.Parse(raw)
		if errors.Is(err, helpers.ErrTokenExpired) {
			response.Error(c, http.StatusUnauthorized, "expired")
			return
		}
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "tampered or forged")
			return
		}

		if _, err := users.GetByID(c.Request.Context(), claims.UserID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "stale identity")
				return
			}
			response.Error(c, http.StatusInternalServerError, "credential store unavailable")
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
