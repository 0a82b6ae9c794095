package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/domain/entity"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
	"github.com/taskhive/taskhive/pkg/helpers"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}

func newAuthTestRouter(t *testing.T, tokens *helpers.TokenManager, users repo.UserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(CtxUserIDKey),
			"username": c.GetString(CtxUsernameKey),
		})
	})
	return r
}

func detailOf(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Detail
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tokens, err := helpers.NewTokenManager("middleware-test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)
	expiredTokens, err := helpers.NewTokenManager("middleware-test-secret", "HS256", -1*time.Minute)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Username: "alice"},
	}}
	r := newAuthTestRouter(t, tokens, users)

	valid, _, err := tokens.Generate("user-1", "alice")
	require.NoError(t, err)
	expired, _, err := expiredTokens.Generate("user-1", "alice")
	require.NoError(t, err)
	deleted, _, err := tokens.Generate("user-gone", "ghost")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantDetail string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantDetail: "missing credential"},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantDetail: "missing credential"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantDetail: "missing credential"},
		{name: "garbage token", header: "Bearer not.a.token", wantStatus: http.StatusUnauthorized, wantDetail: "tampered or forged"},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantDetail: "expired"},
		{name: "deleted user", header: "Bearer " + deleted, wantStatus: http.StatusUnauthorized, wantDetail: "stale identity"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, w.Body.Bytes()))
		})
	}

	t.Run("valid token resolves identity from claims", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			UserID   string `json:"user_id"`
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "user-1", resp.UserID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("tampered signature is rejected", func(t *testing.T) {
		t.Parallel()
		tampered := valid[:len(valid)-2] + "xx"
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tampered)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "tampered or forged", detailOf(t, w.Body.Bytes()))
	})
}
