package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/patrol-server/internal/config"
	"github.com/vancomm/patrol-server/internal/middleware"
)

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	jwt, err := config.NewJWT()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var gotClaims *config.SolverClaims
	var gotOk bool
	handler := middleware.Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotClaims, gotOk = middleware.SolverClaims(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
		middleware.Auth(logger, jwt),
	)

	t.Run("no header proceeds anonymously", func(t *testing.T) {
		gotClaims, gotOk = nil, false
		r := httptest.NewRequest(http.MethodGet, "/records", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotOk)
	})

	t.Run("garbage token proceeds anonymously", func(t *testing.T) {
		gotClaims, gotOk = nil, false
		r := httptest.NewRequest(http.MethodGet, "/records", nil)
		r.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotOk)
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		gotClaims, gotOk = nil, false
		token, err := jwt.Sign(config.NewSolverClaims(7, "mary", jwt.TokenLifetime()))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/records", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, gotOk)
		assert.Equal(t, int64(7), gotClaims.SolverId)
		assert.Equal(t, "mary", gotClaims.Username)
	})
}
