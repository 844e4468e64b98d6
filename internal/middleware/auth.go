package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vancomm/patrol-server/internal/config"
)

type CtxKey int

const (
	CtxSolverClaims CtxKey = iota
)

// SolverClaims extracts the claims a successful Auth pass stored in the
// request context, if any.
func SolverClaims(ctx context.Context) (*config.SolverClaims, bool) {
	claims, ok := ctx.Value(CtxSolverClaims).(*config.SolverClaims)
	return claims, ok
}

// Auth parses an optional "Authorization: Bearer <token>" header and, when
// the token verifies, stores the solver claims in the request context.
// Requests without a valid token proceed anonymously.
func Auth(logger *slog.Logger, jwt *config.JWT) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := jwt.ParseSolverClaims(token)
			if err != nil {
				logger.Debug("rejected bearer token", slog.Any("error", err))
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxSolverClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
