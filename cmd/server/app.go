package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vancomm/patrol-server/internal/config"
	"github.com/vancomm/patrol-server/internal/middleware"
	"github.com/vancomm/patrol-server/internal/repository"
)

type application struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	jwt    *config.JWT
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", app.handleRegister)
	mux.HandleFunc("POST /login", app.handleLogin)
	mux.HandleFunc("GET /days", app.handleDays)
	mux.HandleFunc("POST /solve/{day}", app.handleSolve)
	mux.HandleFunc("GET /solve/{day}/watch", app.wsWatchSolve)
	mux.HandleFunc("GET /records", app.handleRecords)
	mux.HandleFunc("GET /leaderboard", app.handleLeaderboard)
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

func (app *application) authenticatedSolver(r *http.Request) (*config.SolverClaims, bool) {
	return middleware.SolverClaims(r.Context())
}

func (app *application) badRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(msg))
}

func (app *application) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte("you are not allowed to execute this operation"))
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("not found"))
}

func (app *application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("internal error"))
	app.logger.Error(msg, args...)
}

func (app *application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		app.logger.Error(
			"failed to send data",
			slog.Any("data", v),
			slog.Any("error", err),
		)
	}
}
