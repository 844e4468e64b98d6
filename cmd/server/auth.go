package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/patrol-server/internal/config"
	"github.com/vancomm/patrol-server/internal/repository"
)

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
)

type tokenPayload struct {
	Token string `json:"token"`
}

func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequest(w, ErrBadAuthBody.Error())
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		app.badRequest(w, ErrBadAuthBody.Error())
		return
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		app.badRequest(w, ErrBadPasswordTooLong.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		app.internalError(w, "unable to hash password", "error", err)
		return
	}

	solver, err := app.repo.CreateSolver(r.Context(), repository.CreateSolverParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(ErrUsernameTaken.Error()))
		return
	}
	if err != nil {
		app.internalError(w, "unable to insert solver", "error", err)
		return
	}

	token, err := app.jwt.Sign(config.NewSolverClaims(
		solver.SolverID, solver.Username, app.jwt.TokenLifetime(),
	))
	if err != nil {
		app.internalError(w, "unable to create a jwt token", "error", err)
		return
	}

	app.replyWith(w, tokenPayload{Token: token})
}

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.badRequest(w, ErrBadAuthBody.Error())
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		app.badRequest(w, ErrBadAuthBody.Error())
		return
	}

	solver, err := app.repo.FetchSolver(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		app.unauthorized(w)
		app.logger.Debug("username not found")
		return
	}
	if err != nil {
		app.internalError(w, "could not fetch solver from db", "error", err)
		return
	}

	err = bcrypt.CompareHashAndPassword(solver.PasswordHash, []byte(password))
	if err != nil {
		app.unauthorized(w)
		app.logger.Debug("wrong password")
		return
	}

	token, err := app.jwt.Sign(config.NewSolverClaims(
		solver.SolverID, solver.Username, app.jwt.TokenLifetime(),
	))
	if err != nil {
		app.internalError(w, "failed to sign solver claims", "error", err)
		return
	}

	app.replyWith(w, tokenPayload{Token: token})
}
