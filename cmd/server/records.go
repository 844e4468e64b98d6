package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vancomm/patrol-server/internal/repository"
)

// recordFilter reads optional day and part query params into a
// repository filter.
func recordFilter(r *http.Request) (repository.SolveRecordFilter, error) {
	var filter repository.SolveRecordFilter
	if s := r.URL.Query().Get("day"); s != "" {
		day, err := strconv.Atoi(s)
		if err != nil {
			return filter, err
		}
		filter.Day = &day
	}
	if s := r.URL.Query().Get("part"); s != "" {
		part, err := strconv.Atoi(s)
		if err != nil {
			return filter, err
		}
		filter.Part = &part
	}
	return filter, nil
}

func (app *application) handleRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := app.authenticatedSolver(r)
	if !ok {
		app.unauthorized(w)
		return
	}

	filter, err := recordFilter(r)
	if err != nil {
		app.badRequest(w, "day and part must be ints")
		return
	}
	filter.SolverID = &claims.SolverId

	records, err := app.repo.ListSolveRecords(r.Context(), filter)
	if err != nil {
		app.internalError(w, "unable to list solve records", slog.Any("error", err))
		return
	}

	app.replyWith(w, records)
}

func (app *application) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	filter, err := recordFilter(r)
	if err != nil {
		app.badRequest(w, "day and part must be ints")
		return
	}

	leaderboard, err := app.repo.GetLeaderboard(r.Context(), filter)
	if err != nil {
		app.internalError(w, "unable to fetch leaderboard", slog.Any("error", err))
		return
	}

	app.replyWith(w, leaderboard)
}
