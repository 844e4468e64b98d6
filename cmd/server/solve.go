package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vancomm/patrol-server/internal/patrol"
	"github.com/vancomm/patrol-server/internal/puzzle"
	"github.com/vancomm/patrol-server/internal/repository"
)

func (app *application) handleDays(w http.ResponseWriter, r *http.Request) {
	app.replyWith(w, puzzle.Days())
}

// solve runs the requested solver over input. Day 6 part 2 honors the
// fuel and workers knobs; everything else goes through the registry.
func solve(day int, dto SolveQuery, input string) (int64, error) {
	if day == 6 && dto.Part == 2 && (dto.Fuel > 0 || dto.Workers > 0) {
		area, err := patrol.ParseArea(input)
		if err != nil {
			return 0, err
		}
		candidates := area.Clone().Patrol()
		answer := area.CountLoops(candidates, patrol.SearchConfig{
			Fuel:    dto.Fuel,
			Workers: dto.Workers,
		})
		return int64(answer), nil
	}
	return puzzle.Solve(day, dto.Part, input)
}

func (app *application) handleSolve(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		app.badRequest(w, "day must be an int")
		return
	}

	dto, err := decodeSolveQuery(r.URL.Query())
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}

	if !puzzle.Known(day, dto.Part) {
		app.notFound(w)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		app.badRequest(w, "could not read request body")
		return
	}

	start := time.Now()
	answer, err := solve(day, dto, string(body))
	if errors.Is(err, puzzle.ErrUnknownPuzzle) {
		app.notFound(w)
		return
	}
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}
	durationMs := float64(time.Since(start).Microseconds()) / 1000

	params := repository.CreateSolveRecordParams{
		Day:        day,
		Part:       dto.Part,
		Answer:     answer,
		DurationMs: durationMs,
	}
	if claims, ok := app.authenticatedSolver(r); ok {
		params.SolverID = &claims.SolverId
	}

	record, err := app.repo.CreateSolveRecord(r.Context(), params)
	if err != nil {
		app.internalError(w, "unable to insert solve record", slog.Any("error", err))
		return
	}

	app.replyWith(w, record)
}
