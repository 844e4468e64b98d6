package main

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/patrol-server/internal/patrol"
	"github.com/vancomm/patrol-server/internal/puzzle"
	"github.com/vancomm/patrol-server/internal/repository"
)

type watchFrame struct {
	JobID      string   `json:"job_id"`
	Done       int      `json:"done,omitempty"`
	Total      int      `json:"total,omitempty"`
	Answer     *int64   `json:"answer,omitempty"`
	DurationMs *float64 `json:"duration_ms,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// wsWatchSolve upgrades to a websocket, reads one text message holding
// the puzzle input and streams solve progress back. Only the day 6
// part 2 loop search reports intermediate progress; every other puzzle
// produces a single final frame.
func (app *application) wsWatchSolve(w http.ResponseWriter, r *http.Request) {
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

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		app.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	jobId := uuid.NewString()
	app.logger.Debug("established watch connection", slog.String("jobId", jobId))

	mt, buf, err := conn.ReadMessage()
	if err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			app.logger.Warn("abnormal ws break", slog.Any("error", err))
		}
		return
	}
	if mt != websocket.TextMessage {
		return
	}
	input := string(buf)

	start := time.Now()
	var answer int64

	if day == 6 && dto.Part == 2 {
		area, err := patrol.ParseArea(input)
		if err != nil {
			conn.WriteJSON(watchFrame{JobID: jobId, Error: err.Error()})
			return
		}
		candidates := area.Clone().Patrol()

		// Progress fires from worker goroutines; frames funnel through
		// a channel so only this goroutine writes to the connection.
		// A full channel drops frames rather than stalling the search.
		progress := make(chan [2]int, 64)
		go func() {
			defer close(progress)
			answer = int64(area.CountLoops(candidates, patrol.SearchConfig{
				Fuel:    dto.Fuel,
				Workers: dto.Workers,
				Progress: func(done, total int) {
					select {
					case progress <- [2]int{done, total}:
					default:
					}
				},
			}))
		}()

		for p := range progress {
			frame := watchFrame{JobID: jobId, Done: p[0], Total: p[1]}
			if err := conn.WriteJSON(frame); err != nil {
				app.logger.Warn("unable to write progress frame", slog.Any("error", err))
				return
			}
		}
	} else {
		answer, err = puzzle.Solve(day, dto.Part, input)
		if err != nil {
			conn.WriteJSON(watchFrame{JobID: jobId, Error: err.Error()})
			return
		}
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
	if _, err := app.repo.CreateSolveRecord(r.Context(), params); err != nil {
		app.logger.Error("unable to insert solve record", slog.Any("error", err))
	}

	final := watchFrame{JobID: jobId, Answer: &answer, DurationMs: &durationMs}
	if err := conn.WriteJSON(final); err != nil {
		app.logger.Warn("unable to write final frame", slog.Any("error", err))
	}
}
