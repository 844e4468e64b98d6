package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SolveRecord struct {
	SolveRecordID int64              `json:"solve_record_id"`
	SolverID      *int64             `json:"solver_id,omitempty"`
	Day           int                `json:"day"`
	Part          int                `json:"part"`
	Answer        int64              `json:"answer"`
	DurationMs    float64            `json:"duration_ms"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type CreateSolveRecordParams struct {
	SolverID   *int64
	Day        int
	Part       int
	Answer     int64
	DurationMs float64
}

func (q *Queries) CreateSolveRecord(
	ctx context.Context, params CreateSolveRecordParams,
) (*SolveRecord, error) {
	args := pgx.NamedArgs{
		"solver_id":   nil, // anonymous solve
		"day":         params.Day,
		"part":        params.Part,
		"answer":      params.Answer,
		"duration_ms": params.DurationMs,
	}
	if params.SolverID != nil {
		args["solver_id"] = *params.SolverID
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_record (solver_id, day, part, answer, duration_ms)
		VALUES (@solver_id, @day, @part, @answer, @duration_ms)
		RETURNING *`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRecord])
}

type SolveRecordFilter struct {
	SolverID *int64
	Day      *int
	Part     *int
}

func (f SolveRecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.SolverID != nil {
		clauses = append(clauses, "solver_id = @solver_id")
		args["solver_id"] = *f.SolverID
	}
	if f.Day != nil {
		clauses = append(clauses, "day = @day")
		args["day"] = *f.Day
	}
	if f.Part != nil {
		clauses = append(clauses, "part = @part")
		args["part"] = *f.Part
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListSolveRecords(
	ctx context.Context, filter SolveRecordFilter,
) ([]SolveRecord, error) {
	query := "SELECT * FROM solve_record"
	where, args := filter.WhereClause()
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY created_at DESC"

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveRecord])
}

type LeaderboardEntry struct {
	Username   *string `json:"username"`
	Day        int     `json:"day"`
	Part       int     `json:"part"`
	DurationMs float64 `json:"duration_ms"`
}

// GetLeaderboard reports the fastest solve per (day, part), fastest
// first, optionally narrowed by the filter.
func (q *Queries) GetLeaderboard(
	ctx context.Context, filter SolveRecordFilter,
) ([]LeaderboardEntry, error) {
	query := `
	SELECT
		s.username,
		r.day,
		r.part,
		MIN(r.duration_ms) AS duration_ms
	FROM solve_record r
	LEFT JOIN solver s USING (solver_id)`
	where, args := filter.WhereClause()
	if where != "" {
		query += " WHERE " + where
	}
	query += `
	GROUP BY s.username, r.day, r.part
	ORDER BY r.day, r.part, duration_ms`

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardEntry])
}
