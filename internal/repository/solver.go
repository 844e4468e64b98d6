package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Solver struct {
	SolverID     int64
	Username     string
	PasswordHash []byte
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type CreateSolverParams struct {
	Username     string
	PasswordHash []byte
}

func (q *Queries) CreateSolver(ctx context.Context, params CreateSolverParams) (*Solver, error) {
	rows, _ := q.db.Query(
		ctx,
		"INSERT INTO solver (username, password_hash) VALUES ($1, $2) RETURNING *",
		params.Username,
		params.PasswordHash,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Solver])
}

func (q *Queries) FetchSolver(ctx context.Context, username string) (*Solver, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM solver WHERE username = $1", username,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Solver])
}
