package hris

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("record not found")

// ConstraintError surfaces a database-enforced rule rejecting a write:
// uniqueness (23505), foreign key (23503), check range (23514) or a
// missing required column (23502).
type ConstraintError struct {
	Code       string
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503", "23514", "23502":
			return &ConstraintError{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Message: pgErr.Message}
		}
	}
	return err
}
