package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// pg error code for unique_violation.
const codeUniqueViolation = "23505"

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so the same
// repository code runs inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translateCreate maps storage-level failures on inserts to the domain error
// taxonomy: unique violations become DuplicateEntity, everything else is a
// server failure. Raw driver errors never escape the repository layer.
func translateCreate(entity string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return apperrors.NewDuplicate(entity, map[string]any{"constraint": pgErr.ConstraintName})
	}
	return apperrors.NewServerFailure(err)
}

// translateGet maps read failures: no rows becomes NotFound for the given
// resource, everything else is a server failure.
func translateGet(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	return apperrors.NewServerFailure(err)
}
