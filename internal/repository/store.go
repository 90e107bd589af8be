package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// Tx bundles the entity repositories bound to a single transaction scope.
type Tx interface {
	Users() UserRepository
	Departments() DepartmentRepository
	Staff() StaffRepository
	Admins() AdminRepository
}

// Store is the persistence boundary handed to services. Repositories obtained
// directly from the store run on the pool; WithinTx runs the given function
// against repositories bound to one transaction, committing on nil and
// rolling back on error.
type Store interface {
	Tx
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

type pgRepos struct {
	db DBTX
}

func (r pgRepos) Users() UserRepository             { return NewUserRepository(r.db) }
func (r pgRepos) Departments() DepartmentRepository { return NewDepartmentRepository(r.db) }
func (r pgRepos) Staff() StaffRepository            { return NewStaffRepository(r.db) }
func (r pgRepos) Admins() AdminRepository           { return NewAdminRepository(r.db) }

// PgStore is the Postgres-backed Store over a pgx connection pool.
type PgStore struct {
	pgRepos
	pool *pgxpool.Pool
}

// NewStore builds a store over the given pool.
func NewStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pgRepos: pgRepos{db: pool}, pool: pool}
}

// WithinTx opens a transaction, runs fn with repositories bound to it, and
// commits if fn returns nil. Any error from fn rolls the whole scope back, so
// partially created entities are never observable.
func (s *PgStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewServerFailure(err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(pgRepos{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewServerFailure(err)
	}
	return nil
}
