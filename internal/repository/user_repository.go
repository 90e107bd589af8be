package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/afit-dev/staff-management/internal/domain"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// UserRepository defines persistence access for identity records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, lookup domain.UserLookup) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO users (id, first_name, last_name, email, phone_number, mobile_network, state, lga, ward, password_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PhoneNumber,
		user.MobileNetwork,
		user.State,
		user.LGA,
		user.Ward,
		user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return translateCreate("user", err)
}

func (r *userRepository) Get(ctx context.Context, lookup domain.UserLookup) (*domain.User, error) {
	if lookup.IsZero() {
		return nil, apperrors.NewValidationError("user lookup requires an email or an id", nil)
	}
	column, value := lookup.Key()
	query := `
        SELECT id, first_name, last_name, email, phone_number, mobile_network, state, lga, ward, password_hash, created_at, updated_at
        FROM users WHERE ` + column + `=$1`

	var user domain.User
	if err := r.db.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PhoneNumber,
		&user.MobileNetwork,
		&user.State,
		&user.LGA,
		&user.Ward,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, translateGet("user", err)
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`, email)
}

func (r *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE phone_number=$1)`, phone)
}

func (r *userRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, apperrors.NewServerFailure(err)
	}
	return exists, nil
}
