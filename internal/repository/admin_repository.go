package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/afit-dev/staff-management/internal/domain"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// AdminRepository handles persistence for admin records.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByStaffID(ctx context.Context, staffID string) (*domain.Admin, error)
	ExistsByStaffID(ctx context.Context, staffID string) (bool, error)
}

type adminRepository struct {
	db DBTX
}

// NewAdminRepository instantiates the repository.
func NewAdminRepository(db DBTX) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO admins (id, staff_id)
        VALUES ($1,$2)
        RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query, admin.ID, admin.StaffID).
		Scan(&admin.CreatedAt, &admin.UpdatedAt)
	return translateCreate("admin", err)
}

func (r *adminRepository) GetByStaffID(ctx context.Context, staffID string) (*domain.Admin, error) {
	const query = `
        SELECT id, staff_id, created_at, updated_at
        FROM admins WHERE staff_id=$1`

	var admin domain.Admin
	if err := r.db.QueryRow(ctx, query, staffID).Scan(
		&admin.ID,
		&admin.StaffID,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, translateGet("admin", err)
	}
	return &admin, nil
}

func (r *adminRepository) ExistsByStaffID(ctx context.Context, staffID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE staff_id=$1)`, staffID).Scan(&exists); err != nil {
		return false, apperrors.NewServerFailure(err)
	}
	return exists, nil
}
