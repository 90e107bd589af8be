package repository

import (
	"context"

	"github.com/afit-dev/staff-management/internal/domain"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// StaffRepository handles persistence for staff records.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Staff, error)
	// CountByDepartment returns the current number of staff rows in the
	// department. Call it inside the onboarding transaction, after locking
	// the department row, so the derived sequence number stays race-free.
	CountByDepartment(ctx context.Context, departmentID string) (int, error)
}

type staffRepository struct {
	db DBTX
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(db DBTX) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff (id, user_id, department_id, supervisor_id)
        VALUES ($1,$2,$3,$4)
        RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		staff.ID,
		staff.UserID,
		staff.DepartmentID,
		staff.SupervisorID,
	).Scan(&staff.CreatedAt, &staff.UpdatedAt)
	return translateCreate("staff", err)
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	return r.get(ctx, `WHERE id=$1`, id)
}

func (r *staffRepository) GetByUserID(ctx context.Context, userID string) (*domain.Staff, error) {
	return r.get(ctx, `WHERE user_id=$1`, userID)
}

func (r *staffRepository) get(ctx context.Context, where, arg string) (*domain.Staff, error) {
	query := `
        SELECT id, user_id, department_id, supervisor_id, created_at, updated_at
        FROM staff ` + where

	var staff domain.Staff
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.DepartmentID,
		&staff.SupervisorID,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, translateGet("staff", err)
	}
	return &staff, nil
}

func (r *staffRepository) CountByDepartment(ctx context.Context, departmentID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff WHERE department_id=$1`, departmentID).Scan(&count); err != nil {
		return 0, apperrors.NewServerFailure(err)
	}
	return count, nil
}
