package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/afit-dev/staff-management/internal/domain"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	Exists(ctx context.Context, id string) (bool, error)
	// LockByID fetches the department while holding a row-level lock, which
	// serializes concurrent onboarding into the same department for the
	// remainder of the transaction. Only meaningful inside WithinTx.
	LockByID(ctx context.Context, id string) (*domain.Department, error)
}

type departmentRepository struct {
	db DBTX
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(db DBTX) DepartmentRepository {
	return &departmentRepository{db: db}
}

const departmentColumns = `id, name, short_name, description, head_admin_id, created_at, updated_at`

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	if dept.ID == "" {
		dept.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO departments (id, name, short_name, description, head_admin_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		dept.ID,
		dept.Name,
		dept.ShortName,
		dept.Description,
		dept.HeadAdminID,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)
	return translateCreate("department", err)
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return r.get(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id=$1`, id)
}

func (r *departmentRepository) LockByID(ctx context.Context, id string) (*domain.Department, error) {
	return r.get(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id=$1 FOR UPDATE`, id)
}

func (r *departmentRepository) get(ctx context.Context, query, id string) (*domain.Department, error) {
	var dept domain.Department
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&dept.ID,
		&dept.Name,
		&dept.ShortName,
		&dept.Description,
		&dept.HeadAdminID,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, translateGet("department", err)
	}
	return &dept, nil
}

func (r *departmentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, apperrors.NewServerFailure(err)
	}
	return exists, nil
}
