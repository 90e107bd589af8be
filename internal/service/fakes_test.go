package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/afit-dev/staff-management/internal/domain"
	"github.com/afit-dev/staff-management/internal/repository"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// fakeStore is an in-memory Store with rollback semantics: the entity maps
// are snapshotted before WithinTx runs and restored when the callback fails,
// so tests can assert that no partial state survives a failed transaction.
type fakeStore struct {
	users  map[string]*domain.User       // by user id
	depts  map[string]*domain.Department // by department id
	staff  map[string]*domain.Staff      // by staff id
	admins map[string]*domain.Admin      // by staff id

	staffCreateErr error
	userCreateErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  map[string]*domain.User{},
		depts:  map[string]*domain.Department{},
		staff:  map[string]*domain.Staff{},
		admins: map[string]*domain.Admin{},
	}
}

func (s *fakeStore) Users() repository.UserRepository             { return &fakeUserRepo{s} }
func (s *fakeStore) Departments() repository.DepartmentRepository { return &fakeDeptRepo{s} }
func (s *fakeStore) Staff() repository.StaffRepository            { return &fakeStaffRepo{s} }
func (s *fakeStore) Admins() repository.AdminRepository           { return &fakeAdminRepo{s} }

func (s *fakeStore) WithinTx(_ context.Context, fn func(tx repository.Tx) error) error {
	users := cloneMap(s.users)
	depts := cloneMap(s.depts)
	staff := cloneMap(s.staff)
	admins := cloneMap(s.admins)

	if err := fn(s); err != nil {
		s.users, s.depts, s.staff, s.admins = users, depts, staff, admins
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *fakeStore) addDepartment(id, name, shortName string, headAdminID *string) *domain.Department {
	dept := &domain.Department{ID: id, Name: name, ShortName: shortName, HeadAdminID: headAdminID}
	s.depts[id] = dept
	return dept
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.s.userCreateErr != nil {
		return r.s.userCreateErr
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return apperrors.NewDuplicate("user", map[string]any{"constraint": "users_email_key"})
		}
		if existing.PhoneNumber == user.PhoneNumber {
			return apperrors.NewDuplicate("user", map[string]any{"constraint": "users_phone_number_key"})
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, lookup domain.UserLookup) (*domain.User, error) {
	if lookup.IsZero() {
		return nil, apperrors.NewValidationError("user lookup requires an email or an id", nil)
	}
	column, value := lookup.Key()
	for _, user := range r.s.users {
		if (column == "id" && user.ID == value) || (column == "email" && user.Email == value) {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFound("user", nil)
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, user := range r.s.users {
		if user.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakeDeptRepo struct{ s *fakeStore }

func (r *fakeDeptRepo) Create(_ context.Context, dept *domain.Department) error {
	if dept.ID == "" {
		dept.ID = uuid.NewString()
	}
	for _, existing := range r.s.depts {
		if existing.Name == dept.Name {
			return apperrors.NewDuplicate("department", map[string]any{"constraint": "departments_name_key"})
		}
		if existing.ShortName == dept.ShortName {
			return apperrors.NewDuplicate("department", map[string]any{"constraint": "departments_short_name_key"})
		}
	}
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	r.s.depts[dept.ID] = dept
	return nil
}

func (r *fakeDeptRepo) GetByID(_ context.Context, id string) (*domain.Department, error) {
	dept, ok := r.s.depts[id]
	if !ok {
		return nil, apperrors.NewNotFound("department", nil)
	}
	return dept, nil
}

func (r *fakeDeptRepo) LockByID(ctx context.Context, id string) (*domain.Department, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeDeptRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.depts[id]
	return ok, nil
}

type fakeStaffRepo struct{ s *fakeStore }

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	if r.s.staffCreateErr != nil {
		return r.s.staffCreateErr
	}
	if _, taken := r.s.staff[staff.ID]; taken {
		return apperrors.NewDuplicate("staff", map[string]any{"constraint": "staff_pkey"})
	}
	for _, existing := range r.s.staff {
		if existing.UserID == staff.UserID {
			return apperrors.NewDuplicate("staff", map[string]any{"constraint": "staff_user_id_key"})
		}
	}
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt
	r.s.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	staff, ok := r.s.staff[id]
	if !ok {
		return nil, apperrors.NewNotFound("staff", nil)
	}
	return staff, nil
}

func (r *fakeStaffRepo) GetByUserID(_ context.Context, userID string) (*domain.Staff, error) {
	for _, staff := range r.s.staff {
		if staff.UserID == userID {
			return staff, nil
		}
	}
	return nil, apperrors.NewNotFound("staff", nil)
}

func (r *fakeStaffRepo) CountByDepartment(_ context.Context, departmentID string) (int, error) {
	count := 0
	for _, staff := range r.s.staff {
		if staff.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

type fakeAdminRepo struct{ s *fakeStore }

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	if _, taken := r.s.admins[admin.StaffID]; taken {
		return apperrors.NewDuplicate("admin", map[string]any{"constraint": "admins_staff_id_key"})
	}
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	r.s.admins[admin.StaffID] = admin
	return nil
}

func (r *fakeAdminRepo) GetByStaffID(_ context.Context, staffID string) (*domain.Admin, error) {
	admin, ok := r.s.admins[staffID]
	if !ok {
		return nil, apperrors.NewNotFound("admin", nil)
	}
	return admin, nil
}

func (r *fakeAdminRepo) ExistsByStaffID(_ context.Context, staffID string) (bool, error) {
	_, ok := r.s.admins[staffID]
	return ok, nil
}

// fakePublisher records snapshots and reports a configurable outcome.
type fakePublisher struct {
	ok        bool
	published []domain.StaffSnapshot
}

func (p *fakePublisher) Publish(_ context.Context, snapshot domain.StaffSnapshot) bool {
	p.published = append(p.published, snapshot)
	return p.ok
}
