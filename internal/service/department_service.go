package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/afit-dev/staff-management/internal/domain"
	"github.com/afit-dev/staff-management/internal/events"
	"github.com/afit-dev/staff-management/internal/repository"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

var shortNamePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

func normalizeShortName(s string) string {
	return strings.ToUpper(s)
}

// DepartmentService manages departments and admin promotion.
type DepartmentService struct {
	store      repository.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDepartmentService constructs the service.
func NewDepartmentService(store repository.Store, dispatcher events.Dispatcher, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{store: store, dispatcher: dispatcher, logger: logger}
}

// CreateDepartment creates a department. The short name must be exactly three
// letters; when a head is given it must reference an existing admin.
func (d *DepartmentService) CreateDepartment(ctx context.Context, name, shortName, description string, headAdminID *string) (*domain.Department, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("department name required", nil)
	}
	if !shortNamePattern.MatchString(shortName) {
		return nil, apperrors.NewValidationError("short name must be exactly 3 letters", map[string]any{"short_name": shortName})
	}

	dept := &domain.Department{
		Name:        name,
		ShortName:   normalizeShortName(shortName),
		Description: description,
		HeadAdminID: headAdminID,
	}
	err := d.store.WithinTx(ctx, func(tx repository.Tx) error {
		if headAdminID != nil {
			if _, err := tx.Admins().GetByStaffID(ctx, *headAdminID); err != nil {
				if apperrors.IsNotFound(err) {
					return apperrors.NewNotFound("admin", map[string]any{"staff_id": *headAdminID})
				}
				return err
			}
		}
		return tx.Departments().Create(ctx, dept)
	})
	if err != nil {
		return nil, err
	}

	d.dispatch(ctx, events.EventDepartmentCreated, events.DepartmentCreatedPayload{
		DepartmentID: dept.ID,
		Name:         dept.Name,
		ShortName:    dept.ShortName,
	})
	return dept, nil
}

// GetDepartment fetches a department by id.
func (d *DepartmentService) GetDepartment(ctx context.Context, id string) (*domain.Department, error) {
	return d.store.Departments().GetByID(ctx, id)
}

// PromoteAdmin creates an admin record for an existing staff member. A staff
// member can be promoted at most once.
func (d *DepartmentService) PromoteAdmin(ctx context.Context, staffID string) (*domain.Admin, error) {
	if staffID == "" {
		return nil, apperrors.NewValidationError("staff id required", nil)
	}

	admin := &domain.Admin{StaffID: staffID}
	err := d.store.WithinTx(ctx, func(tx repository.Tx) error {
		if _, err := tx.Staff().GetByID(ctx, staffID); err != nil {
			return err
		}
		exists, err := tx.Admins().ExistsByStaffID(ctx, staffID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewDuplicate("admin", map[string]any{"staff_id": staffID})
		}
		return tx.Admins().Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}

	d.dispatch(ctx, events.EventAdminPromoted, events.AdminPromotedPayload{
		AdminID: admin.ID,
		StaffID: admin.StaffID,
	})
	return admin, nil
}

func (d *DepartmentService) dispatch(ctx context.Context, eventType events.EventType, payload interface{}) {
	if d.dispatcher == nil {
		return
	}
	_ = d.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
