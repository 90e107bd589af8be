package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/afit-dev/staff-management/internal/auth"
	"github.com/afit-dev/staff-management/internal/config"
	"github.com/afit-dev/staff-management/internal/domain"
	"github.com/afit-dev/staff-management/internal/events"
	"github.com/afit-dev/staff-management/internal/observability"
	"github.com/afit-dev/staff-management/internal/repository"
	"github.com/afit-dev/staff-management/internal/staffid"
	"github.com/afit-dev/staff-management/internal/validation"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// SnapshotPublisher is the cache side channel fed after onboarding commits.
type SnapshotPublisher interface {
	Publish(ctx context.Context, snapshot domain.StaffSnapshot) bool
}

// OnboardingInput carries the candidate fields for a new staff member.
// Password is optional; when empty a random one is generated and hashed.
type OnboardingInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	State        string
	LGA          string
	Ward         string
	Password     string
	DepartmentID string
}

// OnboardingResult is the outcome of a successful onboarding call.
// CacheWarning is non-empty when the snapshot publish failed; the relational
// record is committed and authoritative regardless.
type OnboardingResult struct {
	Staff        *domain.Staff
	User         *domain.User
	Department   *domain.Department
	CacheWarning string
}

// StaffDetail joins a staff record with its user and department.
type StaffDetail struct {
	Staff      *domain.Staff
	User       *domain.User
	Department *domain.Department
}

// OnboardingService coordinates the multi-entity staff creation pipeline:
// identity validation, user and staff creation inside one transaction, staff
// id synthesis, and best-effort cache publication after commit.
type OnboardingService struct {
	store      repository.Store
	validator  *validation.IdentityValidator
	ids        staffid.Generator
	cache      SnapshotPublisher
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	bcryptCost int
}

// OnboardingDependencies bundles collaborators for the orchestrator.
type OnboardingDependencies struct {
	Store      repository.Store
	Validator  *validation.IdentityValidator
	Cache      SnapshotPublisher
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// NewOnboardingService constructs the service.
func NewOnboardingService(cfg *config.Config, deps OnboardingDependencies) *OnboardingService {
	return &OnboardingService{
		store:      deps.Store,
		validator:  deps.Validator,
		ids:        staffid.NewGenerator(cfg.Staff.OrgPrefix),
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// OnboardStaff validates the candidate, then atomically creates the User and
// Staff records. The department row is locked before the staff count is read,
// so two concurrent calls into the same department cannot derive the same
// sequence number; calls into different departments do not block each other.
// On any storage failure during the transaction, everything rolls back and
// the caller observes no partial state. The cache snapshot is published only
// after commit and its failure surfaces as a warning, never as an error.
func (s *OnboardingService) OnboardStaff(ctx context.Context, input OnboardingInput) (*OnboardingResult, error) {
	email, err := s.validator.ValidateEmail(input.Email)
	if err != nil {
		return nil, err
	}
	phone, network, err := s.validator.ValidatePhone(input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if input.FirstName == "" || input.LastName == "" {
		return nil, apperrors.NewValidationError("first and last name required", nil)
	}
	if input.DepartmentID == "" {
		return nil, apperrors.NewValidationError("department id required", nil)
	}

	// Hash before the transaction opens: bcrypt is deliberately slow and has
	// no business holding row locks.
	plaintext := input.Password
	if plaintext == "" {
		plaintext, err = auth.RandomPassword()
		if err != nil {
			return nil, apperrors.NewServerFailure(err)
		}
	}
	hash, err := auth.HashPassword(plaintext, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewServerFailure(err)
	}

	var (
		user  *domain.User
		staff *domain.Staff
		dept  *domain.Department
	)
	err = s.store.WithinTx(ctx, func(tx repository.Tx) error {
		exists, err := tx.Users().ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewDuplicate("user", map[string]any{"email": email})
		}

		dept, err = tx.Departments().LockByID(ctx, input.DepartmentID)
		if err != nil {
			return err
		}

		user = &domain.User{
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			Email:         email,
			PhoneNumber:   phone,
			MobileNetwork: network,
			State:         input.State,
			LGA:           input.LGA,
			Ward:          input.Ward,
			PasswordHash:  hash,
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}

		count, err := tx.Staff().CountByDepartment(ctx, dept.ID)
		if err != nil {
			return err
		}

		staff = &domain.Staff{
			ID:           s.ids.Generate(dept.ShortName, count+1),
			UserID:       user.ID,
			DepartmentID: dept.ID,
			SupervisorID: dept.HeadAdminID,
		}
		return tx.Staff().Create(ctx, staff)
	})
	if err != nil {
		s.metrics.RecordOnboarding(input.DepartmentID, false)
		return nil, err
	}
	s.metrics.RecordOnboarding(dept.ID, true)

	result := &OnboardingResult{Staff: staff, User: user, Department: dept}

	published := s.cache.Publish(ctx, domain.StaffSnapshot{
		StaffID:      staff.ID,
		DepartmentID: dept.ID,
		User:         domain.ViewOf(user),
	})
	s.metrics.RecordCachePublish(published)
	if !published {
		result.CacheWarning = "staff snapshot not cached"
		s.logger.Warn("onboarding committed but snapshot publish failed",
			zap.String("staff_id", staff.ID))
	}

	s.dispatch(ctx, events.EventStaffOnboarded, events.StaffOnboardedPayload{
		StaffID:        staff.ID,
		UserID:         user.ID,
		DepartmentID:   dept.ID,
		MobileNetwork:  user.MobileNetwork,
		CachePublished: published,
	})

	return result, nil
}

// GetStaff fetches a staff record with its user and department.
func (s *OnboardingService) GetStaff(ctx context.Context, staffID string) (*StaffDetail, error) {
	staff, err := s.store.Staff().GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	user, err := s.store.Users().Get(ctx, domain.ByID(staff.UserID))
	if err != nil {
		return nil, err
	}
	dept, err := s.store.Departments().GetByID(ctx, staff.DepartmentID)
	if err != nil {
		return nil, err
	}
	return &StaffDetail{Staff: staff, User: user, Department: dept}, nil
}

func (s *OnboardingService) dispatch(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
