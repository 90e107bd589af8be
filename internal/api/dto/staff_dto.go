package dto

// StaffOnboardRequest payload for onboarding a new staff member.
// Password is optional; a random one is generated when absent.
type StaffOnboardRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	State        string `json:"state"`
	LGA          string `json:"lga"`
	Ward         string `json:"ward"`
	Password     string `json:"password,omitempty"`
	DepartmentID string `json:"department_id"`
}

// StaffResponse is the serialized staff record.
type StaffResponse struct {
	StaffID      string       `json:"staff_id"`
	DepartmentID string       `json:"department_id"`
	SupervisorID *string      `json:"supervisor_id,omitempty"`
	User         UserResponse `json:"user"`
	CacheWarning string       `json:"cache_warning,omitempty"`
}

// AdminPromoteRequest payload for promoting a staff member to admin.
type AdminPromoteRequest struct {
	StaffID string `json:"staff_id"`
}

// AdminResponse is the serialized admin record.
type AdminResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
}
