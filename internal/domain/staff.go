package domain

// Staff links a User to its Department. The id is the human-readable derived
// key of the form ORG/SHORT/NNNN, e.g. AFIT/ENG/0007, and is distinct from
// the user's opaque id. One user maps to at most one staff record.
type Staff struct {
	ID           string
	UserID       string
	DepartmentID string
	SupervisorID *string
	Timestamps
}

// Admin marks a staff record as holding elevated privilege (1:1 with Staff).
type Admin struct {
	ID      string
	StaffID string
	Timestamps
}

// StaffSnapshot is the denormalized cache copy of a freshly onboarded staff
// record. It is a read optimization, never the source of truth; the cache may
// evict it at any time.
type StaffSnapshot struct {
	StaffID      string   `json:"staff_id"`
	DepartmentID string   `json:"department_id"`
	User         UserView `json:"user"`
	Sessions     []string `json:"sessions,omitempty"`
}

// UserView is the user shape embedded in cache snapshots. The password hash
// is deliberately absent.
type UserView struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	MobileNetwork string `json:"mobile_network"`
	State         string `json:"state"`
	LGA           string `json:"lga"`
	Ward          string `json:"ward"`
}

// ViewOf builds the cacheable view of a user.
func ViewOf(u *User) UserView {
	return UserView{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		MobileNetwork: u.MobileNetwork,
		State:         u.State,
		LGA:           u.LGA,
		Ward:          u.Ward,
	}
}
