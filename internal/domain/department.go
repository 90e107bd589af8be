package domain

// Department represents an organizational unit. The short name is exactly
// three characters and feeds into staff id synthesis.
type Department struct {
	ID          string
	Name        string
	ShortName   string
	Description string
	HeadAdminID *string
	Timestamps
}
