package domain

import "time"

// Timestamps carries the audit times every persisted entity embeds.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is the identity record behind every staff member. Email and phone
// number are globally unique; the mobile network is resolved from the phone
// prefix at creation time.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	MobileNetwork string
	State         string
	LGA           string
	Ward          string
	PasswordHash  string
	Timestamps
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
