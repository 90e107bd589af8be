package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffOnboarded    EventType = "staff_onboarded"
	EventDepartmentCreated EventType = "department_created"
	EventAdminPromoted     EventType = "admin_promoted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffOnboardedPayload payload.
type StaffOnboardedPayload struct {
	StaffID        string `json:"staff_id"`
	UserID         string `json:"user_id"`
	DepartmentID   string `json:"department_id"`
	MobileNetwork  string `json:"mobile_network"`
	CachePublished bool   `json:"cache_published"`
}

// DepartmentCreatedPayload payload.
type DepartmentCreatedPayload struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
}

// AdminPromotedPayload payload.
type AdminPromotedPayload struct {
	AdminID string `json:"admin_id"`
	StaffID string `json:"staff_id"`
}
