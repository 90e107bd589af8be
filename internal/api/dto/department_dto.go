package dto

// DepartmentRequest payload for creating a department.
type DepartmentRequest struct {
	Name        string  `json:"name"`
	ShortName   string  `json:"short_name"`
	Description string  `json:"description"`
	HeadAdminID *string `json:"head_admin_id,omitempty"`
}

// DepartmentResponse is the serialized department.
type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ShortName   string  `json:"short_name"`
	Description string  `json:"description"`
	HeadAdminID *string `json:"head_admin_id,omitempty"`
}
