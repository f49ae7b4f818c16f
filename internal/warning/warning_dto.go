package warning

type CreateWarningRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Severity    string  `json:"severity" binding:"required,oneof=MINOR MAJOR CRITICAL"`
	Reason      string  `json:"reason" binding:"required,min=3,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

type WarningResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	IssuedBy       *string `json:"issued_by,omitempty"`
	Severity       string  `json:"severity"`
	Reason         string  `json:"reason"`
	Description    *string `json:"description,omitempty"`
	AcknowledgedAt *string `json:"acknowledged_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
