package notification

// LaborRecordNotice carries the fields of a freshly created labor record that
// end up in the employee-facing notification text.
type LaborRecordNotice struct {
	LaborRecordID string
	EmployeeID    string
	SiteID        string
	PaymentType   string
	Amount        float64
}

type NotificationResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	ReferenceID *string `json:"reference_id,omitempty"`
	ReadAt      *string `json:"read_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
