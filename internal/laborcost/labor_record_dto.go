package laborcost

// CreateLaborRecordRequest accepts a manual payment-type record; the service
// runs it through Calculate before persisting.
type CreateLaborRecordRequest struct {
	EmployeeID    string   `json:"employee_id" binding:"required,uuid"`
	SiteID        *string  `json:"site_id" binding:"omitempty,uuid"`
	PaymentType   string   `json:"payment_type" binding:"required,oneof=hourly monthly bonus overtime commission"`
	Amount        *float64 `json:"amount"`
	HoursWorked   *float64 `json:"hours_worked"`
	HourlyRate    *float64 `json:"hourly_rate"`
	OvertimeHours *float64 `json:"overtime_hours"`
	OvertimeRate  *float64 `json:"overtime_rate"`
	BonusAmount   *float64 `json:"bonus_amount"`
	WorkDate      *string  `json:"work_date"`
	Notes         *string  `json:"notes"`
}

type FromAttendanceRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Date        string  `json:"date" binding:"required"`
	SiteID      *string `json:"site_id" binding:"omitempty,uuid"`
	Progressive *bool   `json:"progressive"`
}

type GeneratePeriodRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	SiteID      *string `json:"site_id" binding:"omitempty,uuid"`
	Progressive *bool   `json:"progressive"`
}

type UpdateStatusRequest struct {
	Notes *string `json:"notes"`
}

type LaborRecordResponse struct {
	ID              string   `json:"id"`
	ReferenceNumber string   `json:"reference_number"`
	EmployeeID      string   `json:"employee_id"`
	EmployeeName    string   `json:"employee_name,omitempty"`
	SiteID          string   `json:"site_id,omitempty"`
	PaymentType     string   `json:"payment_type"`
	Status          string   `json:"status"`
	Amount          float64  `json:"amount"`
	HoursWorked     *float64 `json:"hours_worked,omitempty"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	OvertimeHours   *float64 `json:"overtime_hours,omitempty"`
	DoubleTimeHours *float64 `json:"double_time_hours,omitempty"`
	OvertimeRate    *float64 `json:"overtime_rate,omitempty"`
	BaseCost        *float64 `json:"base_cost,omitempty"`
	OvertimeCost    *float64 `json:"overtime_cost,omitempty"`
	BonusAmount     *float64 `json:"bonus_amount,omitempty"`
	TaxAmount       float64  `json:"tax_amount"`
	NetAmount       float64  `json:"net_amount"`
	WorkDate        *string  `json:"work_date,omitempty"`
	PeriodStart     *string  `json:"period_start,omitempty"`
	PeriodEnd       *string  `json:"period_end,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// PaymentTypeStat is one row of the payment-type analytics breakdown.
type PaymentTypeStat struct {
	PaymentType string  `json:"payment_type"`
	RecordCount int64   `json:"record_count"`
	TotalAmount float64 `json:"total_amount"`
	TotalTax    float64 `json:"total_tax"`
	TotalNet    float64 `json:"total_net"`
}
