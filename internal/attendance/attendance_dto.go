package attendance

type ClockInRequest struct {
	SiteID    *string  `json:"site_id" binding:"omitempty,uuid"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Source    string   `json:"source"`
	Notes     *string  `json:"notes"`
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	SiteID       string   `json:"site_id,omitempty"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Status       string   `json:"status"`
	Source       string   `json:"source"`
	Notes        *string  `json:"notes,omitempty"`
}

type DailyHoursResponse struct {
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	SiteID          string  `json:"site_id,omitempty"`
	TotalMinutes    int64   `json:"total_minutes"`
	TotalHours      float64 `json:"total_hours"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	DoubleTimeHours float64 `json:"double_time_hours"`
}
