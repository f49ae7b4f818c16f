package wagerate

type CreateWageRateRequest struct {
	RoleID               string   `json:"role_id" binding:"required,uuid"`
	HourlyRate           float64  `json:"hourly_rate" binding:"required,gt=0"`
	OvertimeMultiplier   *float64 `json:"overtime_multiplier" binding:"omitempty,gt=0"`
	DoubleTimeMultiplier *float64 `json:"double_time_multiplier" binding:"omitempty,gt=0"`
	EffectiveDate        string   `json:"effective_date" binding:"required"`
}

type UpdateWageRateRequest struct {
	HourlyRate           float64  `json:"hourly_rate" binding:"required,gt=0"`
	OvertimeMultiplier   *float64 `json:"overtime_multiplier" binding:"omitempty,gt=0"`
	DoubleTimeMultiplier *float64 `json:"double_time_multiplier" binding:"omitempty,gt=0"`
	EffectiveDate        string   `json:"effective_date" binding:"required"`
}

type WageRateResponse struct {
	ID                   string  `json:"id"`
	RoleID               string  `json:"role_id"`
	HourlyRate           float64 `json:"hourly_rate"`
	OvertimeMultiplier   float64 `json:"overtime_multiplier"`
	DoubleTimeMultiplier float64 `json:"double_time_multiplier"`
	EffectiveDate        string  `json:"effective_date"`
}
