package laborcost

import (
	"context"
	"time"

	"go-siteops/internal/wagerate"
)

// DailyCostEntry is one non-zero day inside a period breakdown.
type DailyCostEntry struct {
	Date            string  `json:"date"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	DoubleTimeHours float64 `json:"double_time_hours"`
	BaseCost        float64 `json:"base_cost"`
	OvertimeCost    float64 `json:"overtime_cost"`
	TotalCost       float64 `json:"total_cost"`
	TaxAmount       float64 `json:"tax_amount"`
	NetAmount       float64 `json:"net_amount"`
}

// PeriodResult rolls a date range up into period totals. Zero-cost days are
// dropped from DailyBreakdown but listed in SkippedDates so callers can tell
// absence from data loss. Double-time cost folds into the overtime total.
type PeriodResult struct {
	EmployeeID     string           `json:"employee_id"`
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	TotalBaseCost  float64          `json:"total_base_cost"`
	TotalOvertime  float64          `json:"total_overtime_cost"`
	TotalGross     float64          `json:"total_gross"`
	TotalTax       float64          `json:"total_tax"`
	TotalNet       float64          `json:"total_net"`
	DaysWorked     int              `json:"days_worked"`
	DailyBreakdown []DailyCostEntry `json:"daily_breakdown"`
	SkippedDates   []string         `json:"skipped_dates,omitempty"`
	WageInfo       wagerate.Info    `json:"wage_info"`
}

// CalculateForPeriod walks every calendar date from start to end inclusive.
// The wage rate is fetched once up front and reused for each day, so the
// result reflects the rate at calculation time rather than historical per-day
// rates.
func (c *Calculator) CalculateForPeriod(
	ctx context.Context,
	employeeID string,
	startDate, endDate time.Time,
	siteID *string,
	progressive bool,
) (PeriodResult, error) {
	info, err := c.rates.GetForEmployee(ctx, employeeID)
	if err != nil {
		return PeriodResult{}, err
	}

	result := PeriodResult{
		EmployeeID: employeeID,
		StartDate:  startDate.Format("2006-01-02"),
		EndDate:    endDate.Format("2006-01-02"),
		WageInfo:   info,
	}

	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return PeriodResult{}, err
		}

		daily, err := c.calculateDay(ctx, employeeID, day, siteID, progressive, info)
		if err != nil {
			return PeriodResult{}, err
		}

		if daily.TotalCost == 0 {
			result.SkippedDates = append(result.SkippedDates, daily.Date)
			continue
		}

		result.TotalBaseCost += daily.BaseCost
		result.TotalOvertime += daily.OvertimeCost + daily.DoubleTimeCost
		result.TotalGross += daily.TotalCost
		result.TotalTax += daily.TaxAmount
		result.TotalNet += daily.NetAmount
		result.DaysWorked++

		result.DailyBreakdown = append(result.DailyBreakdown, DailyCostEntry{
			Date:            daily.Date,
			RegularHours:    daily.Hours.RegularHours,
			OvertimeHours:   daily.Hours.OvertimeHours,
			DoubleTimeHours: daily.Hours.DoubleTimeHours,
			BaseCost:        daily.BaseCost,
			OvertimeCost:    daily.OvertimeCost + daily.DoubleTimeCost,
			TotalCost:       daily.TotalCost,
			TaxAmount:       daily.TaxAmount,
			NetAmount:       daily.NetAmount,
		})
	}

	return result, nil
}
