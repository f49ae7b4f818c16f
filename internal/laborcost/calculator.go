package laborcost

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"go-siteops/internal/attendance"
	"go-siteops/internal/wagerate"
)

// AttendanceSource is the slice of the attendance repository the calculator
// reads. Completed intervals only; open ones never count.
type AttendanceSource interface {
	FindCompletedByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time, siteID *string) ([]attendance.Attendance, error)
}

// AttendanceCostResult is the attendance-derived breakdown for one employee on
// one day, with the hour split and wage snapshot it was computed from.
type AttendanceCostResult struct {
	CostCalculation
	EmployeeID string                `json:"employee_id"`
	Date       string                `json:"date"`
	Hours      attendance.DailyHours `json:"attendance_hours"`
	WageInfo   wagerate.Info         `json:"wage_info"`
}

// Calculator turns attendance intervals into payroll cost. The wage provider
// is injected so tests can substitute the cache.
type Calculator struct {
	rates     wagerate.Provider
	intervals AttendanceSource
	otConfig  ProgressiveConfig
	logger    *zap.Logger
}

func NewCalculator(rates wagerate.Provider, intervals AttendanceSource, logger ...*zap.Logger) *Calculator {
	l := zap.L().Named("laborcost.calculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("laborcost.calculator")
	}
	return &Calculator{
		rates:     rates,
		intervals: intervals,
		otConfig:  DefaultProgressiveConfig(),
		logger:    l,
	}
}

// CalculateFromAttendance resolves the employee's wage rate, aggregates the
// day's completed intervals and prices the regular/overtime/double-time
// split. A day without attendance yields a zero-cost result, not an error;
// a missing wage rate is a hard failure.
func (c *Calculator) CalculateFromAttendance(
	ctx context.Context,
	employeeID string,
	date time.Time,
	siteID *string,
	progressive bool,
) (AttendanceCostResult, error) {
	info, err := c.rates.GetForEmployee(ctx, employeeID)
	if err != nil {
		return AttendanceCostResult{}, err
	}

	return c.calculateDay(ctx, employeeID, date, siteID, progressive, info)
}

// calculateDay prices one day against an already-resolved wage snapshot, so
// period aggregation can hoist the rate lookup.
func (c *Calculator) calculateDay(
	ctx context.Context,
	employeeID string,
	date time.Time,
	siteID *string,
	progressive bool,
	info wagerate.Info,
) (AttendanceCostResult, error) {
	rows, err := c.intervals.FindCompletedByEmployeeAndDay(ctx, employeeID, date, siteID)
	if err != nil {
		return AttendanceCostResult{}, err
	}

	hours, err := attendance.AggregateDailyHours(rows)
	if err != nil {
		return AttendanceCostResult{}, err
	}

	calc := c.priceHours(hours, info, progressive)

	return AttendanceCostResult{
		CostCalculation: calc,
		EmployeeID:      employeeID,
		Date:            date.Format("2006-01-02"),
		Hours:           hours,
		WageInfo:        info,
	}, nil
}

func (c *Calculator) priceHours(hours attendance.DailyHours, info wagerate.Info, progressive bool) CostCalculation {
	baseRate := info.HourlyRate

	var calc CostCalculation
	calc.BaseCost = hours.RegularHours * baseRate

	if hours.OvertimeHours > 0 {
		if progressive {
			// Each started overtime hour consumes one full stepped rate:
			// 0.5h of overtime still pays the whole hour-9 rate.
			steps := int(math.Ceil(hours.OvertimeHours))
			for i := 1; i <= steps; i++ {
				calc.OvertimeCost += RateForHour(baseRate, c.otConfig.StartAfterHours+i, c.otConfig)
			}
		} else {
			calc.OvertimeCost = hours.OvertimeHours * baseRate * info.OvertimeMultiplier
		}
	}

	if hours.DoubleTimeHours > 0 {
		calc.DoubleTimeCost = hours.DoubleTimeHours * baseRate * info.DoubleTimeMultiplier
	}

	calc.TotalCost = calc.BaseCost + calc.OvertimeCost + calc.DoubleTimeCost
	calc.TaxRate = taxRates[PaymentTypeHourly]
	calc.TaxAmount = calc.TotalCost * calc.TaxRate
	calc.NetAmount = calc.TotalCost * (1 - calc.TaxRate)

	return calc
}
