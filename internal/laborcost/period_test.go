package laborcost_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-siteops/internal/attendance"
	"go-siteops/internal/laborcost"
	wagerateMock "go-siteops/internal/wagerate/mock"
)

// dayKeyedSource serves different intervals per calendar day.
type dayKeyedSource struct {
	byDay map[string][]attendance.Attendance
}

func (s *dayKeyedSource) FindCompletedByEmployeeAndDay(
	_ context.Context, _ string, day time.Time, _ *string,
) ([]attendance.Attendance, error) {
	return s.byDay[day.Format("2006-01-02")], nil
}

func TestCalculateForPeriod_SkipsZeroDaysAndTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	// wage info hoisted once for the whole period
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(18.0), nil).
		Times(1)

	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	wed := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	source := &dayKeyedSource{byDay: map[string][]attendance.Attendance{
		"2026-03-02": {interval(mon, 8, 16)},  // 8h regular
		"2026-03-04": {interval(wed, 8, 17)},  // 9h: 8 regular + 1 overtime
	}}

	calc := laborcost.NewCalculator(rates, source)
	result, err := calc.CalculateForPeriod(
		context.Background(), employeeID, mon, mon.AddDate(0, 0, 4), nil, false)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.DaysWorked)
	assert.Len(t, result.DailyBreakdown, 2)
	assert.Equal(t, []string{"2026-03-03", "2026-03-05", "2026-03-06"}, result.SkippedDates)

	// Mon 8*18=144, Wed 144 + 27 overtime
	assert.InDelta(t, 288.0, result.TotalBaseCost, 1e-6)
	assert.InDelta(t, 27.0, result.TotalOvertime, 1e-6)
	assert.InDelta(t, 315.0, result.TotalGross, 1e-6)
	assert.InDelta(t, result.TotalGross, result.TotalTax+result.TotalNet, 1e-6)
	assert.InDelta(t, 18.0, result.WageInfo.HourlyRate, 1e-6)
}

func TestCalculateForPeriod_SingleDayInclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(20.0), nil)

	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	source := &dayKeyedSource{byDay: map[string][]attendance.Attendance{
		"2026-04-01": {interval(day, 9, 15)},
	}}

	calc := laborcost.NewCalculator(rates, source)
	result, err := calc.CalculateForPeriod(context.Background(), employeeID, day, day, nil, true)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.DaysWorked)
	assert.Empty(t, result.SkippedDates)
	assert.InDelta(t, 120.0, result.TotalGross, 1e-6)
}

func TestCalculateForPeriod_AllZeroDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(20.0), nil)

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)

	calc := laborcost.NewCalculator(rates, &dayKeyedSource{byDay: map[string][]attendance.Attendance{}})
	result, err := calc.CalculateForPeriod(context.Background(), employeeID, start, start.AddDate(0, 0, 2), nil, true)

	assert.NoError(t, err)
	assert.Zero(t, result.DaysWorked)
	assert.Empty(t, result.DailyBreakdown)
	assert.Len(t, result.SkippedDates, 3)
	assert.Zero(t, result.TotalGross)
}

func TestCalculateForPeriod_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(20.0), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	calc := laborcost.NewCalculator(rates, &dayKeyedSource{})
	_, err := calc.CalculateForPeriod(ctx, employeeID, start, start.AddDate(0, 0, 30), nil, true)

	assert.ErrorIs(t, err, context.Canceled)
}
