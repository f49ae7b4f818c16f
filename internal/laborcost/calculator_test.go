package laborcost_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-siteops/internal/attendance"
	"go-siteops/internal/laborcost"
	"go-siteops/internal/shared/apperror"
	"go-siteops/internal/wagerate"
	wagerateerrors "go-siteops/internal/wagerate/errors"
	wagerateMock "go-siteops/internal/wagerate/mock"
)

// fakeAttendanceSource returns canned intervals without touching a store.
type fakeAttendanceSource struct {
	rows []attendance.Attendance
	err  error
}

func (f *fakeAttendanceSource) FindCompletedByEmployeeAndDay(
	_ context.Context, _ string, _ time.Time, _ *string,
) ([]attendance.Attendance, error) {
	return f.rows, f.err
}

func interval(day time.Time, fromHour, toHour int) attendance.Attendance {
	checkIn := day.Add(time.Duration(fromHour) * time.Hour)
	checkOut := day.Add(time.Duration(toHour) * time.Hour)
	return attendance.Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
	}
}

func standardWage(rate float64) wagerate.Info {
	return wagerate.Info{
		WageRateID:           uuid.NewString(),
		RoleID:               uuid.NewString(),
		HourlyRate:           rate,
		OvertimeMultiplier:   1.5,
		DoubleTimeMultiplier: 2.0,
		EffectiveDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateFromAttendance_NineHourDayFlatOvertime(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(18.0), nil)

	source := &fakeAttendanceSource{rows: []attendance.Attendance{
		interval(day, 8, 17),
	}}

	calc := laborcost.NewCalculator(rates, source)
	result, err := calc.CalculateFromAttendance(context.Background(), employeeID, day, nil, false)

	assert.NoError(t, err)
	assert.InDelta(t, 8.0, result.Hours.RegularHours, 1e-6)
	assert.InDelta(t, 1.0, result.Hours.OvertimeHours, 1e-6)
	assert.InDelta(t, 144.0, result.BaseCost, 1e-6)
	assert.InDelta(t, 27.0, result.OvertimeCost, 1e-6)
	assert.InDelta(t, 171.0, result.TotalCost, 1e-6)
	assert.InDelta(t, 25.65, result.TaxAmount, 1e-6)
	assert.InDelta(t, 145.35, result.NetAmount, 1e-6)
}

func TestCalculateFromAttendance_FourteenHourDayDoubleTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(18.0), nil)

	source := &fakeAttendanceSource{rows: []attendance.Attendance{
		interval(day, 6, 20),
	}}

	calc := laborcost.NewCalculator(rates, source)
	result, err := calc.CalculateFromAttendance(context.Background(), employeeID, day, nil, false)

	assert.NoError(t, err)
	assert.InDelta(t, 8.0, result.Hours.RegularHours, 1e-6)
	assert.InDelta(t, 4.0, result.Hours.OvertimeHours, 1e-6)
	assert.InDelta(t, 2.0, result.Hours.DoubleTimeHours, 1e-6)
	assert.InDelta(t, 72.0, result.DoubleTimeCost, 1e-6)
}

func TestCalculateFromAttendance_ProgressiveOvertimeSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(20.0), nil)

	// 11 hours: 8 regular + 3 overtime
	source := &fakeAttendanceSource{rows: []attendance.Attendance{
		interval(day, 7, 18),
	}}

	calc := laborcost.NewCalculator(rates, source)
	result, err := calc.CalculateFromAttendance(context.Background(), employeeID, day, nil, true)

	assert.NoError(t, err)
	assert.InDelta(t, 3.0, result.Hours.OvertimeHours, 1e-6)
	// hour9 $30 + hour10 $32 + hour11 $34
	assert.InDelta(t, 96.0, result.OvertimeCost, 1e-6)
}

func TestCalculateFromAttendance_NoAttendanceIsZeroNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(18.0), nil)

	source := &fakeAttendanceSource{}

	calc := laborcost.NewCalculator(rates, source)
	result, err := calc.CalculateFromAttendance(
		context.Background(), employeeID, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), nil, true)

	assert.NoError(t, err)
	assert.Zero(t, result.TotalCost)
	assert.Zero(t, result.Hours.TotalMinutes)
	assert.Zero(t, result.NetAmount)
}

func TestCalculateFromAttendance_MissingWageRateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(wagerate.Info{}, wagerateerrors.ErrNoRateForEmployee)

	calc := laborcost.NewCalculator(rates, &fakeAttendanceSource{})
	_, err := calc.CalculateFromAttendance(
		context.Background(), employeeID, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), nil, true)

	assert.ErrorIs(t, err, wagerateerrors.ErrNoRateForEmployee)
}

func TestCalculateFromAttendance_CorruptIntervalFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(18.0), nil)

	checkIn := day.Add(10 * time.Hour)
	checkOut := day.Add(8 * time.Hour)
	source := &fakeAttendanceSource{rows: []attendance.Attendance{{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
	}}}

	calc := laborcost.NewCalculator(rates, source)
	_, err := calc.CalculateFromAttendance(context.Background(), employeeID, day, nil, true)

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeComputationError, appErr.Code)
}

func TestCalculateFromAttendance_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	employeeID := uuid.NewString()

	rates := wagerateMock.NewMockProvider(ctrl)
	rates.EXPECT().
		GetForEmployee(gomock.Any(), employeeID).
		Return(standardWage(22.5), nil).
		Times(2)

	source := &fakeAttendanceSource{rows: []attendance.Attendance{
		interval(day, 7, 13),
		interval(day, 14, 19),
	}}

	calc := laborcost.NewCalculator(rates, source)
	first, err := calc.CalculateFromAttendance(context.Background(), employeeID, day, nil, true)
	assert.NoError(t, err)
	second, err := calc.CalculateFromAttendance(context.Background(), employeeID, day, nil, true)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
