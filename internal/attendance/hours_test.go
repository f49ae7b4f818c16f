package attendance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-siteops/internal/attendance"
	"go-siteops/internal/shared/apperror"
)

func completed(fromHour, fromMin, toHour, toMin int) attendance.Attendance {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := day.Add(time.Duration(toHour)*time.Hour + time.Duration(toMin)*time.Minute)
	return attendance.Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		CheckIn:    day.Add(time.Duration(fromHour)*time.Hour + time.Duration(fromMin)*time.Minute),
		CheckOut:   &out,
	}
}

func TestSplitHours(t *testing.T) {
	tests := []struct {
		name       string
		minutes    int64
		regular    float64
		overtime   float64
		doubleTime float64
	}{
		{"short day", 6 * 60, 6, 0, 0},
		{"exactly eight", 8 * 60, 8, 0, 0},
		{"nine hours", 9 * 60, 8, 1, 0},
		{"exactly twelve", 12 * 60, 8, 4, 0},
		{"fourteen hours", 14 * 60, 8, 4, 2},
		{"half hour into overtime", 8*60 + 30, 8, 0.5, 0},
		{"zero", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hours := attendance.SplitHours(tc.minutes)

			assert.InDelta(t, tc.regular, hours.RegularHours, 1e-6)
			assert.InDelta(t, tc.overtime, hours.OvertimeHours, 1e-6)
			assert.InDelta(t, tc.doubleTime, hours.DoubleTimeHours, 1e-6)
			assert.InDelta(t, hours.TotalHours,
				hours.RegularHours+hours.OvertimeHours+hours.DoubleTimeHours, 1e-6)
			assert.LessOrEqual(t, hours.RegularHours, attendance.RegularHoursPerDay)
			assert.LessOrEqual(t, hours.OvertimeHours, attendance.DoubleTimeAfter-attendance.RegularHoursPerDay)
		})
	}
}

func TestAggregateDailyHours_SumsCompletedIntervals(t *testing.T) {
	intervals := []attendance.Attendance{
		completed(8, 0, 12, 0),
		completed(13, 0, 18, 0),
	}

	hours, err := attendance.AggregateDailyHours(intervals)

	assert.NoError(t, err)
	assert.Equal(t, int64(540), hours.TotalMinutes)
	assert.InDelta(t, 8.0, hours.RegularHours, 1e-6)
	assert.InDelta(t, 1.0, hours.OvertimeHours, 1e-6)
}

func TestAggregateDailyHours_FloorsPartialMinutes(t *testing.T) {
	iv := completed(9, 0, 17, 0)
	out := iv.CheckOut.Add(30 * time.Second)
	iv.CheckOut = &out

	hours, err := attendance.AggregateDailyHours([]attendance.Attendance{iv})

	assert.NoError(t, err)
	assert.Equal(t, int64(480), hours.TotalMinutes)
}

func TestAggregateDailyHours_SkipsOpenInterval(t *testing.T) {
	open := completed(14, 0, 15, 0)
	open.CheckOut = nil

	hours, err := attendance.AggregateDailyHours([]attendance.Attendance{
		completed(8, 0, 12, 0),
		open,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(240), hours.TotalMinutes)
}

func TestAggregateDailyHours_CheckoutBeforeCheckin(t *testing.T) {
	iv := completed(10, 0, 9, 0)

	_, err := attendance.AggregateDailyHours([]attendance.Attendance{iv})

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeComputationError, appErr.Code)
}

func TestAggregateDailyHours_NoIntervals(t *testing.T) {
	hours, err := attendance.AggregateDailyHours(nil)

	assert.NoError(t, err)
	assert.Zero(t, hours.TotalMinutes)
	assert.Zero(t, hours.RegularHours)
	assert.Zero(t, hours.OvertimeHours)
	assert.Zero(t, hours.DoubleTimeHours)
}
