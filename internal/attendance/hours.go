package attendance

import (
	"fmt"

	"go-siteops/internal/shared/apperror"
)

const (
	RegularHoursPerDay = 8.0
	DoubleTimeAfter    = 12.0
	maxOvertimeHours   = DoubleTimeAfter - RegularHoursPerDay
)

// DailyHours is the derived split of one day's worked time under the fixed
// 8h/12h policy. Invariant: TotalHours = RegularHours + OvertimeHours +
// DoubleTimeHours, every component non-negative.
type DailyHours struct {
	TotalMinutes    int64   `json:"total_minutes"`
	TotalHours      float64 `json:"total_hours"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	DoubleTimeHours float64 `json:"double_time_hours"`
}

// SplitHours buckets a fractional hour total into regular, overtime and
// double-time under the 8h/12h thresholds.
func SplitHours(totalMinutes int64) DailyHours {
	totalHours := float64(totalMinutes) / 60.0

	regular := totalHours
	if regular > RegularHoursPerDay {
		regular = RegularHoursPerDay
	}

	overtime := totalHours - RegularHoursPerDay
	if overtime < 0 {
		overtime = 0
	}
	if overtime > maxOvertimeHours {
		overtime = maxOvertimeHours
	}

	doubleTime := totalHours - DoubleTimeAfter
	if doubleTime < 0 {
		doubleTime = 0
	}

	return DailyHours{
		TotalMinutes:    totalMinutes,
		TotalHours:      totalHours,
		RegularHours:    regular,
		OvertimeHours:   overtime,
		DoubleTimeHours: doubleTime,
	}
}

// AggregateDailyHours sums the completed intervals of one calendar day.
// Open intervals (no checkout yet) must be filtered out by the caller's
// query; one slipping through is skipped here as well. A checkout before
// its check-in is corrupt data and fails the whole aggregation.
func AggregateDailyHours(intervals []Attendance) (DailyHours, error) {
	var totalMinutes int64

	for _, iv := range intervals {
		if iv.CheckOut == nil {
			continue
		}
		if iv.CheckOut.Before(iv.CheckIn) {
			return DailyHours{}, apperror.NewComputation(
				fmt.Errorf("interval %s: check_out %s before check_in %s",
					iv.ID, iv.CheckOut.Format("15:04:05"), iv.CheckIn.Format("15:04:05")),
				"attendance interval has checkout before checkin",
			)
		}
		totalMinutes += int64(iv.CheckOut.Sub(iv.CheckIn).Minutes())
	}

	return SplitHours(totalMinutes), nil
}
