package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceerrors "go-siteops/internal/attendance/errors"
	"go-siteops/internal/shared/apperror"
)

const (
	statusPresent = "PRESENT"
	statusLate    = "LATE"

	lateAfterHour   = 9
	lateAfterMinute = 15
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error)
	GetDailyHours(ctx context.Context, employeeID string, date time.Time, siteID *string) (DailyHoursResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()

	existing, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	if req.SiteID != nil {
		if err := s.checkGeofence(ctx, qtx, *req.SiteID, req.Latitude, req.Longitude); err != nil {
			return AttendanceResponse{}, err
		}
	}

	status := statusPresent
	if now.Hour() > lateAfterHour || (now.Hour() == lateAfterHour && now.Minute() > lateAfterMinute) {
		status = statusLate
	}

	source := req.Source
	if source == "" {
		source = "MANUAL"
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		SiteID:     siteIDPtr(req.SiteID),
		CheckIn:    now,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Status:     status,
		Source:     source,
		Notes:      req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()

	row, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoOpenInterval
		}
		return AttendanceResponse{}, err
	}

	row.CheckOut = &now
	if req.Latitude != nil {
		row.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		row.Longitude = req.Longitude
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, apperror.New(apperror.CodeInvalidInput, "invalid actor id", 400)
		}
		rows, err = s.repo.FindByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// GetDailyHours sums the day's completed intervals into the regular/overtime/
// double-time split. A day without attendance yields all zeros, not an error.
func (s *service) GetDailyHours(ctx context.Context, employeeID string, date time.Time, siteID *string) (DailyHoursResponse, error) {
	rows, err := s.repo.FindCompletedByEmployeeAndDay(ctx, employeeID, date, siteID)
	if err != nil {
		return DailyHoursResponse{}, err
	}

	hours, err := AggregateDailyHours(rows)
	if err != nil {
		return DailyHoursResponse{}, err
	}

	resp := DailyHoursResponse{
		EmployeeID:      employeeID,
		Date:            date.Format("2006-01-02"),
		TotalMinutes:    hours.TotalMinutes,
		TotalHours:      hours.TotalHours,
		RegularHours:    hours.RegularHours,
		OvertimeHours:   hours.OvertimeHours,
		DoubleTimeHours: hours.DoubleTimeHours,
	}
	if siteID != nil {
		resp.SiteID = *siteID
	}
	return resp, nil
}

func (s *service) checkGeofence(ctx context.Context, qtx Repository, siteID string, lat, lon *float64) error {
	st, err := qtx.FindSiteGeofence(ctx, siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.InvalidField("site_id")
		}
		return err
	}
	if st.Latitude == nil || st.Longitude == nil || st.GeofenceRadiusM == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return attendanceerrors.ErrOutsideGeofence
	}
	if haversineMeters(*st.Latitude, *st.Longitude, *lat, *lon) > *st.GeofenceRadiusM {
		return attendanceerrors.ErrOutsideGeofence
	}
	return nil
}

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusM = 6371000.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func siteIDPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		CheckIn:    a.CheckIn.Format(time.RFC3339),
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		Status:     a.Status,
		Source:     a.Source,
		Notes:      a.Notes,
	}
	if a.SiteID != nil {
		resp.SiteID = a.SiteID.String()
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
