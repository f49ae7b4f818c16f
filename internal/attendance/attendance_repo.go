package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"go-siteops/internal/site"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindOpenByEmployee(ctx context.Context, employeeID string) (*Attendance, error)
	FindCompletedByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time, siteID *string) ([]Attendance, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindSiteGeofence(ctx context.Context, siteID string) (*site.Site, error)
	Update(ctx context.Context, a *Attendance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("check_out IS NULL").
		Order("check_in DESC").
		First(&a).Error
	return &a, err
}

// FindCompletedByEmployeeAndDay selects the completed intervals whose check-in
// falls inside the calendar day of `day`. Open intervals never count toward
// cost computation.
func (r *repository) FindCompletedByEmployeeAndDay(
	ctx context.Context,
	employeeID string,
	day time.Time,
	siteID *string,
) ([]Attendance, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("check_in >= ? AND check_in < ?", dayStart, dayEnd).
		Where("check_out IS NOT NULL")
	if siteID != nil && *siteID != "" {
		q = q.Scopes(site.Scope(*siteID))
	}

	var rows []Attendance
	err := q.Order("check_in ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSiteGeofence(ctx context.Context, siteID string) (*site.Site, error) {
	var s site.Site
	err := r.db.WithContext(ctx).
		Select("id", "latitude", "longitude", "geofence_radius_m", "status").
		First(&s, "id = ?", siteID).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
