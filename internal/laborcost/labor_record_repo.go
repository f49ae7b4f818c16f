package laborcost

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"go-siteops/internal/site"
)

// RecordFilter narrows labor record listings.
type RecordFilter struct {
	EmployeeID  string
	SiteID      string
	PaymentType string
	Status      string
}

//go:generate mockgen -source=labor_record_repo.go -destination=mock/labor_record_repo_mock.go -package=mock
type RecordRepository interface {
	WithTx(tx *sql.Tx) RecordRepository
	Create(ctx context.Context, rec *LaborRecord) error
	FindAll(ctx context.Context, filter RecordFilter) ([]LaborRecord, error)
	FindByID(ctx context.Context, id string) (*LaborRecord, error)
	FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LaborRecord, error)
	Update(ctx context.Context, rec *LaborRecord) error
	PaymentTypeStats(ctx context.Context, year int) ([]PaymentTypeStat, error)
	SpendBySite(ctx context.Context, siteID string, from, to time.Time) (float64, error)
}

type recordRepository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) WithTx(tx *sql.Tx) RecordRepository {
	return &recordRepository{db: r.db, tx: tx}
}

func (r *recordRepository) Create(ctx context.Context, rec *LaborRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepository) FindAll(ctx context.Context, filter RecordFilter) ([]LaborRecord, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.SiteID != "" {
		q = q.Scopes(site.Scope(filter.SiteID))
	}
	if filter.PaymentType != "" {
		q = q.Where("payment_type = ?", filter.PaymentType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []LaborRecord
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *recordRepository) FindByID(ctx context.Context, id string) (*LaborRecord, error) {
	var rec LaborRecord
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&rec, "id = ?", id).Error
	return &rec, err
}

// FindByEmployeeAndYear feeds the YTD aggregation. Cancelled records do not
// count toward year totals.
func (r *recordRepository) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LaborRecord, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var rows []LaborRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusCancelled).
		Where("created_at >= ? AND created_at < ?", yearStart, yearEnd).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *recordRepository) Update(ctx context.Context, rec *LaborRecord) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(rec).Error
}

func (r *recordRepository) PaymentTypeStats(ctx context.Context, year int) ([]PaymentTypeStat, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	query := `
SELECT
	payment_type,
	COUNT(*)        AS record_count,
	SUM(amount)     AS total_amount,
	SUM(tax_amount) AS total_tax,
	SUM(net_amount) AS total_net
FROM labor_records
WHERE deleted_at IS NULL
	AND status <> ?
	AND created_at >= ? AND created_at < ?
GROUP BY payment_type
ORDER BY total_amount DESC
`

	var stats []PaymentTypeStat
	err := r.db.WithContext(ctx).Raw(query, StatusCancelled, yearStart, yearEnd).Scan(&stats).Error
	return stats, err
}

// SpendBySite sums non-cancelled labor record amounts booked against one site
// within a window. Budget tracking reads this.
func (r *recordRepository) SpendBySite(ctx context.Context, siteID string, from, to time.Time) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&LaborRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Scopes(site.Scope(siteID)).
		Where("status <> ?", StatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	return total.Float64, err
}
