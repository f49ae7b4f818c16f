package material

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"go-siteops/internal/site"
)

//go:generate mockgen -source=material_repo.go -destination=mock/material_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Material) error
	FindAll(ctx context.Context, siteID *string) ([]Material, error)
	FindByID(ctx context.Context, id string) (*Material, error)
	Update(ctx context.Context, m *Material) error
	Delete(ctx context.Context, id string) error
	AdjustQuantity(ctx context.Context, id string, delta float64) (int64, error)
	CreateMovement(ctx context.Context, mv *StockMovement) error
	FindMovements(ctx context.Context, materialID string) ([]StockMovement, error)
	PurchaseTotalBySite(ctx context.Context, siteID string, from, to time.Time) (float64, error)
	SiteExists(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, m *Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context, siteID *string) ([]Material, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if siteID != nil && *siteID != "" {
		q = q.Scopes(site.Scope(*siteID))
	}

	var rows []Material
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Material, error) {
	var m Material
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) Update(ctx context.Context, m *Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Material{}, "id = ?", id).Error
}

// AdjustQuantity applies the delta only when the resulting balance stays
// non-negative; the guard lives in the WHERE clause so concurrent
// adjustments cannot race past it. Returns rows affected.
func (r *repository) AdjustQuantity(ctx context.Context, id string, delta float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Material{}).
		Where("id = ?", id).
		Where("quantity_on_hand + ? >= 0", delta).
		Update("quantity_on_hand", gorm.Expr("quantity_on_hand + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *repository) CreateMovement(ctx context.Context, mv *StockMovement) error {
	return r.db.WithContext(ctx).Create(mv).Error
}

func (r *repository) FindMovements(ctx context.Context, materialID string) ([]StockMovement, error) {
	var rows []StockMovement
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// PurchaseTotalBySite sums the cost of positive stock movements for one site
// within a window. Consumption rows (negative quantity) are excluded.
func (r *repository) PurchaseTotalBySite(ctx context.Context, siteID string, from, to time.Time) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&StockMovement{}).
		Select("COALESCE(SUM(quantity * unit_cost), 0)").
		Where("site_id = ?", siteID).
		Where("quantity > 0").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	return total.Float64, err
}

func (r *repository) SiteExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("sites").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}
