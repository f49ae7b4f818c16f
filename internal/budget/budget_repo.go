package budget

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=budget_repo.go -destination=mock/budget_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Budget) error
	FindAll(ctx context.Context, siteID *string) ([]Budget, error)
	FindByID(ctx context.Context, id string) (*Budget, error)
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, b *Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context, siteID *string) ([]Budget, error) {
	q := r.db.WithContext(ctx).Order("period_start DESC")
	if siteID != nil && *siteID != "" {
		q = q.Where("site_id = ?", *siteID)
	}

	var rows []Budget
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Budget, error) {
	var b Budget
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) Update(ctx context.Context, b *Budget) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Budget{}, "id = ?", id).Error
}

func (r *repository) SiteExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("sites").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}
