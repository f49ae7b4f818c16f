package warning

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=warning_repo.go -destination=mock/warning_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *Warning) error
	FindAll(ctx context.Context, employeeID *string) ([]Warning, error)
	FindByID(ctx context.Context, id string) (*Warning, error)
	Acknowledge(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, w *Warning) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID *string) ([]Warning, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC")
	if employeeID != nil && *employeeID != "" {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var rows []Warning
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Warning, error) {
	var w Warning
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) Acknowledge(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Warning{}).
		Where("id = ?", id).
		Update("acknowledged_at", at).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Warning{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}
