package wagerate

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=wage_rate_repo.go -destination=mock/wage_rate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rate *WageRate) error
	FindAll(ctx context.Context) ([]WageRate, error)
	FindByID(ctx context.Context, id string) (*WageRate, error)
	FindCurrentByRole(ctx context.Context, roleID string) (*WageRate, error)
	FindCurrentByEmployee(ctx context.Context, employeeID string) (*WageRate, error)
	RoleExists(ctx context.Context, roleID string) (bool, error)
	Update(ctx context.Context, rate *WageRate) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, rate *WageRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) FindAll(ctx context.Context) ([]WageRate, error) {
	var rates []WageRate
	err := r.db.WithContext(ctx).
		Order("role_id ASC, effective_date DESC").
		Find(&rates).Error
	return rates, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*WageRate, error) {
	var rate WageRate
	err := r.db.WithContext(ctx).First(&rate, "id = ?", id).Error
	return &rate, err
}

// FindCurrentByRole returns the role's rate row. No effective-date window is
// applied: when history exists the most recently effective row wins, even a
// future-dated one.
func (r *repository) FindCurrentByRole(ctx context.Context, roleID string) (*WageRate, error) {
	var rate WageRate
	err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("effective_date DESC, created_at DESC").
		First(&rate).Error
	return &rate, err
}

func (r *repository) FindCurrentByEmployee(ctx context.Context, employeeID string) (*WageRate, error) {
	var rate WageRate
	err := r.db.WithContext(ctx).
		Table("wage_rates").
		Select("wage_rates.*").
		Joins("JOIN employees ON employees.role_id = wage_rates.role_id").
		Where("employees.id = ?", employeeID).
		Where("employees.deleted_at IS NULL").
		Where("wage_rates.deleted_at IS NULL").
		Order("wage_rates.effective_date DESC, wage_rates.created_at DESC").
		First(&rate).Error
	return &rate, err
}

func (r *repository) RoleExists(ctx context.Context, roleID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("roles").
		Where("id = ?", roleID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, rate *WageRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&WageRate{}, "id = ?", id).Error
}
