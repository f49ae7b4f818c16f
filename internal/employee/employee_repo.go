package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-siteops/internal/site"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindBySite(ctx context.Context, siteID string) ([]Employee, error)
	RoleExists(ctx context.Context, roleID string) (bool, error)
	SiteExists(ctx context.Context, siteID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "full_name", "email", "employee_number", "role_id", "site_id", "hire_date", "employment_status").
		Where("employment_status = ?", EmploymentStatusActive).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindBySite(ctx context.Context, siteID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		Scopes(site.Scope(siteID)).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
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

func (r *repository) SiteExists(ctx context.Context, siteID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("sites").
		Where("id = ?", siteID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Role").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
