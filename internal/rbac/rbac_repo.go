package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetAccessLevelByEmployee(ctx context.Context, employeeID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAccessLevelByEmployee(ctx context.Context, employeeID string) (string, error) {
	var level string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("roles.access_level").
		Joins("JOIN roles ON roles.id = employees.role_id").
		Where("employees.id = ?", employeeID).
		Scan(&level).Error
	return level, err
}
