package site

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=site_repo.go -destination=mock/site_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Site) error
	FindAll(ctx context.Context) ([]Site, error)
	FindByID(ctx context.Context, id string) (*Site, error)
	Update(ctx context.Context, s *Site) error
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

func (r *repository) Create(ctx context.Context, s *Site) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Site, error) {
	var sites []Site
	err := r.db.WithContext(ctx).
		Order("status ASC, start_date DESC").
		Find(&sites).Error
	return sites, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Site, error) {
	var s Site
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Site) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Site{}, "id = ?", id).Error
}
