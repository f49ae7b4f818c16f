package site

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-siteops/internal/shared/apperror"
	siteerrors "go-siteops/internal/site/errors"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=site_service.go -destination=mock/site_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetAll(ctx context.Context) ([]SiteResponse, error)
	GetByID(ctx context.Context, id string) (SiteResponse, error)
	Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error) {
	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return SiteResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SiteResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	site := &Site{
		ID:              uuid.New(),
		Name:            req.Name,
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		GeofenceRadiusM: req.GeofenceRadiusM,
		StartDate:       start,
		EndDate:         end,
		Status:          StatusActive,
	}

	if err := qtx.Create(ctx, site); err != nil {
		return SiteResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SiteResponse{}, err
	}

	return mapToResponse(*site), nil
}

func (s *service) GetAll(ctx context.Context) ([]SiteResponse, error) {
	sites, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(sites), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SiteResponse, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SiteResponse{}, siteerrors.ErrSiteNotFound
		}
		return SiteResponse{}, err
	}
	return mapToResponse(*site), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSiteRequest) (SiteResponse, error) {
	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return SiteResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SiteResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	site, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SiteResponse{}, siteerrors.ErrSiteNotFound
		}
		return SiteResponse{}, err
	}

	site.Name = req.Name
	site.Address = req.Address
	site.Latitude = req.Latitude
	site.Longitude = req.Longitude
	site.GeofenceRadiusM = req.GeofenceRadiusM
	site.StartDate = start
	site.EndDate = end
	site.Status = req.Status

	if err := qtx.Update(ctx, site); err != nil {
		return SiteResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SiteResponse{}, err
	}

	return mapToResponse(*site), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func parseDates(startStr string, endStr *string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, nil, apperror.InvalidField("start_date")
	}

	var end *time.Time
	if endStr != nil && *endStr != "" {
		parsed, err := time.Parse(dateLayout, *endStr)
		if err != nil {
			return time.Time{}, nil, apperror.InvalidField("end_date")
		}
		if parsed.Before(start) {
			return time.Time{}, nil, siteerrors.ErrEndBeforeStart
		}
		end = &parsed
	}

	return start, end, nil
}

func mapToResponse(s Site) SiteResponse {
	resp := SiteResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Address:         s.Address,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
		GeofenceRadiusM: s.GeofenceRadiusM,
		StartDate:       s.StartDate.Format(dateLayout),
		Status:          s.Status,
	}
	if s.EndDate != nil {
		formatted := s.EndDate.Format(dateLayout)
		resp.EndDate = &formatted
	}
	return resp
}

func mapToListResponse(sites []Site) []SiteResponse {
	res := make([]SiteResponse, len(sites))
	for i, s := range sites {
		res[i] = mapToResponse(s)
	}
	return res
}
