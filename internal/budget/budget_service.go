package budget

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	budgeterrors "go-siteops/internal/budget/errors"
	"go-siteops/internal/shared/apperror"
)

const dateLayout = "2006-01-02"

// LaborSpendSource reports booked labor cost for a site within a window.
// Satisfied by the labor record repository.
type LaborSpendSource interface {
	SpendBySite(ctx context.Context, siteID string, from, to time.Time) (float64, error)
}

// MaterialSpendSource reports material purchase cost for a site within a
// window. Satisfied by the material repository.
type MaterialSpendSource interface {
	PurchaseTotalBySite(ctx context.Context, siteID string, from, to time.Time) (float64, error)
}

//go:generate mockgen -source=budget_service.go -destination=mock/budget_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBudgetRequest) (BudgetResponse, error)
	GetAll(ctx context.Context, siteID *string) ([]BudgetResponse, error)
	GetByID(ctx context.Context, id string) (BudgetResponse, error)
	GetStatus(ctx context.Context, id string) (BudgetStatusResponse, error)
	Update(ctx context.Context, id string, req UpdateBudgetRequest) (BudgetResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	labor     LaborSpendSource
	materials MaterialSpendSource
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, labor LaborSpendSource, materials MaterialSpendSource, logger ...*zap.Logger) Service {
	log := zap.L().Named("budget.service")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	return &service{db: db, repo: repo, labor: labor, materials: materials, logger: log}
}

func (s *service) Create(ctx context.Context, req CreateBudgetRequest) (BudgetResponse, error) {
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return BudgetResponse{}, err
	}

	exists, err := s.repo.SiteExists(ctx, req.SiteID)
	if err != nil {
		return BudgetResponse{}, err
	}
	if !exists {
		return BudgetResponse{}, budgeterrors.ErrSiteNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BudgetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b := &Budget{
		ID:             uuid.New(),
		SiteID:         uuid.MustParse(req.SiteID),
		Name:           req.Name,
		LaborBudget:    req.LaborBudget,
		MaterialBudget: req.MaterialBudget,
		PeriodStart:    start,
		PeriodEnd:      end,
	}

	if err := qtx.Create(ctx, b); err != nil {
		return BudgetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BudgetResponse{}, err
	}

	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, siteID *string) ([]BudgetResponse, error) {
	rows, err := s.repo.FindAll(ctx, siteID)
	if err != nil {
		return nil, err
	}

	res := make([]BudgetResponse, len(rows))
	for i, b := range rows {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BudgetResponse, error) {
	b, err := s.findBudget(ctx, id)
	if err != nil {
		return BudgetResponse{}, err
	}
	return mapToResponse(*b), nil
}

// GetStatus joins the stored caps with live spend. The window is inclusive of
// the period end date, so spend queries run to the midnight after it.
func (s *service) GetStatus(ctx context.Context, id string) (BudgetStatusResponse, error) {
	b, err := s.findBudget(ctx, id)
	if err != nil {
		return BudgetStatusResponse{}, err
	}

	siteID := b.SiteID.String()
	windowEnd := b.PeriodEnd.AddDate(0, 0, 1)

	laborSpent, err := s.labor.SpendBySite(ctx, siteID, b.PeriodStart, windowEnd)
	if err != nil {
		return BudgetStatusResponse{}, err
	}

	materialSpent, err := s.materials.PurchaseTotalBySite(ctx, siteID, b.PeriodStart, windowEnd)
	if err != nil {
		return BudgetStatusResponse{}, err
	}

	resp := BudgetStatusResponse{
		BudgetResponse: mapToResponse(*b),
		LaborSpent:     laborSpent,
		MaterialSpent:  materialSpent,
		TotalSpent:     laborSpent + materialSpent,
	}
	resp.Remaining = resp.TotalBudget - resp.TotalSpent
	resp.OverBudget = resp.Remaining < 0

	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBudgetRequest) (BudgetResponse, error) {
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return BudgetResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BudgetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BudgetResponse{}, budgeterrors.ErrBudgetNotFound
		}
		return BudgetResponse{}, err
	}

	b.Name = req.Name
	b.LaborBudget = req.LaborBudget
	b.MaterialBudget = req.MaterialBudget
	b.PeriodStart = start
	b.PeriodEnd = end

	if err := qtx.Update(ctx, b); err != nil {
		return BudgetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BudgetResponse{}, err
	}

	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return budgeterrors.ErrBudgetNotFound
		}
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) findBudget(ctx context.Context, id string) (*Budget, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budgeterrors.ErrBudgetNotFound
		}
		return nil, err
	}
	return b, nil
}

func parsePeriod(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.InvalidField("period_start")
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperror.InvalidField("period_end")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, budgeterrors.ErrPeriodEndBeforeStart
	}
	return start, end, nil
}

func mapToResponse(b Budget) BudgetResponse {
	return BudgetResponse{
		ID:             b.ID.String(),
		SiteID:         b.SiteID.String(),
		Name:           b.Name,
		LaborBudget:    b.LaborBudget,
		MaterialBudget: b.MaterialBudget,
		TotalBudget:    b.LaborBudget + b.MaterialBudget,
		PeriodStart:    b.PeriodStart.Format(dateLayout),
		PeriodEnd:      b.PeriodEnd.Format(dateLayout),
	}
}
