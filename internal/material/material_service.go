package material

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	materialerrors "go-siteops/internal/material/errors"
)

//go:generate mockgen -source=material_service.go -destination=mock/material_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMaterialRequest) (MaterialResponse, error)
	GetAll(ctx context.Context, siteID *string) ([]MaterialResponse, error)
	GetByID(ctx context.Context, id string) (MaterialResponse, error)
	Update(ctx context.Context, id string, req UpdateMaterialRequest) (MaterialResponse, error)
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, req AdjustStockRequest) (MaterialResponse, error)
	GetMovements(ctx context.Context, id string) ([]StockMovementResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	log := zap.L().Named("material.service")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	return &service{db: db, repo: repo, logger: log}
}

func (s *service) Create(ctx context.Context, req CreateMaterialRequest) (MaterialResponse, error) {
	siteID, err := s.resolveSite(ctx, req.SiteID)
	if err != nil {
		return MaterialResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MaterialResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	m := &Material{
		ID:             uuid.New(),
		SiteID:         siteID,
		Name:           req.Name,
		SKU:            strings.ToUpper(strings.TrimSpace(req.SKU)),
		Unit:           req.Unit,
		QuantityOnHand: req.QuantityOnHand,
		UnitCost:       req.UnitCost,
		ReorderLevel:   req.ReorderLevel,
	}

	if err := qtx.Create(ctx, m); err != nil {
		return MaterialResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return MaterialResponse{}, err
	}

	return mapToResponse(*m), nil
}

func (s *service) GetAll(ctx context.Context, siteID *string) ([]MaterialResponse, error) {
	rows, err := s.repo.FindAll(ctx, siteID)
	if err != nil {
		return nil, err
	}

	res := make([]MaterialResponse, len(rows))
	for i, m := range rows {
		res[i] = mapToResponse(m)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MaterialResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*m), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMaterialRequest) (MaterialResponse, error) {
	siteID, err := s.resolveSite(ctx, req.SiteID)
	if err != nil {
		return MaterialResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MaterialResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	m, err := qtx.FindByID(ctx, id)
	if err != nil {
		return MaterialResponse{}, mapRepositoryError(err)
	}

	m.SiteID = siteID
	m.Name = req.Name
	m.Unit = req.Unit
	m.UnitCost = req.UnitCost
	m.ReorderLevel = req.ReorderLevel

	if err := qtx.Update(ctx, m); err != nil {
		return MaterialResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return MaterialResponse{}, err
	}

	return mapToResponse(*m), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

// AdjustStock applies a signed quantity and writes the movement audit row in
// the same transaction. A delta that would drive the balance negative is
// rejected without touching either table.
func (s *service) AdjustStock(ctx context.Context, id string, req AdjustStockRequest) (MaterialResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MaterialResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	m, err := qtx.FindByID(ctx, id)
	if err != nil {
		return MaterialResponse{}, mapRepositoryError(err)
	}

	affected, err := qtx.AdjustQuantity(ctx, id, req.Quantity)
	if err != nil {
		return MaterialResponse{}, err
	}
	if affected == 0 {
		return MaterialResponse{}, materialerrors.ErrInsufficientStock
	}

	unitCost := m.UnitCost
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	mv := &StockMovement{
		ID:         uuid.New(),
		MaterialID: m.ID,
		SiteID:     m.SiteID,
		Quantity:   req.Quantity,
		UnitCost:   unitCost,
		Reason:     req.Reason,
	}
	if err := qtx.CreateMovement(ctx, mv); err != nil {
		return MaterialResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MaterialResponse{}, err
	}

	s.logger.Info("stock adjusted",
		zap.String("material_id", id),
		zap.Float64("quantity", req.Quantity),
		zap.String("reason", req.Reason),
	)

	m.QuantityOnHand += req.Quantity
	return mapToResponse(*m), nil
}

func (s *service) GetMovements(ctx context.Context, id string) ([]StockMovementResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	rows, err := s.repo.FindMovements(ctx, id)
	if err != nil {
		return nil, err
	}

	res := make([]StockMovementResponse, len(rows))
	for i, mv := range rows {
		res[i] = StockMovementResponse{
			ID:         mv.ID.String(),
			MaterialID: mv.MaterialID.String(),
			Quantity:   mv.Quantity,
			UnitCost:   mv.UnitCost,
			Reason:     mv.Reason,
			CreatedAt:  mv.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return res, nil
}

func (s *service) resolveSite(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	exists, err := s.repo.SiteExists(ctx, *raw)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, materialerrors.ErrSiteNotFound
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, materialerrors.ErrSiteNotFound
	}
	return &id, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return materialerrors.ErrMaterialNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_material_sku" {
			return materialerrors.ErrMaterialAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_material_sku") {
		return materialerrors.ErrMaterialAlreadyExists
	}

	return err
}

func mapToResponse(m Material) MaterialResponse {
	resp := MaterialResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		SKU:            m.SKU,
		Unit:           m.Unit,
		QuantityOnHand: m.QuantityOnHand,
		UnitCost:       m.UnitCost,
		ReorderLevel:   m.ReorderLevel,
	}
	if m.SiteID != nil {
		id := m.SiteID.String()
		resp.SiteID = &id
	}
	if m.ReorderLevel != nil {
		resp.LowStock = m.QuantityOnHand <= *m.ReorderLevel
	}
	return resp
}
