package wagerate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-siteops/internal/events"
	"go-siteops/internal/messaging/kafka"
	"go-siteops/internal/shared/contextutil"
	wagerateerrors "go-siteops/internal/wagerate/errors"
)

//go:generate mockgen -source=wage_rate_service.go -destination=mock/wage_rate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWageRateRequest) (WageRateResponse, error)
	GetAll(ctx context.Context) ([]WageRateResponse, error)
	GetByID(ctx context.Context, id string) (WageRateResponse, error)
	GetCurrentByRole(ctx context.Context, roleID string) (WageRateResponse, error)
	Update(ctx context.Context, id string, req UpdateWageRateRequest) (WageRateResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	provider Provider
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, provider Provider, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, provider, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	provider Provider,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("wagerate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wagerate.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outboxRepo,
		provider: provider,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateWageRateRequest) (WageRateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create wage rate requested",
		zap.String("request_id", rid),
		zap.String("role_id", req.RoleID),
		zap.Float64("hourly_rate", req.HourlyRate),
	)

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return WageRateResponse{}, wagerateerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create wage rate begin tx failed", zap.Error(err))
		return WageRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.RoleExists(ctx, req.RoleID)
	if err != nil {
		return WageRateResponse{}, err
	}
	if !ok {
		return WageRateResponse{}, wagerateerrors.ErrRoleNotFound
	}

	rate := &WageRate{
		ID:                   uuid.New(),
		RoleID:               uuid.MustParse(req.RoleID),
		HourlyRate:           req.HourlyRate,
		OvertimeMultiplier:   multiplierOrDefault(req.OvertimeMultiplier, 1.5),
		DoubleTimeMultiplier: multiplierOrDefault(req.DoubleTimeMultiplier, 2.0),
		EffectiveDate:        effectiveDate,
	}

	if err := qtx.Create(ctx, rate); err != nil {
		s.logger.Error("create wage rate persist failed", zap.Error(err))
		return WageRateResponse{}, err
	}

	if err := s.queueChangeEvent(ctx, tx, rid, "wage_rate_created", rate); err != nil {
		return WageRateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create wage rate commit failed", zap.Error(err))
		return WageRateResponse{}, err
	}

	s.invalidateCache(ctx)

	s.logger.Info("create wage rate success",
		zap.String("request_id", rid),
		zap.String("wage_rate_id", rate.ID.String()),
	)

	return mapToResponse(*rate), nil
}

func (s *service) GetAll(ctx context.Context) ([]WageRateResponse, error) {
	rates, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all wage rates failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rates), nil
}

func (s *service) GetByID(ctx context.Context, id string) (WageRateResponse, error) {
	rate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WageRateResponse{}, wagerateerrors.ErrWageRateNotFound
		}
		return WageRateResponse{}, err
	}
	return mapToResponse(*rate), nil
}

func (s *service) GetCurrentByRole(ctx context.Context, roleID string) (WageRateResponse, error) {
	rate, err := s.repo.FindCurrentByRole(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WageRateResponse{}, wagerateerrors.ErrWageRateNotFound
		}
		return WageRateResponse{}, err
	}
	return mapToResponse(*rate), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWageRateRequest) (WageRateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return WageRateResponse{}, wagerateerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WageRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rate, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WageRateResponse{}, wagerateerrors.ErrWageRateNotFound
		}
		return WageRateResponse{}, err
	}

	rate.HourlyRate = req.HourlyRate
	rate.OvertimeMultiplier = multiplierOrDefault(req.OvertimeMultiplier, rate.OvertimeMultiplier)
	rate.DoubleTimeMultiplier = multiplierOrDefault(req.DoubleTimeMultiplier, rate.DoubleTimeMultiplier)
	rate.EffectiveDate = effectiveDate

	if err := qtx.Update(ctx, rate); err != nil {
		s.logger.Error("update wage rate persist failed", zap.Error(err))
		return WageRateResponse{}, err
	}

	if err := s.queueChangeEvent(ctx, tx, rid, "wage_rate_updated", rate); err != nil {
		return WageRateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WageRateResponse{}, err
	}

	s.invalidateCache(ctx)

	s.logger.Info("update wage rate success",
		zap.String("request_id", rid),
		zap.String("wage_rate_id", id),
	)

	return mapToResponse(*rate), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rate, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wagerateerrors.ErrWageRateNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete wage rate failed", zap.Error(err))
		return err
	}

	if err := s.queueChangeEvent(ctx, tx, rid, "wage_rate_deleted", rate); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	s.logger.Info("delete wage rate success", zap.String("wage_rate_id", id))
	return nil
}

// queueChangeEvent writes the wage_rate_changed outbox row inside the caller's
// transaction so the change and its event commit atomically.
func (s *service) queueChangeEvent(ctx context.Context, tx *sql.Tx, rid, eventType string, rate *WageRate) error {
	if s.outbox == nil {
		return nil
	}

	event := events.WageRateChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		WageRateID: rate.ID.String(),
		RoleID:     rate.RoleID.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal wage rate event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "wage_rate",
		AggregateID:   rate.ID.String(),
		EventType:     eventType,
		Topic:         events.WageRateChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("wage rate outbox persist failed",
			zap.String("wage_rate_id", rate.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// invalidateCache clears cached employee rates immediately. The kafka consumer
// does the same for other instances once the outbox event lands.
func (s *service) invalidateCache(ctx context.Context) {
	if s.provider == nil {
		return
	}
	if err := s.provider.InvalidateAll(ctx); err != nil {
		s.logger.Error("failed to invalidate wage rate cache", zap.Error(err))
	}
}

func multiplierOrDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func mapToResponse(rate WageRate) WageRateResponse {
	return WageRateResponse{
		ID:                   rate.ID.String(),
		RoleID:               rate.RoleID.String(),
		HourlyRate:           rate.HourlyRate,
		OvertimeMultiplier:   rate.OvertimeMultiplier,
		DoubleTimeMultiplier: rate.DoubleTimeMultiplier,
		EffectiveDate:        rate.EffectiveDate.Format("2006-01-02"),
	}
}

func mapToListResponse(rates []WageRate) []WageRateResponse {
	res := make([]WageRateResponse, len(rates))
	for i, r := range rates {
		res[i] = mapToResponse(r)
	}
	return res
}
