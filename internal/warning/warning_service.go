package warning

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	warningerrors "go-siteops/internal/warning/errors"
)

const timeLayout = time.RFC3339

//go:generate mockgen -source=warning_service.go -destination=mock/warning_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, issuerID string, req CreateWarningRequest) (WarningResponse, error)
	GetAll(ctx context.Context, employeeID *string) ([]WarningResponse, error)
	GetByID(ctx context.Context, id string) (WarningResponse, error)
	Acknowledge(ctx context.Context, id, employeeID string) (WarningResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	log := zap.L().Named("warning.service")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	return &service{db: db, repo: repo, logger: log}
}

func (s *service) Create(ctx context.Context, issuerID string, req CreateWarningRequest) (WarningResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return WarningResponse{}, err
	}
	if !exists {
		return WarningResponse{}, warningerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WarningResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w := &Warning{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		Severity:    req.Severity,
		Reason:      req.Reason,
		Description: req.Description,
	}
	if issuer, err := uuid.Parse(issuerID); err == nil {
		w.IssuedBy = &issuer
	}

	if err := qtx.Create(ctx, w); err != nil {
		return WarningResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WarningResponse{}, err
	}

	s.logger.Info("warning issued",
		zap.String("warning_id", w.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("severity", req.Severity),
	)

	return mapToResponse(*w), nil
}

func (s *service) GetAll(ctx context.Context, employeeID *string) ([]WarningResponse, error) {
	rows, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]WarningResponse, len(rows))
	for i, w := range rows {
		res[i] = mapToResponse(w)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (WarningResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WarningResponse{}, warningerrors.ErrWarningNotFound
		}
		return WarningResponse{}, err
	}
	return mapToResponse(*w), nil
}

// Acknowledge records that the named employee has seen their warning. Only
// the employee the warning targets can acknowledge it, and only once.
func (s *service) Acknowledge(ctx context.Context, id, employeeID string) (WarningResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WarningResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WarningResponse{}, warningerrors.ErrWarningNotFound
		}
		return WarningResponse{}, err
	}

	if w.EmployeeID.String() != employeeID {
		return WarningResponse{}, warningerrors.ErrNotYourWarning
	}
	if w.AcknowledgedAt != nil {
		return WarningResponse{}, warningerrors.ErrAlreadyAcknowledged
	}

	now := time.Now().UTC()
	if err := qtx.Acknowledge(ctx, id, now); err != nil {
		return WarningResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WarningResponse{}, err
	}

	w.AcknowledgedAt = &now
	return mapToResponse(*w), nil
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
			return warningerrors.ErrWarningNotFound
		}
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(w Warning) WarningResponse {
	resp := WarningResponse{
		ID:          w.ID.String(),
		EmployeeID:  w.EmployeeID.String(),
		Severity:    w.Severity,
		Reason:      w.Reason,
		Description: w.Description,
		CreatedAt:   w.CreatedAt.Format(timeLayout),
	}
	if w.Employee != nil {
		resp.EmployeeName = w.Employee.FullName
	}
	if w.IssuedBy != nil {
		issuer := w.IssuedBy.String()
		resp.IssuedBy = &issuer
	}
	if w.AcknowledgedAt != nil {
		ack := w.AcknowledgedAt.Format(timeLayout)
		resp.AcknowledgedAt = &ack
	}
	return resp
}
