package laborcost

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-siteops/internal/events"
	laborcosterrors "go-siteops/internal/laborcost/errors"
	"go-siteops/internal/messaging/kafka"
	"go-siteops/internal/shared/contextutil"
	"go-siteops/internal/shared/counter"
)

//go:generate mockgen -source=labor_record_service.go -destination=mock/labor_record_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLaborRecordRequest) (LaborRecordResponse, error)
	CreateFromAttendance(ctx context.Context, req FromAttendanceRequest) (LaborRecordResponse, error)
	GeneratePeriod(ctx context.Context, req GeneratePeriodRequest) (PeriodResult, LaborRecordResponse, error)
	PreviewAttendance(ctx context.Context, employeeID string, date time.Time, siteID *string, progressive bool) (AttendanceCostResult, error)
	GetAll(ctx context.Context, filter RecordFilter) ([]LaborRecordResponse, error)
	GetByID(ctx context.Context, id string) (LaborRecordResponse, error)
	Approve(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error)
	Pay(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error)
	Cancel(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error)
	GetYTD(ctx context.Context, employeeID string, year int) (YTDSummary, error)
	GetPaymentTypeStats(ctx context.Context, year int) ([]PaymentTypeStat, error)
}

type service struct {
	db         *sql.DB
	repo       RecordRepository
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	calculator *Calculator
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo RecordRepository,
	counterRepo counter.Repository,
	calc *Calculator,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, calc, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo RecordRepository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	calc *Calculator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("laborcost.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("laborcost.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		counter:    counterRepo,
		outbox:     outboxRepo,
		calculator: calc,
		logger:     l,
	}
}

// Create persists a manual payment-type record after running it through the
// cost calculation.
func (s *service) Create(ctx context.Context, req CreateLaborRecordRequest) (LaborRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create labor record requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("payment_type", req.PaymentType),
	)

	payment, err := PaymentFromRequest(req)
	if err != nil {
		return LaborRecordResponse{}, err
	}

	calc, err := Calculate(payment)
	if err != nil {
		return LaborRecordResponse{}, err
	}

	var workDate *time.Time
	if req.WorkDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			return LaborRecordResponse{}, laborcosterrors.ErrInvalidDate
		}
		workDate = &parsed
	}

	rec := &LaborRecord{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		SiteID:        parseUUIDPtr(req.SiteID),
		PaymentType:   req.PaymentType,
		Status:        StatusPending,
		Amount:        calc.TotalCost,
		HoursWorked:   req.HoursWorked,
		HourlyRate:    req.HourlyRate,
		OvertimeHours: req.OvertimeHours,
		OvertimeRate:  req.OvertimeRate,
		BaseCost:      floatPtr(calc.BaseCost),
		OvertimeCost:  floatPtr(calc.OvertimeCost),
		BonusAmount:   floatPtr(calc.BonusAmount),
		TaxAmount:     calc.TaxAmount,
		NetAmount:     calc.NetAmount,
		WorkDate:      workDate,
		Notes:         req.Notes,
	}

	if err := s.persistRecord(ctx, rid, rec); err != nil {
		return LaborRecordResponse{}, err
	}

	s.logger.Info("create labor record success",
		zap.String("request_id", rid),
		zap.String("labor_record_id", rec.ID.String()),
		zap.String("reference_number", rec.ReferenceNumber),
	)

	return mapRecordToResponse(*rec), nil
}

// CreateFromAttendance prices one day of attendance and persists the result.
// A day without attendance still produces a valid zero-amount record.
func (s *service) CreateFromAttendance(ctx context.Context, req FromAttendanceRequest) (LaborRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return LaborRecordResponse{}, laborcosterrors.ErrInvalidDate
	}

	progressive := true
	if req.Progressive != nil {
		progressive = *req.Progressive
	}

	result, err := s.calculator.CalculateFromAttendance(ctx, req.EmployeeID, date, req.SiteID, progressive)
	if err != nil {
		return LaborRecordResponse{}, err
	}

	rec := &LaborRecord{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		SiteID:          parseUUIDPtr(req.SiteID),
		PaymentType:     PaymentTypeHourly,
		Status:          StatusPending,
		Amount:          result.TotalCost,
		HoursWorked:     floatPtr(result.Hours.TotalHours),
		HourlyRate:      floatPtr(result.WageInfo.HourlyRate),
		OvertimeHours:   floatPtr(result.Hours.OvertimeHours),
		DoubleTimeHours: floatPtr(result.Hours.DoubleTimeHours),
		BaseCost:        floatPtr(result.BaseCost),
		OvertimeCost:    floatPtr(result.OvertimeCost + result.DoubleTimeCost),
		TaxAmount:       result.TaxAmount,
		NetAmount:       result.NetAmount,
		WorkDate:        &date,
	}

	if err := s.persistRecord(ctx, rid, rec); err != nil {
		return LaborRecordResponse{}, err
	}

	s.logger.Info("create labor record from attendance success",
		zap.String("request_id", rid),
		zap.String("labor_record_id", rec.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.Float64("amount", rec.Amount),
	)

	return mapRecordToResponse(*rec), nil
}

// GeneratePeriod rolls a date range up and persists one consolidated hourly
// record covering the period. A period with no worked cost is rejected
// instead of producing an empty line item.
func (s *service) GeneratePeriod(ctx context.Context, req GeneratePeriodRequest) (PeriodResult, LaborRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return PeriodResult{}, LaborRecordResponse{}, laborcosterrors.ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return PeriodResult{}, LaborRecordResponse{}, laborcosterrors.ErrInvalidDate
	}
	if end.Before(start) {
		return PeriodResult{}, LaborRecordResponse{}, laborcosterrors.ErrInvalidPeriod
	}

	progressive := true
	if req.Progressive != nil {
		progressive = *req.Progressive
	}

	period, err := s.calculator.CalculateForPeriod(ctx, req.EmployeeID, start, end, req.SiteID, progressive)
	if err != nil {
		return PeriodResult{}, LaborRecordResponse{}, err
	}

	if period.DaysWorked == 0 {
		return period, LaborRecordResponse{}, laborcosterrors.ErrNothingToGenerate
	}

	var totalHours, overtimeHours, doubleTimeHours float64
	for _, day := range period.DailyBreakdown {
		totalHours += day.RegularHours + day.OvertimeHours + day.DoubleTimeHours
		overtimeHours += day.OvertimeHours
		doubleTimeHours += day.DoubleTimeHours
	}

	rec := &LaborRecord{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		SiteID:          parseUUIDPtr(req.SiteID),
		PaymentType:     PaymentTypeHourly,
		Status:          StatusPending,
		Amount:          period.TotalGross,
		HoursWorked:     floatPtr(totalHours),
		HourlyRate:      floatPtr(period.WageInfo.HourlyRate),
		OvertimeHours:   floatPtr(overtimeHours),
		DoubleTimeHours: floatPtr(doubleTimeHours),
		BaseCost:        floatPtr(period.TotalBaseCost),
		OvertimeCost:    floatPtr(period.TotalOvertime),
		TaxAmount:       period.TotalTax,
		NetAmount:       period.TotalNet,
		PeriodStart:     &start,
		PeriodEnd:       &end,
	}

	if err := s.persistRecord(ctx, rid, rec); err != nil {
		return PeriodResult{}, LaborRecordResponse{}, err
	}

	s.logger.Info("generate period labor record success",
		zap.String("request_id", rid),
		zap.String("labor_record_id", rec.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days_worked", period.DaysWorked),
		zap.Float64("gross", period.TotalGross),
	)

	return period, mapRecordToResponse(*rec), nil
}

// PreviewAttendance runs the attendance path without persisting anything.
func (s *service) PreviewAttendance(
	ctx context.Context,
	employeeID string,
	date time.Time,
	siteID *string,
	progressive bool,
) (AttendanceCostResult, error) {
	return s.calculator.CalculateFromAttendance(ctx, employeeID, date, siteID, progressive)
}

func (s *service) GetAll(ctx context.Context, filter RecordFilter) ([]LaborRecordResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all labor records failed", zap.Error(err))
		return nil, err
	}
	res := make([]LaborRecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapRecordToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LaborRecordResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LaborRecordResponse{}, laborcosterrors.ErrLaborRecordNotFound
		}
		return LaborRecordResponse{}, err
	}
	return mapRecordToResponse(*rec), nil
}

func (s *service) Approve(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error) {
	return s.transition(ctx, id, StatusApproved, req)
}

func (s *service) Pay(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error) {
	return s.transition(ctx, id, StatusPaid, req)
}

func (s *service) Cancel(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error) {
	return s.transition(ctx, id, StatusCancelled, req)
}

func (s *service) GetYTD(ctx context.Context, employeeID string, year int) (YTDSummary, error) {
	records, err := s.repo.FindByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("ytd records fetch failed",
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return YTDSummary{}, err
	}

	summary := AggregateYTD(records)
	if summary.UnrecognizedCount > 0 {
		s.logger.Warn("ytd aggregation skipped unrecognized payment types",
			zap.String("employee_id", employeeID),
			zap.Int("unrecognized_count", summary.UnrecognizedCount),
		)
	}
	return summary, nil
}

func (s *service) GetPaymentTypeStats(ctx context.Context, year int) ([]PaymentTypeStat, error) {
	stats, err := s.repo.PaymentTypeStats(ctx, year)
	if err != nil {
		s.logger.Error("payment type stats failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *service) transition(ctx context.Context, id, target string, req UpdateStatusRequest) (LaborRecordResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LaborRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LaborRecordResponse{}, laborcosterrors.ErrLaborRecordNotFound
		}
		return LaborRecordResponse{}, err
	}

	if !CanTransition(rec.Status, target) {
		s.logger.Warn("labor record status transition rejected",
			zap.String("labor_record_id", id),
			zap.String("from", rec.Status),
			zap.String("to", target),
		)
		return LaborRecordResponse{}, laborcosterrors.ErrInvalidStatusTransition
	}

	rec.Status = target
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	if err := qtx.Update(ctx, rec); err != nil {
		return LaborRecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LaborRecordResponse{}, err
	}

	s.logger.Info("labor record status changed",
		zap.String("labor_record_id", id),
		zap.String("status", target),
	)

	return mapRecordToResponse(*rec), nil
}

// persistRecord writes the record plus its outbox event in one transaction.
func (s *service) persistRecord(ctx context.Context, rid string, rec *LaborRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("labor record begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if rec.ReferenceNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "labor_record")
		if err != nil {
			s.logger.Error("labor record generate reference failed", zap.Error(err))
			return err
		}
		rec.ReferenceNumber = fmt.Sprintf("LAB-%06d", nextVal)
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("labor record persist failed", zap.Error(err))
		return err
	}

	if s.outbox != nil {
		event := events.LaborRecordCreatedEvent{
			EventType:     "labor_record_created",
			RequestID:     rid,
			LaborRecordID: rec.ID.String(),
			EmployeeID:    rec.EmployeeID.String(),
			PaymentType:   rec.PaymentType,
			Amount:        rec.Amount,
			OccurredAt:    time.Now().UTC(),
		}
		if rec.SiteID != nil {
			event.SiteID = rec.SiteID.String()
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal labor record event failed", zap.Error(err))
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "labor_record",
			AggregateID:   rec.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LaborRecordCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("labor record outbox persist failed",
				zap.String("labor_record_id", rec.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	return tx.Commit()
}

func mapRecordToResponse(rec LaborRecord) LaborRecordResponse {
	resp := LaborRecordResponse{
		ID:              rec.ID.String(),
		ReferenceNumber: rec.ReferenceNumber,
		EmployeeID:      rec.EmployeeID.String(),
		PaymentType:     rec.PaymentType,
		Status:          rec.Status,
		Amount:          rec.Amount,
		HoursWorked:     rec.HoursWorked,
		HourlyRate:      rec.HourlyRate,
		OvertimeHours:   rec.OvertimeHours,
		DoubleTimeHours: rec.DoubleTimeHours,
		OvertimeRate:    rec.OvertimeRate,
		BaseCost:        rec.BaseCost,
		OvertimeCost:    rec.OvertimeCost,
		BonusAmount:     rec.BonusAmount,
		TaxAmount:       rec.TaxAmount,
		NetAmount:       rec.NetAmount,
		Notes:           rec.Notes,
		CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.SiteID != nil {
		resp.SiteID = rec.SiteID.String()
	}
	if rec.Employee != nil {
		resp.EmployeeName = rec.Employee.FullName
	}
	if rec.WorkDate != nil {
		v := rec.WorkDate.Format("2006-01-02")
		resp.WorkDate = &v
	}
	if rec.PeriodStart != nil {
		v := rec.PeriodStart.Format("2006-01-02")
		resp.PeriodStart = &v
	}
	if rec.PeriodEnd != nil {
		v := rec.PeriodEnd.Format("2006-01-02")
		resp.PeriodEnd = &v
	}
	return resp
}

func parseUUIDPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func floatPtr(v float64) *float64 {
	return &v
}
