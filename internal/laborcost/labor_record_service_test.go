package laborcost_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-siteops/internal/attendance"
	"go-siteops/internal/events"
	"go-siteops/internal/laborcost"
	laborcosterrors "go-siteops/internal/laborcost/errors"
	"go-siteops/internal/messaging/kafka"

	laborcostMock "go-siteops/internal/laborcost/mock"
	kafkaMock "go-siteops/internal/messaging/kafka/mock"
	counterMock "go-siteops/internal/shared/counter/mock"
	wagerateMock "go-siteops/internal/wagerate/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service laborcost.Service
	repo    *laborcostMock.MockRecordRepository
	counter *counterMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	rates   *wagerateMock.MockProvider
	source  *fakeAttendanceSource
}

func setupRecordServiceTest(t *testing.T) *recordServiceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := laborcostMock.NewMockRecordRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	rates := wagerateMock.NewMockProvider(ctrl)
	source := &fakeAttendanceSource{}

	calc := laborcost.NewCalculator(rates, source)
	svc := laborcost.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, calc)

	return &recordServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rates:   rates,
		source:  source,
	}
}

func expectRecordTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestCreate_ManualMonthlyRecord(t *testing.T) {
	deps := setupRecordServiceTest(t)
	ctx := context.Background()
	employeeID := uuid.NewString()
	amount := 3000.0

	expectRecordTx(t, deps.sqlMock, true)
	deps.counter.EXPECT().GetNextValue(gomock.Any(), "labor_record").Return(int64(7), nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *laborcost.LaborRecord) error {
			assert.Equal(t, "LAB-000007", rec.ReferenceNumber)
			assert.Equal(t, laborcost.StatusPending, rec.Status)
			assert.Equal(t, laborcost.PaymentTypeMonthly, rec.PaymentType)
			assert.InDelta(t, 3000.0, rec.Amount, 1e-6)
			assert.InDelta(t, 600.0, rec.TaxAmount, 1e-6)
			assert.InDelta(t, 2400.0, rec.NetAmount, 1e-6)
			return nil
		})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, events.LaborRecordCreatedTopic, event.Topic)
			assert.Equal(t, "labor_record", event.AggregateType)
			assert.Equal(t, kafka.OutboxStatusPending, event.Status)
			return nil
		})

	resp, err := deps.service.Create(ctx, laborcost.CreateLaborRecordRequest{
		EmployeeID:  employeeID,
		PaymentType: laborcost.PaymentTypeMonthly,
		Amount:      &amount,
	})
	assert.NoError(t, err)
	assert.Equal(t, "LAB-000007", resp.ReferenceNumber)
	assert.Equal(t, employeeID, resp.EmployeeID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCreate_ValidationFailureSkipsPersistence(t *testing.T) {
	deps := setupRecordServiceTest(t)

	// hourly without hours or rate never reaches the transaction
	_, err := deps.service.Create(context.Background(), laborcost.CreateLaborRecordRequest{
		EmployeeID:  uuid.NewString(),
		PaymentType: laborcost.PaymentTypeHourly,
	})
	assert.Error(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCreate_CounterFailureRollsBack(t *testing.T) {
	deps := setupRecordServiceTest(t)
	amount := 500.0

	expectRecordTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.counter.EXPECT().GetNextValue(gomock.Any(), "labor_record").
		Return(int64(0), errors.New("sequence unavailable"))

	_, err := deps.service.Create(context.Background(), laborcost.CreateLaborRecordRequest{
		EmployeeID:  uuid.NewString(),
		PaymentType: laborcost.PaymentTypeBonus,
		BonusAmount: &amount,
	})
	assert.Error(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCreateFromAttendance_PersistsDoubleTimeSplit(t *testing.T) {
	deps := setupRecordServiceTest(t)
	employeeID := uuid.NewString()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// 14-hour day: 8 regular, 4 overtime, 2 double time
	deps.source.rows = []attendance.Attendance{interval(day, 6, 20)}
	deps.rates.EXPECT().GetForEmployee(gomock.Any(), employeeID).Return(standardWage(20), nil)

	expectRecordTx(t, deps.sqlMock, true)
	deps.counter.EXPECT().GetNextValue(gomock.Any(), "labor_record").Return(int64(8), nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *laborcost.LaborRecord) error {
			assert.InDelta(t, 14.0, *rec.HoursWorked, 1e-6)
			assert.InDelta(t, 4.0, *rec.OvertimeHours, 1e-6)
			assert.InDelta(t, 2.0, *rec.DoubleTimeHours, 1e-6)
			// overtime cost carries the double-time premium:
			// progressive OT 20*(1.5+1.6+1.7+1.8) + double time 2*20*2
			assert.InDelta(t, 212.0, *rec.OvertimeCost, 1e-6)
			assert.InDelta(t, 372.0, rec.Amount, 1e-6)
			return nil
		})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := deps.service.CreateFromAttendance(context.Background(), laborcost.FromAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2026-03-02",
	})
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, *resp.DoubleTimeHours, 1e-6)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApprove_PendingRecord(t *testing.T) {
	deps := setupRecordServiceTest(t)
	id := uuid.New()

	expectRecordTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&laborcost.LaborRecord{
		ID:          id,
		EmployeeID:  uuid.New(),
		PaymentType: laborcost.PaymentTypeHourly,
		Status:      laborcost.StatusPending,
		Amount:      1200,
	}, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *laborcost.LaborRecord) error {
			assert.Equal(t, laborcost.StatusApproved, rec.Status)
			return nil
		})

	resp, err := deps.service.Approve(context.Background(), id.String(), laborcost.UpdateStatusRequest{})
	assert.NoError(t, err)
	assert.Equal(t, laborcost.StatusApproved, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPay_PendingRecordRejected(t *testing.T) {
	deps := setupRecordServiceTest(t)
	id := uuid.New()

	expectRecordTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&laborcost.LaborRecord{
		ID:     id,
		Status: laborcost.StatusPending,
	}, nil)

	_, err := deps.service.Pay(context.Background(), id.String(), laborcost.UpdateStatusRequest{})
	assert.ErrorIs(t, err, laborcosterrors.ErrInvalidStatusTransition)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCancel_PaidRecordRejected(t *testing.T) {
	deps := setupRecordServiceTest(t)
	id := uuid.New()

	expectRecordTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&laborcost.LaborRecord{
		ID:     id,
		Status: laborcost.StatusPaid,
	}, nil)

	_, err := deps.service.Cancel(context.Background(), id.String(), laborcost.UpdateStatusRequest{})
	assert.ErrorIs(t, err, laborcosterrors.ErrInvalidStatusTransition)
}

func TestApprove_UnknownRecord(t *testing.T) {
	deps := setupRecordServiceTest(t)
	id := uuid.NewString()

	expectRecordTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.Approve(context.Background(), id, laborcost.UpdateStatusRequest{})
	assert.ErrorIs(t, err, laborcosterrors.ErrLaborRecordNotFound)
}

func TestGeneratePeriod_InvalidDates(t *testing.T) {
	deps := setupRecordServiceTest(t)
	ctx := context.Background()
	employeeID := uuid.NewString()

	_, _, err := deps.service.GeneratePeriod(ctx, laborcost.GeneratePeriodRequest{
		EmployeeID: employeeID,
		StartDate:  "03/01/2026",
		EndDate:    "2026-03-07",
	})
	assert.ErrorIs(t, err, laborcosterrors.ErrInvalidDate)

	_, _, err = deps.service.GeneratePeriod(ctx, laborcost.GeneratePeriodRequest{
		EmployeeID: employeeID,
		StartDate:  "2026-03-07",
		EndDate:    "2026-03-01",
	})
	assert.ErrorIs(t, err, laborcosterrors.ErrInvalidPeriod)
}

func TestGeneratePeriod_NoWorkedDays(t *testing.T) {
	deps := setupRecordServiceTest(t)
	employeeID := uuid.NewString()

	deps.rates.EXPECT().GetForEmployee(gomock.Any(), employeeID).Return(standardWage(20), nil)

	_, _, err := deps.service.GeneratePeriod(context.Background(), laborcost.GeneratePeriodRequest{
		EmployeeID: employeeID,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
	})
	assert.ErrorIs(t, err, laborcosterrors.ErrNothingToGenerate)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
