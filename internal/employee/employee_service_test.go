package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-siteops/internal/employee"
	employeeerrors "go-siteops/internal/employee/errors"
	"go-siteops/internal/shared/contextutil"

	employeeMock "go-siteops/internal/employee/mock"
	"go-siteops/internal/messaging/kafka"
	kafkaMock "go-siteops/internal/messaging/kafka/mock"
	counterMock "go-siteops/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redisMock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		redisMock: redisMock,
		outbox:    outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

type outboxWithRID struct{ rid string }

func (m outboxWithRID) Matches(x any) bool {
	ev, ok := x.(kafka.OutboxEvent)
	return ok && ev.RequestID == m.rid
}

func (m outboxWithRID) String() string {
	return "outbox event with request id " + m.rid
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - auto generate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		roleID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			FullName: "Ayu Lestari",
			Email:    "ayu@siteops.dev",
			Phone:    "0812",
			HireDate: "2026-01-05",
			RoleID:   roleID,
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().RoleExists(ctx, roleID).Return(true, nil)
		deps.counter.EXPECT().GetNextValue(ctx, "employee_number").Return(int64(123), nil)

		var createdID uuid.UUID
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.FullName, e.FullName)
				assert.Equal(t, "EMP-000123", e.EmployeeNumber)
				assert.Equal(t, employee.EmploymentStatusActive, e.EmploymentStatus)
				createdID = e.ID
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, createdID.String(), resp.ID)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
	})

	t.Run("success - outbox event carries request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123-ABC"
		reqCtx := contextutil.WithRequestID(context.Background(), rid)

		req := employee.CreateEmployeeRequest{
			FullName: "Budi Santoso",
			Email:    "budi@siteops.dev",
			HireDate: "2026-01-05",
			RoleID:   uuid.New().String(),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
		deps.repo.EXPECT().RoleExists(gomock.Any(), gomock.Any()).Return(true, nil)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), outboxWithRID{rid: rid}).
			Return(nil).
			Times(1)

		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		_, err := deps.service.Create(reqCtx, req)

		assert.NoError(t, err)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			FullName: "X",
			Email:    "x@siteops.dev",
			HireDate: "05-01-2026",
			RoleID:   uuid.New().String(),
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("unknown role -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		roleID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			FullName: "X",
			Email:    "x@siteops.dev",
			HireDate: "2026-01-05",
			RoleID:   roleID,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().RoleExists(ctx, roleID).Return(false, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrRoleNotFound)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		roleID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			FullName:       "X",
			Email:          "x@siteops.dev",
			EmployeeNumber: "EMP-000900",
			HireDate:       "2026-01-05",
			RoleID:         roleID,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().RoleExists(ctx, roleID).Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
	})

	t.Run("duplicate employee number -> conflict error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		roleID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			FullName:       "X",
			Email:          "x@siteops.dev",
			EmployeeNumber: "EMP-000100",
			HireDate:       "2026-01-05",
			RoleID:         roleID,
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().RoleExists(ctx, roleID).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"})

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := []employee.Employee{
			{ID: uuid.New(), RoleID: uuid.New(), FullName: "Andi", Email: "andi@siteops.dev"},
			{ID: uuid.New(), RoleID: uuid.New(), FullName: "Budi", Email: "budi@siteops.dev"},
		}

		deps.repo.EXPECT().FindAll(ctx).Return(rows, nil).Times(1)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Andi", resp[0].FullName)
	})

	t.Run("error repository", func(t *testing.T) {
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss -> repo + set", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rows := []employee.Employee{
			{ID: uuid.New(), RoleID: uuid.New(), FullName: "Andi"},
		}

		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return(rows, nil)
		deps.redisMock.Regexp().ExpectSet(employee.EmployeeOptionsKey, `.*`, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("cache hit -> no repo call", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]employee.EmployeeResponse{{FullName: "Cached"}})
		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Cached", resp[0].FullName)
	})
}

func TestEmployeeService_AssignSite(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		emplID := uuid.New()
		siteID := uuid.New().String()
		req := employee.AssignSiteRequest{SiteID: &siteID}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().SiteExists(ctx, siteID).Return(true, nil)
		deps.repo.EXPECT().FindByID(ctx, emplID.String()).
			Return(&employee.Employee{ID: emplID, RoleID: uuid.New()}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.AssignSite(ctx, emplID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, siteID, resp.SiteID)
	})

	t.Run("unknown site", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		siteID := uuid.New().String()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().SiteExists(ctx, siteID).Return(false, nil)

		_, err := deps.service.AssignSite(ctx, uuid.New().String(), employee.AssignSiteRequest{SiteID: &siteID})

		assert.ErrorIs(t, err, employeeerrors.ErrSiteNotFound)
	})
}
