package wagerate_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-siteops/internal/wagerate"
	wagerateerrors "go-siteops/internal/wagerate/errors"
	wagerateMock "go-siteops/internal/wagerate/mock"
)

func TestProvider_GetForEmployee_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := wagerateMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	provider := wagerate.NewProvider(repo, rdb)

	ctx := context.Background()
	employeeID := uuid.New().String()
	cacheKey := wagerate.GetEmployeeRateKey(employeeID)

	rate := &wagerate.WageRate{
		ID:                   uuid.New(),
		RoleID:               uuid.New(),
		HourlyRate:           22.5,
		OvertimeMultiplier:   1.5,
		DoubleTimeMultiplier: 2.0,
		EffectiveDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	redisMock.ExpectGet(cacheKey).RedisNil()
	repo.EXPECT().FindCurrentByEmployee(ctx, employeeID).Return(rate, nil)
	redisMock.Regexp().ExpectSet(cacheKey, `.*`, 5*time.Minute).SetVal("OK")

	info, err := provider.GetForEmployee(ctx, employeeID)

	assert.NoError(t, err)
	assert.Equal(t, rate.ID.String(), info.WageRateID)
	assert.InDelta(t, 22.5, info.HourlyRate, 1e-6)
	assert.InDelta(t, 1.5, info.OvertimeMultiplier, 1e-6)
}

func TestProvider_GetForEmployee_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := wagerateMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	provider := wagerate.NewProvider(repo, rdb)

	ctx := context.Background()
	employeeID := uuid.New().String()
	cacheKey := wagerate.GetEmployeeRateKey(employeeID)

	cached := wagerate.Info{
		WageRateID: uuid.New().String(),
		RoleID:     uuid.New().String(),
		HourlyRate: 30,
	}
	payload, _ := json.Marshal(cached)

	redisMock.ExpectGet(cacheKey).SetVal(string(payload))

	// no repo expectation: a cache hit must not touch the store
	info, err := provider.GetForEmployee(ctx, employeeID)

	assert.NoError(t, err)
	assert.Equal(t, cached.WageRateID, info.WageRateID)
	assert.InDelta(t, 30.0, info.HourlyRate, 1e-6)
}

func TestProvider_GetForEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := wagerateMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	provider := wagerate.NewProvider(repo, rdb)

	ctx := context.Background()
	employeeID := uuid.New().String()

	redisMock.ExpectGet(wagerate.GetEmployeeRateKey(employeeID)).RedisNil()
	repo.EXPECT().FindCurrentByEmployee(ctx, employeeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := provider.GetForEmployee(ctx, employeeID)

	assert.ErrorIs(t, err, wagerateerrors.ErrNoRateForEmployee)
}

func TestProvider_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := wagerateMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	provider := wagerate.NewProvider(repo, rdb)

	employeeID := uuid.New().String()
	redisMock.ExpectDel(wagerate.GetEmployeeRateKey(employeeID)).SetVal(1)

	assert.NoError(t, provider.Invalidate(context.Background(), employeeID))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestProvider_InvalidateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := wagerateMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	provider := wagerate.NewProvider(repo, rdb)

	keys := []string{
		wagerate.GetEmployeeRateKey(uuid.New().String()),
		wagerate.GetEmployeeRateKey(uuid.New().String()),
	}

	redisMock.ExpectScan(0, wagerate.EmployeeRateKeyPrefix+"*", 100).SetVal(keys, 0)
	redisMock.ExpectDel(keys[0]).SetVal(1)
	redisMock.ExpectDel(keys[1]).SetVal(1)

	assert.NoError(t, provider.InvalidateAll(context.Background()))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
