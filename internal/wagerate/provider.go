package wagerate

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	wagerateerrors "go-siteops/internal/wagerate/errors"
)

const (
	EmployeeRateKeyPrefix = "wagerates:employee:"
	rateCacheTTL          = 5 * time.Minute
)

func GetEmployeeRateKey(employeeID string) string {
	return EmployeeRateKeyPrefix + employeeID
}

// Provider resolves the current pay terms for an employee via their role.
// Successful lookups are cached for five minutes keyed by employee id;
// wage data changes upstream invalidate explicitly.
//
//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock
type Provider interface {
	GetForEmployee(ctx context.Context, employeeID string) (Info, error)
	Invalidate(ctx context.Context, employeeID string) error
	InvalidateAll(ctx context.Context) error
}

type provider struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewProvider(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Provider {
	l := zap.L().Named("wagerate.provider")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wagerate.provider")
	}
	return &provider{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (p *provider) GetForEmployee(ctx context.Context, employeeID string) (Info, error) {
	cacheKey := GetEmployeeRateKey(employeeID)

	if p.rdb != nil {
		if cached, err := p.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var info Info
			if json.Unmarshal([]byte(cached), &info) == nil {
				return info, nil
			}
		}
	}

	v, err, _ := p.sf.Do(cacheKey, func() (interface{}, error) {
		rate, err := p.repo.FindCurrentByEmployee(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Info{}, wagerateerrors.ErrNoRateForEmployee
			}
			return Info{}, err
		}

		info := rate.toInfo()

		if p.rdb != nil {
			if jsonData, err := json.Marshal(info); err == nil {
				p.rdb.Set(ctx, cacheKey, jsonData, rateCacheTTL)
			}
		}

		return info, nil
	})
	if err != nil {
		return Info{}, err
	}

	return v.(Info), nil
}

func (p *provider) Invalidate(ctx context.Context, employeeID string) error {
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Del(ctx, GetEmployeeRateKey(employeeID)).Err()
}

// InvalidateAll scans out every cached employee rate. The cache is keyed by
// employee but rates live on roles, so a role rate change cannot target
// individual entries.
func (p *provider) InvalidateAll(ctx context.Context) error {
	if p.rdb == nil {
		return nil
	}

	iter := p.rdb.Scan(ctx, 0, EmployeeRateKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := p.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			p.logger.Error("delete cached wage rate failed",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
			return err
		}
	}
	return iter.Err()
}
