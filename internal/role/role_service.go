package role

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const RoleAllKey = "roles:all"

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role := &Role{
		ID:          uuid.New(),
		Name:        req.Name,
		AccessLevel: req.AccessLevel,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, role); err != nil {
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*role), nil
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RoleAllKey).Result(); err == nil {
			var resp []RoleResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(RoleAllKey, func() (interface{}, error) {
		roles, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(roles)

		// Master data, a long TTL is fine
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, RoleAllKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]RoleResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}

	return mapToResponse(*role), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}

	role.Name = req.Name
	role.AccessLevel = req.AccessLevel
	role.Description = req.Description

	if err := qtx.Update(ctx, role); err != nil {
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*role), nil
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

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, RoleAllKey).Err(); err != nil {
		log.Printf("ERROR: failed to invalidate cache for key %s: %v", RoleAllKey, err)
	}
}

func mapToResponse(role Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		AccessLevel: role.AccessLevel,
		Description: role.Description,
	}
}

func mapToListResponse(roles []Role) []RoleResponse {
	resp := make([]RoleResponse, len(roles))
	for i, role := range roles {
		resp[i] = mapToResponse(role)
	}
	return resp
}
