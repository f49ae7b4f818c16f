package rbac

import (
	"context"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(employeeID, resource, action string) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
}

func NewService(repo Repository, enforcer *casbin.Enforcer) Service {
	return &service{repo: repo, enforcer: enforcer}
}

// Enforce resolves the employee's access level and checks it against the
// casbin policy. Employees without a role are denied, not errored.
func (s *service) Enforce(employeeID, resource, action string) (bool, error) {
	level, err := s.repo.GetAccessLevelByEmployee(context.Background(), employeeID)
	if err != nil {
		return false, err
	}
	if level == "" {
		return false, nil
	}

	return s.enforcer.Enforce(level, resource, action)
}
