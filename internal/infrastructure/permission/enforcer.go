package permission

import (
	"context"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/shared/authorization"
	"github.com/localshop/storefront/internal/shared/logger"
)

// rbacModel matches request paths with keyMatch2 (":id" segments and "*")
// and methods with a regex such as "(GET)|(POST)".
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table through the gorm
// adapter, which creates the table when missing.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Enforce reports whether subject (a user ID or role) may perform act on obj.
func (e *Enforcer) Enforce(subject, obj, act string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, obj, act)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "subject", subject, "object", obj, "action", act)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role, obj, act string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, obj, act); err != nil {
		e.logger.Errorw("failed to add policy", "error", err, "role", role, "object", obj)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

// AssignRole links userID to role. Customers need no grouping rule; granting
// customer removes any admin link.
func (e *Enforcer) AssignRole(_ context.Context, userID string, role authorization.UserRole) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if role.IsAdmin() {
		if _, err := e.enforcer.AddRoleForUser(userID, role.String()); err != nil {
			e.logger.Errorw("failed to add role for user", "error", err, "user_id", userID, "role", role)
			return fmt.Errorf("failed to add role for user: %w", err)
		}
		return nil
	}

	if _, err := e.enforcer.DeleteRoleForUser(userID, authorization.RoleAdmin.String()); err != nil {
		e.logger.Errorw("failed to delete role for user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete role for user: %w", err)
	}
	return nil
}

func (e *Enforcer) GetRolesForUser(userID string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	roles, err := e.enforcer.GetRolesForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user: %w", err)
	}
	return roles, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
