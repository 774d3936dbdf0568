package permission

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
	"github.com/localshop/storefront/internal/shared/authorization"
	"github.com/localshop/storefront/internal/shared/logger"
)

// RoleSync rebuilds casbin grouping rules from the role column of users, so
// an admin promoted directly in the database still passes the policy check.
type RoleSync struct {
	db       *gorm.DB
	enforcer *Enforcer
	logger   logger.Interface
}

func NewRoleSync(db *gorm.DB, enforcer *Enforcer, logger logger.Interface) *RoleSync {
	return &RoleSync{
		db:       db,
		enforcer: enforcer,
		logger:   logger,
	}
}

func (s *RoleSync) SyncAdmins(ctx context.Context) error {
	var adminIDs []string
	if err := s.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("role = ?", authorization.RoleAdmin.String()).
		Pluck("id", &adminIDs).Error; err != nil {
		return fmt.Errorf("failed to load admin users: %w", err)
	}

	for _, id := range adminIDs {
		if err := s.enforcer.AssignRole(ctx, id, authorization.RoleAdmin); err != nil {
			return err
		}
	}

	s.logger.Infow("synced admin roles to casbin", "count", len(adminIDs))
	return nil
}
