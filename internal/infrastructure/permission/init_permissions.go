package permission

import (
	"fmt"

	"github.com/localshop/storefront/internal/shared/authorization"
	"github.com/localshop/storefront/internal/shared/logger"
)

// InitAdminPermissions seeds authorization.DefaultGrants. AddPolicy skips
// rows that already exist, so it runs on every start.
func InitAdminPermissions(e *Enforcer, log logger.Interface) error {
	grants := authorization.DefaultGrants()
	for _, g := range grants {
		if err := e.AddPolicy(g.Role.String(), g.Resource, g.Methods); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", g.Role,
				"resource", g.Resource)
			return fmt.Errorf("failed to add policy [%s, %s]: %w", g.Role, g.Resource, err)
		}
	}

	log.Infow("permissions initialized", "policies", len(grants))
	return nil
}
