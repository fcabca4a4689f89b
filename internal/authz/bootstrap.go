package authz

import (
	"fmt"

	"github.com/sara-ops/sara-api/internal/constants"
)

// RoleSeed is one preset role definition.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds returns the fixed staff role matrix. Administrators
// can do everything; runners take orders on the road; operators run the
// scale and dispatch.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleAdmin,
			Policies: []Policy{
				{Object: "/*", Action: "*"},
			},
		},
		{
			Role: constants.RoleRunner,
			Policies: []Policy{
				{Object: "/auth/me", Action: "GET"},
				{Object: "/auth/password", Action: "POST"},
				{Object: "/customers", Action: "GET"},
				{Object: "/customers", Action: "POST"},
				{Object: "/customers/:id", Action: "GET"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders", Action: "POST"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/board", Action: "GET"},
				{Object: "/products", Action: "GET"},
			},
		},
		{
			Role: constants.RoleOperator,
			Policies: []Policy{
				{Object: "/auth/me", Action: "GET"},
				{Object: "/auth/password", Action: "POST"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/board", Action: "GET"},
				{Object: "/orders/:id/weights", Action: "PUT"},
				{Object: "/orders/:id/deliver", Action: "POST"},
				{Object: "/products", Action: "GET"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the preset roles and their policies.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}

	return nil
}
