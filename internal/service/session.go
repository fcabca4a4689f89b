package service

import "github.com/sara-ops/sara-api/internal/constants"

// SessionContext identifies the authenticated actor for one operation.
// Handlers build it from the verified token and the X-Station header.
type SessionContext struct {
	ActorID   uint
	ActorName string
	Role      string
	Station   string
}

// IsAdmin reports whether the session belongs to an administrator.
func (s SessionContext) IsAdmin() bool {
	return s.Role == constants.RoleAdmin
}
