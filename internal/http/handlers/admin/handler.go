package admin

import "github.com/sara-ops/sara-api/internal/provider"

// Handler serves the administrator-only API.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
