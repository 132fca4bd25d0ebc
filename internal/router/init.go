package router

import (
	"github.com/orderdeck/orderdeck/internal/container"
	"github.com/orderdeck/orderdeck/internal/router/modules"
)

// InitModules builds every feature module from container singletons and
// registers it. Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	r.Add(modules.BuildHealthModule())
	r.Add(modules.BuildAuthModule())
	r.Add(modules.BuildUserModule())
	r.Add(modules.BuildAccountModule())
	r.Add(modules.BuildOrderModule())

	if container.GetConfig().IsDevelopment() {
		r.Add(modules.BuildDevModule())
	}
}
