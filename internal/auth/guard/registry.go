package guard

import (
	"strings"

	"github.com/kjc6735/schedule-app/internal/auth/domain"
)

// RouteMeta is the per-route annotation the guards consult. The zero value
// means: authentication required, any authenticated role allowed.
type RouteMeta struct {
	Public bool
	Roles  []domain.Role
}

func Public() RouteMeta {
	return RouteMeta{Public: true}
}

func Roles(roles ...domain.Role) RouteMeta {
	return RouteMeta{Roles: roles}
}

type routeEntry struct {
	method  string
	pattern string
	meta    RouteMeta
}

type defaultEntry struct {
	prefix string
	meta   RouteMeta
}

// Registry maps registered routes to their metadata. Route-level entries
// override prefix-level defaults, mirroring handler-over-controller
// precedence. It is built once at startup and read-only afterwards.
type Registry struct {
	routes   []routeEntry
	defaults []defaultEntry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Declare attaches metadata to a single route. The pattern uses the
// router's syntax; ":param" segments match any one path segment.
func (r *Registry) Declare(method, pattern string, meta RouteMeta) {
	r.routes = append(r.routes, routeEntry{method: method, pattern: strings.ToLower(pattern), meta: meta})
}

// SetDefault attaches metadata to every route under a path prefix that has
// no declaration of its own.
func (r *Registry) SetDefault(prefix string, meta RouteMeta) {
	r.defaults = append(r.defaults, defaultEntry{prefix: strings.ToLower(prefix), meta: meta})
}

// Lookup resolves the metadata for a request. Paths match
// case-insensitively, the same way fiber routes them by default, so an
// alternate spelling can never slip past a declaration. Unregistered
// routes get the zero meta: authentication required, no role restriction.
func (r *Registry) Lookup(method, path string) RouteMeta {
	path = strings.ToLower(path)

	for _, entry := range r.routes {
		if entry.method == method && matchPattern(entry.pattern, path) {
			return entry.meta
		}
	}

	var (
		best    RouteMeta
		bestLen = -1
	)
	for _, entry := range r.defaults {
		if strings.HasPrefix(path, entry.prefix) && len(entry.prefix) > bestLen {
			best = entry.meta
			bestLen = len(entry.prefix)
		}
	}
	if bestLen >= 0 {
		return best
	}

	return RouteMeta{}
}

func matchPattern(pattern, path string) bool {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}

	return true
}
