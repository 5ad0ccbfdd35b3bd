package guard

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kjc6735/schedule-app/internal/auth/service"
	autherror "github.com/kjc6735/schedule-app/internal/errors"
)

// ContextKey is the fiber locals key the verified claims live under.
const ContextKey = "user"

// Guard gates every request: Authenticate resolves the caller's identity
// from the bearer token, Authorize checks it against the route's declared
// roles. Both are stateless; each request is evaluated independently.
type Guard struct {
	tokens   service.TokenGenerator
	registry *Registry
}

func New(tokens service.TokenGenerator, registry *Registry) *Guard {
	return &Guard{tokens: tokens, registry: registry}
}

// Authenticate lets public routes through untouched and requires a valid
// "Bearer <token>" Authorization header on everything else. On success the
// decoded claims are attached to the request context.
func (g *Guard) Authenticate(c *fiber.Ctx) error {
	meta := g.registry.Lookup(c.Method(), c.Path())
	if meta.Public {
		return c.Next()
	}

	parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(parts) != 2 || parts[0] != "Bearer" {
		return autherror.Respond(c, autherror.ErrNoToken)
	}

	claims, err := g.tokens.VerifyAccessToken(parts[1])
	if err != nil {
		return autherror.Respond(c, err)
	}

	c.Locals(ContextKey, claims)

	return c.Next()
}

// Authorize runs after Authenticate. A route with no declared roles admits
// any authenticated identity.
func (g *Guard) Authorize(c *fiber.Ctx) error {
	meta := g.registry.Lookup(c.Method(), c.Path())
	if len(meta.Roles) == 0 {
		return c.Next()
	}

	claims, ok := c.Locals(ContextKey).(*service.Claims)
	if !ok || claims.Role == "" {
		return autherror.Respond(c, autherror.ErrNoPermission)
	}

	for _, role := range meta.Roles {
		if claims.Role == role {
			return c.Next()
		}
	}

	return autherror.Respond(c, autherror.ErrNoPermission)
}

// ClaimsFrom pulls the authenticated identity out of the request context.
func ClaimsFrom(c *fiber.Ctx) (*service.Claims, bool) {
	claims, ok := c.Locals(ContextKey).(*service.Claims)
	return claims, ok
}
