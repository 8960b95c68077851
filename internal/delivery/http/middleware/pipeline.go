package middleware

import (
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/schema"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// Stage is one step in front of a handler. A nil error lets the request
// continue to the next stage.
type Stage func(c *gin.Context) error

// Chain runs stages in order. The first failure is recorded with c.Error
// for ErrorHandler and the request is aborted, so no later stage and no
// handler runs.
func Chain(stages ...Stage) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, stage := range stages {
			if err := stage(c); err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
		}
	}
}

// Pipeline builds the stage chain for each route: validation, then
// authentication, then authorization.
type Pipeline struct {
	registry  *schema.Registry
	validator *validation.Validator
	tokens    TokenVerifier
	roles     RoleResolver
}

func NewPipeline(registry *schema.Registry, validator *validation.Validator, tokens TokenVerifier, roles RoleResolver) *Pipeline {
	return &Pipeline{registry: registry, validator: validator, tokens: tokens, roles: roles}
}

// Open validates only. Used where no identity exists yet (sign-up, sign-in).
func (p *Pipeline) Open(ep schema.Endpoint) gin.HandlerFunc {
	return Chain(p.validate(ep))
}

// Self validates and authenticates. Used for routes scoped to the caller's
// own account, where ownership is checked by the handler.
func (p *Pipeline) Self(ep schema.Endpoint) gin.HandlerFunc {
	return Chain(p.validate(ep), Authenticate(p.tokens))
}

// Guarded validates, authenticates and admits only the allowed roles.
func (p *Pipeline) Guarded(ep schema.Endpoint, allowed []domain.Role) gin.HandlerFunc {
	return Chain(p.validate(ep), Authenticate(p.tokens), Authorize(p.roles, allowed))
}

func (p *Pipeline) validate(ep schema.Endpoint) Stage {
	return Validate(p.validator, p.registry.MustLookup(ep))
}
