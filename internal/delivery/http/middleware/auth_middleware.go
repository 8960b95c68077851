package middleware

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RoleResolver reads the current role of an account from the store.
type RoleResolver interface {
	RoleOf(ctx context.Context, id string) (domain.Role, error)
}

// Authenticate verifies the bearer token and attaches the caller's identity
// to the request. The role is not taken from the token.
func Authenticate(tokens TokenVerifier) Stage {
	return func(c *gin.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				return apperror.Unauthenticated("Your token has expired. Please sign in again.")
			}
			logger.Log.Debug("Token validation failed",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"error", err,
			)
			return apperror.Unauthenticated("Invalid token. Please sign in again.")
		}

		identity := domain.Identity{ID: claims.ID, UserName: claims.UserName}
		c.Set(string(domain.KeyIdentity), identity)
		c.Request = c.Request.WithContext(domain.WithIdentity(c.Request.Context(), identity))
		return nil
	}
}

// Authorize re-reads the caller's role and admits it only when it is in allowed.
func Authorize(roles RoleResolver, allowed []domain.Role) Stage {
	return func(c *gin.Context) error {
		identity, ok := domain.IdentityFrom(c.Request.Context())
		if !ok {
			return apperror.Unauthenticated("You are not signed in. Please sign in to get access.")
		}

		role, err := roles.RoleOf(c.Request.Context(), identity.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthenticated("The user belonging to this token no longer exists.")
		}
		if err != nil {
			return err
		}

		if !role.Allowed(allowed) {
			return apperror.Unauthorized("Authorization Error: You are not allowed to access this route")
		}
		return nil
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", apperror.Unauthenticated("You are not signed in. Please sign in to get access.")
	}

	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", apperror.Unauthenticated("Malformed authorization header. Expected: Bearer <token>")
	}
	return token, nil
}
