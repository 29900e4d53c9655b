package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// Actor is the caller identity consumed from the verified JWT claims. It is
// the only thing the engine knows about the identity collaborator.
type Actor struct {
	Email   string
	IsAdmin bool
}

// FromContext extracts the actor from the request's verified claims.
func FromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Actor{}, ErrInvalidToken
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return Actor{Email: email, IsAdmin: isAdmin}, nil
}

// RequireAdmin returns ErrAdminPrivilegeRequired for non-admin actors.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin {
		return ErrAdminPrivilegeRequired
	}
	return nil
}
