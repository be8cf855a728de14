package ports

import (
	"context"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

// AuthService is the credential verifier: it issues bearer tokens and vouches
// for the actor behind each request. Accounts with active=false are never
// authenticatable.
type AuthService interface {
	// Register is the public self-registration path; the new account always
	// gets the employee role.
	Register(ctx context.Context, name, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
