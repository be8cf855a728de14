package ports

import (
	"context"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

// ListAccountsFilter carries the query parameters for listing accounts.
// Roles is always populated by the service layer: the employee roster lists
// employees and managers only.
type ListAccountsFilter struct {
	Roles []domain.Role
}

// AccountRepository defines persistence operations for accounts.
// Implementations must enforce email uniqueness at the store level and
// report a violation as domain.ErrEmailTaken.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListAccountsFilter) ([]*domain.Account, error)
}
