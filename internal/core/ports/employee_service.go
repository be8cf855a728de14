package ports

import (
	"context"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

// Actor is the authenticated identity performing an operation. It is threaded
// explicitly into every service call; nothing is read from ambient state.
type Actor struct {
	ID   string
	Role domain.Role
}

// CreateEmployeeInput carries the fields for admin-driven account creation.
// An empty Role defaults to employee.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Position string
	Contact  domain.Contact
}

// UpdateEmployeeInput is a partial update: a nil field was absent from the
// request. A present-but-empty Name or Position keeps the stored value, so a
// deliberate "clear this field" is indistinguishable from "no change"; this
// mirrors the long-standing API contract and is kept on purpose.
type UpdateEmployeeInput struct {
	Name     *string
	Position *string
	Contact  *domain.Contact
	Role     *domain.Role
	Password *string
}

// EmployeeService orchestrates the account lifecycle under the policy gate.
// Every returned Account still carries its PasswordHash; stripping it is the
// transport layer's projection concern.
type EmployeeService interface {
	Create(ctx context.Context, actor Actor, in CreateEmployeeInput) (*domain.Account, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.Account, error)
	List(ctx context.Context, actor Actor) ([]*domain.Account, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateEmployeeInput) (*domain.Account, error)
	ChangeRole(ctx context.Context, actor Actor, id string, role domain.Role) (*domain.Account, error)
	Activate(ctx context.Context, actor Actor, id string) (*domain.Account, error)
	Deactivate(ctx context.Context, actor Actor, id string) (*domain.Account, error)
	Delete(ctx context.Context, actor Actor, id string) error
}
