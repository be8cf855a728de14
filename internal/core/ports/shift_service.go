package ports

import (
	"context"
	"time"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

// CreateShiftInput carries the fields for creating a shift. CreatedBy is
// stamped by the service from the actor, never taken from the request.
type CreateShiftInput struct {
	Date          time.Time
	StartTime     string
	EndTime       string
	RequiredStaff int
	Location      string
}

// UpdateShiftInput is a partial update: nil means absent. As with accounts,
// a present-but-zero value (empty string, zero staff count) keeps the stored
// value.
type UpdateShiftInput struct {
	Date          *time.Time
	StartTime     *string
	EndTime       *string
	RequiredStaff *int
	Location      *string
}

// ShiftService orchestrates shift CRUD under the policy gate and the
// time-window validation rules.
type ShiftService interface {
	Create(ctx context.Context, actor Actor, in CreateShiftInput) (*domain.Shift, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.Shift, error)
	List(ctx context.Context, actor Actor, filter ListShiftsFilter) ([]*domain.Shift, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateShiftInput) (*domain.Shift, error)
	// Delete is policy-allowed for managers and admins but deliberately not
	// exposed by the current route wiring.
	Delete(ctx context.Context, actor Actor, id string) error
}
