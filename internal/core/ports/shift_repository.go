package ports

import (
	"context"
	"time"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

// ListShiftsFilter carries the optional query parameters for listing shifts.
type ListShiftsFilter struct {
	Location string    // optional: exact match on location
	DateFrom time.Time // optional: date >= DateFrom
	DateTo   time.Time // optional: date <= DateTo
}

// ShiftRepository defines persistence operations for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error)
	FindByID(ctx context.Context, id string) (*domain.Shift, error)
	Update(ctx context.Context, s *domain.Shift) (*domain.Shift, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListShiftsFilter) ([]*domain.Shift, error)
}
