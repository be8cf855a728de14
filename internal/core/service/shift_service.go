package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/naratornb/leave-and-shift-project/internal/api/metrics"
	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/policy"
	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

// ShiftService implements shift CRUD under the policy gate. All operations
// require at least the manager role; ownership of a shift grants no extra
// rights and imposes no extra limits.
type ShiftService struct {
	repo ports.ShiftRepository
	log  zerolog.Logger
}

func NewShiftService(repo ports.ShiftRepository, log zerolog.Logger) *ShiftService {
	return &ShiftService{repo: repo, log: log}
}

// Create validates the time window and staffing requirement, stamps the
// actor as creator, and persists the shift. Nothing is persisted when
// validation fails.
func (s *ShiftService) Create(ctx context.Context, actor ports.Actor, in ports.CreateShiftInput) (*domain.Shift, error) {
	if !s.allowed(actor, policy.OpCreate) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	shift := &domain.Shift{
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		RequiredStaff: in.RequiredStaff,
		Location:      in.Location,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := shift.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, shift)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create shift")
		return nil, err
	}

	metrics.ShiftsCreatedTotal.Inc()
	s.log.Info().
		Str("shift_id", created.ID).
		Str("location", created.Location).
		Str("created_by", actor.ID).
		Msg("shift created")
	return created, nil
}

func (s *ShiftService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Shift, error) {
	if !s.allowed(actor, policy.OpRead) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ShiftService) List(ctx context.Context, actor ports.Actor, filter ports.ListShiftsFilter) ([]*domain.Shift, error) {
	if !s.allowed(actor, policy.OpList) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, filter)
}

// Update applies a partial update. Empty strings and a zero staff count keep
// the stored values; a provided staff count below one is rejected.
func (s *ShiftService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateShiftInput) (*domain.Shift, error) {
	if !s.allowed(actor, policy.OpUpdate) {
		return nil, domain.ErrForbidden
	}

	shift, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Date != nil && !in.Date.IsZero() {
		shift.Date = *in.Date
	}
	if in.StartTime != nil && *in.StartTime != "" {
		shift.StartTime = *in.StartTime
	}
	if in.EndTime != nil && *in.EndTime != "" {
		shift.EndTime = *in.EndTime
	}
	if in.RequiredStaff != nil && *in.RequiredStaff != 0 {
		if *in.RequiredStaff < 1 {
			return nil, fmt.Errorf("%w: required_staff must be at least 1", domain.ErrValidation)
		}
		shift.RequiredStaff = *in.RequiredStaff
	}
	if in.Location != nil && *in.Location != "" {
		shift.Location = *in.Location
	}

	if err := shift.Validate(); err != nil {
		return nil, err
	}

	shift.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, shift)
}

// Delete removes a shift. The policy allows managers and admins, but the
// HTTP layer does not currently register a route for it.
func (s *ShiftService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !s.allowed(actor, policy.OpDelete) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("shift_id", id).Str("deleted_by", actor.ID).Msg("shift deleted")
	return nil
}

func (s *ShiftService) allowed(actor ports.Actor, op policy.Operation) bool {
	return policy.Decide(policy.Request{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Operation: op,
		Resource:  policy.ResourceShift,
	})
}
