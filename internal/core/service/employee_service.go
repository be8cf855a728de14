package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/naratornb/leave-and-shift-project/internal/api/metrics"
	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/policy"
	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

// CredentialRevoker invalidates live bearer tokens for an account (Redis).
// Revoke is called on deactivation so an open session dies with the account;
// Reinstate clears the mark on re-activation.
type CredentialRevoker interface {
	Revoke(ctx context.Context, accountID string) error
	Reinstate(ctx context.Context, accountID string) error
}

// EmployeeService implements the account lifecycle: creation, partial
// updates, activation state, role changes, and deletion, all gated by the
// role policy.
type EmployeeService struct {
	repo    ports.AccountRepository
	revoker CredentialRevoker
	log     zerolog.Logger
}

func NewEmployeeService(repo ports.AccountRepository, revoker CredentialRevoker, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, revoker: revoker, log: log}
}

// Create adds an account on behalf of an admin actor. The email existence
// check gives a friendly error up front; the store's unique index on email
// is what actually guarantees uniqueness under concurrent creates.
func (s *EmployeeService) Create(ctx context.Context, actor ports.Actor, in ports.CreateEmployeeInput) (*domain.Account, error) {
	if !s.allowed(actor, policy.OpCreate, "", "") {
		return nil, domain.ErrForbidden
	}

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q is not a valid role", domain.ErrValidation, in.Role)
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		Position:     in.Position,
		Contact:      in.Contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().
		Str("account_id", created.ID).
		Str("role", string(created.Role)).
		Str("created_by", actor.ID).
		Msg("account created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
	if !s.allowed(actor, policy.OpRead, id, "") {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// List returns the employee roster: accounts with the employee or manager
// role. Admin accounts are excluded from the listing.
func (s *EmployeeService) List(ctx context.Context, actor ports.Actor) ([]*domain.Account, error) {
	if !s.allowed(actor, policy.OpList, "", "") {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, ports.ListAccountsFilter{
		Roles: []domain.Role{domain.RoleEmployee, domain.RoleManager},
	})
}

// Update applies a partial update. Empty strings keep the stored value; a
// role field is applied only when the actor is an admin and is silently
// dropped otherwise; a non-empty password replaces the stored credential.
func (s *EmployeeService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateEmployeeInput) (*domain.Account, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.allowed(actor, policy.OpUpdate, id, target.Role) {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil && *in.Name != "" {
		target.Name = *in.Name
	}
	if in.Position != nil && *in.Position != "" {
		target.Position = *in.Position
	}
	if in.Contact != nil {
		target.Contact = *in.Contact
	}

	if in.Role != nil && *in.Role != "" && actor.Role == domain.RoleAdmin {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: %q is not a valid role", domain.ErrValidation, *in.Role)
		}
		s.applyRole(target, *in.Role)
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = string(hash)
	}

	target.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, target)
}

// ChangeRole moves the target to a new role. Only admins may do this; any
// role transition is legal, including promoting and demoting admins.
func (s *EmployeeService) ChangeRole(ctx context.Context, actor ports.Actor, id string, role domain.Role) (*domain.Account, error) {
	if !s.allowed(actor, policy.OpChangeRole, id, "") {
		return nil, domain.ErrForbidden
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q is not a valid role", domain.ErrValidation, role)
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.Role == role {
		return target, nil
	}

	s.applyRole(target, role)
	target.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, target)
	if err != nil {
		return nil, err
	}

	metrics.RoleChangesTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().
		Str("account_id", updated.ID).
		Str("role", string(role)).
		Str("changed_by", actor.ID).
		Msg("account role changed")
	return updated, nil
}

// applyRole sets the role, keeping the invariant that an admin account is
// always active.
func (s *EmployeeService) applyRole(target *domain.Account, role domain.Role) {
	target.Role = role
	if role == domain.RoleAdmin {
		target.Active = true
	}
}

// Activate sets active=true. Idempotent: activating an active account
// succeeds without a write.
func (s *EmployeeService) Activate(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.allowed(actor, policy.OpSetActive, id, target.Role) {
		return nil, domain.ErrForbidden
	}
	if target.Active {
		return target, nil
	}

	target.Active = true
	target.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, target)
	if err != nil {
		return nil, err
	}

	if s.revoker != nil {
		if err := s.revoker.Reinstate(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("account_id", id).Msg("failed to clear credential revocation")
		}
	}

	metrics.AccountLifecycleTotal.WithLabelValues("activate").Inc()
	s.log.Info().Str("account_id", id).Str("changed_by", actor.ID).Msg("account activated")
	return updated, nil
}

// Deactivate sets active=false. Admin accounts can never be deactivated, by
// anyone. Idempotent like Activate. Live tokens for the account are revoked
// so deactivation takes effect before they expire.
func (s *EmployeeService) Deactivate(ctx context.Context, actor ports.Actor, id string) (*domain.Account, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Decide(policy.Request{
		ActorID:      actor.ID,
		ActorRole:    actor.Role,
		Operation:    policy.OpSetActive,
		Resource:     policy.ResourceAccount,
		TargetID:     id,
		TargetRole:   target.Role,
		Deactivating: true,
	}) {
		return nil, domain.ErrForbidden
	}
	if !target.Active {
		return target, nil
	}

	target.Active = false
	target.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, target)
	if err != nil {
		return nil, err
	}

	if s.revoker != nil {
		if err := s.revoker.Revoke(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("account_id", id).Msg("failed to revoke credentials")
		}
	}

	metrics.AccountLifecycleTotal.WithLabelValues("deactivate").Inc()
	s.log.Info().Str("account_id", id).Str("changed_by", actor.ID).Msg("account deactivated")
	return updated, nil
}

// Delete removes the account record permanently. Admin actors only.
func (s *EmployeeService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !s.allowed(actor, policy.OpDelete, id, "") {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("account_id", id).Str("deleted_by", actor.ID).Msg("account deleted")
	return nil
}

func (s *EmployeeService) allowed(actor ports.Actor, op policy.Operation, targetID string, targetRole domain.Role) bool {
	return policy.Decide(policy.Request{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Operation:  op,
		Resource:   policy.ResourceAccount,
		TargetID:   targetID,
		TargetRole: targetRole,
	})
}
