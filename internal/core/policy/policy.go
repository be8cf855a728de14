// Package policy holds the pure access-control decision for account and
// shift operations. A decision depends only on the request value passed in;
// the package performs no I/O and keeps no state, so every rule here is
// directly testable.
package policy

import "github.com/naratornb/leave-and-shift-project/internal/core/domain"

// Operation identifies what the actor is trying to do to a resource.
type Operation string

const (
	OpList       Operation = "list"
	OpRead       Operation = "read"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpChangeRole Operation = "change_role"
	OpSetActive  Operation = "set_active"
	OpDelete     Operation = "delete"
)

// Resource identifies the kind of record being acted on.
type Resource string

const (
	ResourceAccount Resource = "account"
	ResourceShift   Resource = "shift"
)

// Request carries everything a decision may depend on. TargetID, TargetRole
// and Deactivating are only meaningful for account operations that act on a
// specific account.
type Request struct {
	ActorID   string
	ActorRole domain.Role

	Operation Operation
	Resource  Resource

	TargetID     string
	TargetRole   domain.Role
	Deactivating bool
}

// Decide reports whether the actor may perform the requested operation.
// Unknown roles, operations, and resources are denied.
func Decide(r Request) bool {
	switch r.Resource {
	case ResourceAccount:
		return decideAccount(r)
	case ResourceShift:
		return decideShift(r)
	}
	return false
}

func decideAccount(r Request) bool {
	switch r.Operation {
	case OpList, OpRead:
		return r.ActorRole.AtLeastManager()

	case OpCreate, OpDelete, OpChangeRole:
		return r.ActorRole == domain.RoleAdmin

	case OpUpdate:
		// Employees may update their own record; the role and password
		// fields are handled separately by the lifecycle rules.
		if r.ActorRole.AtLeastManager() {
			return true
		}
		return r.ActorRole == domain.RoleEmployee && r.ActorID != "" && r.ActorID == r.TargetID

	case OpSetActive:
		if !r.ActorRole.AtLeastManager() {
			return false
		}
		// No actor, admin included, may deactivate an admin account.
		if r.Deactivating && r.TargetRole == domain.RoleAdmin {
			return false
		}
		return true
	}
	return false
}

func decideShift(r Request) bool {
	switch r.Operation {
	case OpList, OpRead, OpCreate, OpUpdate, OpDelete:
		return r.ActorRole.AtLeastManager()
	}
	return false
}
