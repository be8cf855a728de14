package policy

import (
	"testing"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

func accountRequest(actorRole domain.Role, op Operation) Request {
	return Request{
		ActorID:   "actor_1",
		ActorRole: actorRole,
		Operation: op,
		Resource:  ResourceAccount,
		TargetID:  "target_1",
	}
}

func TestDecide_AccountListAndRead(t *testing.T) {
	cases := []struct {
		role domain.Role
		want bool
	}{
		{domain.RoleEmployee, false},
		{domain.RoleManager, true},
		{domain.RoleAdmin, true},
	}

	for _, tc := range cases {
		for _, op := range []Operation{OpList, OpRead} {
			if got := Decide(accountRequest(tc.role, op)); got != tc.want {
				t.Errorf("role=%s op=%s: expected %v, got %v", tc.role, op, tc.want, got)
			}
		}
	}
}

func TestDecide_AccountAdminOnlyOperations(t *testing.T) {
	for _, op := range []Operation{OpCreate, OpDelete, OpChangeRole} {
		if Decide(accountRequest(domain.RoleEmployee, op)) {
			t.Errorf("employee must not pass %s", op)
		}
		if Decide(accountRequest(domain.RoleManager, op)) {
			t.Errorf("manager must not pass %s", op)
		}
		if !Decide(accountRequest(domain.RoleAdmin, op)) {
			t.Errorf("admin must pass %s", op)
		}
	}
}

func TestDecide_AccountUpdate_SelfOnly(t *testing.T) {
	// An employee may update their own record.
	r := Request{
		ActorID:   "emp_1",
		ActorRole: domain.RoleEmployee,
		Operation: OpUpdate,
		Resource:  ResourceAccount,
		TargetID:  "emp_1",
	}
	if !Decide(r) {
		t.Error("employee must be allowed to update their own account")
	}

	// But never anyone else's.
	r.TargetID = "emp_2"
	if Decide(r) {
		t.Error("employee must not update another account")
	}

	// An empty actor id never matches, even against an empty target.
	r.ActorID = ""
	r.TargetID = ""
	if Decide(r) {
		t.Error("empty actor id must not grant self-update")
	}
}

func TestDecide_AccountUpdate_ManagersUpdateAnyone(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleManager, domain.RoleAdmin} {
		r := accountRequest(role, OpUpdate)
		if !Decide(r) {
			t.Errorf("%s must be allowed to update any account", role)
		}
	}
}

func TestDecide_SetActive(t *testing.T) {
	cases := []struct {
		name         string
		actorRole    domain.Role
		targetRole   domain.Role
		deactivating bool
		want         bool
	}{
		{"employee activates", domain.RoleEmployee, domain.RoleEmployee, false, false},
		{"manager activates employee", domain.RoleManager, domain.RoleEmployee, false, true},
		{"manager deactivates employee", domain.RoleManager, domain.RoleEmployee, true, true},
		{"admin deactivates manager", domain.RoleAdmin, domain.RoleManager, true, true},
		{"manager deactivates admin", domain.RoleManager, domain.RoleAdmin, true, false},
		{"admin deactivates admin", domain.RoleAdmin, domain.RoleAdmin, true, false},
		{"admin activates admin", domain.RoleAdmin, domain.RoleAdmin, false, true},
	}

	for _, tc := range cases {
		r := Request{
			ActorID:      "actor_1",
			ActorRole:    tc.actorRole,
			Operation:    OpSetActive,
			Resource:     ResourceAccount,
			TargetID:     "target_1",
			TargetRole:   tc.targetRole,
			Deactivating: tc.deactivating,
		}
		if got := Decide(r); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDecide_ShiftOperations(t *testing.T) {
	ops := []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete}

	for _, op := range ops {
		r := Request{ActorID: "actor_1", ActorRole: domain.RoleEmployee, Operation: op, Resource: ResourceShift}
		if Decide(r) {
			t.Errorf("employee must not pass shift %s", op)
		}

		r.ActorRole = domain.RoleManager
		if !Decide(r) {
			t.Errorf("manager must pass shift %s", op)
		}

		r.ActorRole = domain.RoleAdmin
		if !Decide(r) {
			t.Errorf("admin must pass shift %s", op)
		}
	}
}

func TestDecide_UnknownInputsDenied(t *testing.T) {
	if Decide(Request{ActorRole: "superuser", Operation: OpRead, Resource: ResourceAccount}) {
		t.Error("unknown role must be denied")
	}
	if Decide(Request{ActorRole: domain.RoleAdmin, Operation: "approve", Resource: ResourceAccount}) {
		t.Error("unknown operation must be denied")
	}
	if Decide(Request{ActorRole: domain.RoleAdmin, Operation: OpRead, Resource: "invoice"}) {
		t.Error("unknown resource must be denied")
	}
}
