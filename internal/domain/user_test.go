package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestCallerFor_NilUserIsGuest(t *testing.T) {
	t.Parallel()

	c := CallerFor(nil)

	if c.Authenticated || c.Approved || c.IsAdmin {
		t.Errorf("guest caller should carry no privileges: %+v", c)
	}
	if c.UserID != uuid.Nil {
		t.Errorf("guest caller UserID = %v, want Nil", c.UserID)
	}
}

func TestCallerFor_PendingUser(t *testing.T) {
	t.Parallel()

	u := &User{ID: uuid.New(), Role: UserRoleUser, Status: UserStatusPending}
	c := CallerFor(u)

	if !c.Authenticated {
		t.Error("Authenticated = false, want true")
	}
	if c.Approved {
		t.Error("pending user must not count as approved")
	}
	if c.IsAdmin {
		t.Error("IsAdmin = true, want false")
	}
}

func TestCallerFor_ApprovedAdmin(t *testing.T) {
	t.Parallel()

	u := &User{ID: uuid.New(), Role: UserRoleAdmin, Status: UserStatusApproved}
	c := CallerFor(u)

	if !c.Authenticated || !c.Approved || !c.IsAdmin {
		t.Errorf("admin caller missing privileges: %+v", c)
	}
	if c.UserID != u.ID {
		t.Errorf("UserID = %v, want %v", c.UserID, u.ID)
	}
}

func TestCallerFor_RejectedUserNotApproved(t *testing.T) {
	t.Parallel()

	u := &User{ID: uuid.New(), Role: UserRoleUser, Status: UserStatusRejected}
	if CallerFor(u).Approved {
		t.Error("rejected user must not count as approved")
	}
}
