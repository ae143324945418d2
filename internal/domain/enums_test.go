package domain

import "testing"

func TestProvider_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Provider{ProviderDrive, ProviderFacebook}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("Provider(%q).IsValid() = false, want true", p)
		}
	}
	if Provider("youtube").IsValid() {
		t.Error(`Provider("youtube").IsValid() = true, want false`)
	}
	if Provider("").IsValid() {
		t.Error(`Provider("").IsValid() = true, want false`)
	}
}

func TestThumbnailMode_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ThumbnailMode{
		ThumbnailModeAuto, ThumbnailModeCustom,
		ThumbnailModeUploaded, ThumbnailModePickedFromFolder,
	}
	for _, m := range valid {
		if !m.IsValid() {
			t.Errorf("ThumbnailMode(%q).IsValid() = false, want true", m)
		}
	}
	if ThumbnailMode("manual").IsValid() {
		t.Error(`ThumbnailMode("manual").IsValid() = true, want false`)
	}
}

func TestVisibility_IsValidAndIsSet(t *testing.T) {
	t.Parallel()

	valid := []Visibility{VisibilityPublic, VisibilityPrivate, VisibilityAdminOnly}
	for _, v := range valid {
		if !v.IsValid() {
			t.Errorf("Visibility(%q).IsValid() = false, want true", v)
		}
		if !v.IsSet() {
			t.Errorf("Visibility(%q).IsSet() = false, want true", v)
		}
	}

	if VisibilityUnset.IsValid() {
		t.Error("VisibilityUnset.IsValid() = true, want false")
	}
	if VisibilityUnset.IsSet() {
		t.Error("VisibilityUnset.IsSet() = true, want false")
	}
}

func TestSyncStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []SyncStatus{SyncStatusSynced, SyncStatusIndexing, SyncStatusError}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("SyncStatus(%q).IsValid() = false, want true", s)
		}
	}
	if SyncStatus("stale").IsValid() {
		t.Error(`SyncStatus("stale").IsValid() = true, want false`)
	}
}

func TestUserRole_IsAdmin(t *testing.T) {
	t.Parallel()

	if !UserRoleAdmin.IsAdmin() {
		t.Error("UserRoleAdmin.IsAdmin() = false, want true")
	}
	if UserRoleUser.IsAdmin() {
		t.Error("UserRoleUser.IsAdmin() = true, want false")
	}
}

func TestUserStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []UserStatus{UserStatusPending, UserStatusApproved, UserStatusRejected}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("UserStatus(%q).IsValid() = false, want true", s)
		}
	}
	if UserStatus("banned").IsValid() {
		t.Error(`UserStatus("banned").IsValid() = true, want false`)
	}
}
