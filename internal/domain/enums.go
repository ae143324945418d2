package domain

// Provider identifies the external service hosting the linked media.
type Provider string

const (
	ProviderDrive    Provider = "drive"
	ProviderFacebook Provider = "facebook"
)

func (p Provider) String() string { return string(p) }

func (p Provider) IsValid() bool {
	switch p {
	case ProviderDrive, ProviderFacebook:
		return true
	}
	return false
}

// ThumbnailMode records how a project's thumbnail URL was produced. It decides
// whether the thumbnail must be re-resolved when the project is edited.
type ThumbnailMode string

const (
	ThumbnailModeAuto             ThumbnailMode = "auto"
	ThumbnailModeCustom           ThumbnailMode = "custom"
	ThumbnailModeUploaded         ThumbnailMode = "uploaded"
	ThumbnailModePickedFromFolder ThumbnailMode = "pickedFromFolder"
)

func (m ThumbnailMode) String() string { return string(m) }

func (m ThumbnailMode) IsValid() bool {
	switch m {
	case ThumbnailModeAuto, ThumbnailModeCustom, ThumbnailModeUploaded, ThumbnailModePickedFromFolder:
		return true
	}
	return false
}

// Visibility is the access tier of a project. The zero value marks a legacy
// record whose tier has not been derived yet.
type Visibility string

const (
	VisibilityUnset     Visibility = ""
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityAdminOnly Visibility = "adminOnly"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityAdminOnly:
		return true
	}
	return false
}

// IsSet reports whether the tier has been assigned (migrated or modern record).
func (v Visibility) IsSet() bool { return v != VisibilityUnset }

// SyncStatus is informational provider-sync state carried on the record.
type SyncStatus string

const (
	SyncStatusSynced   SyncStatus = "synced"
	SyncStatusIndexing SyncStatus = "indexing"
	SyncStatusError    SyncStatus = "error"
)

func (s SyncStatus) String() string { return string(s) }

func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusSynced, SyncStatusIndexing, SyncStatusError:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// UserStatus is the approval state of a registered account. Freshly registered
// users are pending until an admin approves or rejects them.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	}
	return false
}
