// Package access implements the visibility-tiered read gating for project
// records and the write-side invariant keeping the legacy private flag in
// sync with the modern tier. Sanitize is the single redaction choke point:
// every read path handing records to a caller must route through it.
package access

import "github.com/docugallery/gallery-backend/internal/domain"

// RedactedResourceID is the sentinel placed in ResourceID when the caller is
// not authorized to see the real identifier. It is a stable, documented value
// so UI layers never attempt to treat it as a link.
const RedactedResourceID = "__protected__"

// CanSeeFull reports whether the caller may read the record's true resource
// identifier. Public records are open to everyone; admins see everything;
// approved authenticated users see everything except admin-only records.
func CanSeeFull(p domain.Project, c domain.Caller) bool {
	if p.Visibility == domain.VisibilityPublic {
		return true
	}
	if c.IsAdmin {
		return true
	}
	return c.Authenticated && c.Approved && p.Visibility != domain.VisibilityAdminOnly
}

// Sanitize returns the view of a record the caller is allowed to see.
//
// When the caller is not authorized, only ResourceID is replaced with the
// RedactedResourceID sentinel; descriptive metadata and the resolved
// thumbnail URL stay intact so locked content can still render a gated
// preview in listings. Authorized callers get the record unchanged.
func Sanitize(p domain.Project, c domain.Caller) domain.Project {
	if CanSeeFull(p, c) {
		return p
	}
	p.ResourceID = RedactedResourceID
	return p
}

// TiersFor returns the visibility tiers a caller's listing query may admit.
// Admin-only records are excluded entirely for non-admins, not merely
// redacted: their existence itself may be sensitive. Public and private
// records are admitted for everyone so locked-content placeholders render.
// A nil result means unrestricted (admin).
func TiersFor(c domain.Caller) []domain.Visibility {
	if c.IsAdmin {
		return nil
	}
	return []domain.Visibility{domain.VisibilityPublic, domain.VisibilityPrivate}
}

// SetVisibility assigns the authoritative tier and recomputes the legacy
// boolean. This and SetLegacyPrivate are the only sanctioned writers of the
// visibility pair.
func SetVisibility(p *domain.Project, v domain.Visibility) {
	p.Visibility = v
	p.LegacyIsPrivate = v != domain.VisibilityPublic
}

// SetLegacyPrivate handles inputs that never migrated and only carry the
// boolean: true derives the private tier, false the public one.
func SetLegacyPrivate(p *domain.Project, isPrivate bool) {
	if isPrivate {
		SetVisibility(p, domain.VisibilityPrivate)
		return
	}
	SetVisibility(p, domain.VisibilityPublic)
}
