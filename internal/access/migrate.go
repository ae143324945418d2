package access

import "github.com/docugallery/gallery-backend/internal/domain"

// Migrate derives the modern visibility tier on a legacy record that has
// none, from the legacy private boolean. Pure and idempotent: records whose
// tier is already set pass through untouched, so a record with tier and
// boolean in contradiction keeps the tier as authoritative.
//
// Run once per record on first privileged read; non-admin callers never
// trigger the backfill write.
func Migrate(p domain.Project) domain.Project {
	if p.Visibility.IsSet() {
		return p
	}
	SetLegacyPrivate(&p, p.LegacyIsPrivate)
	return p
}

// NeedsMigration reports whether the record still lacks a visibility tier.
func NeedsMigration(p domain.Project) bool {
	return !p.Visibility.IsSet()
}
