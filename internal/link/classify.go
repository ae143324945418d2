// Package link normalizes the loosely formatted share links a project record
// is created from. It classifies a raw link by provider, extracts the
// canonical resource identifier for Drive content, and owns the canonical
// image URL forms the rest of the system renders from.
package link

import (
	"regexp"
	"strings"

	"github.com/docugallery/gallery-backend/internal/domain"
)

// facebookHostMarkers identify a link as Facebook content by substring match.
var facebookHostMarkers = []string{"facebook.com", "fb.com", "fb.watch"}

// Drive ID extraction patterns, tried in order. First match wins.
// The bare-token pattern accepts whole-string alphanumeric IDs of 20-50 chars,
// the length range Drive file and folder IDs fall into.
var driveIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{20,50})$`),
}

// bareIDPattern recognizes a string that is already ID-shaped. Used to let
// downstream consumers detect the raw-string soft fallback.
var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,50}$`)

// Link is the result of classifying a raw share link.
type Link struct {
	Provider   domain.Provider
	ResourceID string
}

// Classify inspects a raw link and determines its provider and canonical
// resource identifier.
//
// Facebook links are opaque tokens: ResourceID is the raw link verbatim,
// never decomposed. Anything else is treated as a Drive reference and run
// through the ID patterns in order; when none match, ResourceID falls back to
// the raw, unmodified input. Classify never fails — callers must treat an
// unrecognized format as a soft fallback and not assume the ID is canonical.
func Classify(raw string) Link {
	raw = strings.TrimSpace(raw)

	if IsFacebookLink(raw) {
		return Link{Provider: domain.ProviderFacebook, ResourceID: raw}
	}

	return Link{Provider: domain.ProviderDrive, ResourceID: ExtractDriveID(raw)}
}

// IsFacebookLink reports whether the URL references a known Facebook host.
func IsFacebookLink(raw string) bool {
	if raw == "" {
		return false
	}
	for _, marker := range facebookHostMarkers {
		if strings.Contains(raw, marker) {
			return true
		}
	}
	return false
}

// ExtractDriveID pulls a Drive file/folder ID out of a share link, trying the
// supported URL shapes in order. Returns the input unchanged when no pattern
// matches.
func ExtractDriveID(raw string) string {
	for _, pattern := range driveIDPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return raw
}

// IsCanonicalID reports whether the link's ResourceID is ID-shaped. A false
// result for Drive content means classification fell back to the raw input
// string; consumers may want to warn a user before persisting it. Facebook
// resource IDs are full URLs and are never canonical by this definition.
func (l Link) IsCanonicalID() bool {
	if l.Provider != domain.ProviderDrive {
		return false
	}
	return bareIDPattern.MatchString(l.ResourceID)
}
