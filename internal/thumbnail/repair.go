package thumbnail

import (
	"strings"

	"github.com/docugallery/gallery-backend/internal/link"
)

// facebookCDNMarkers identify direct-image URLs served by Facebook's CDN.
var facebookCDNMarkers = []string{"fbcdn.net", "scontent"}

// imageExtensions are filename suffixes accepted as direct images.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Repair post-processes an already-stored thumbnail URL so it is guaranteed
// renderable. It never returns an empty string and is idempotent.
//
// Facebook URLs are never rewritten to a Drive-style URL: an earlier bulk
// migration corrupted valid Facebook tokens that way, and the provider guard
// here exists to keep that class of bug out.
func Repair(url string) string {
	url = strings.TrimSpace(url)

	if url == "" {
		return link.PlaceholderThumbnailURL
	}

	if link.IsFacebookLink(url) || isFacebookCDN(url) {
		if isDirectFacebookImage(url) {
			return url
		}
		// A post/video page link masquerading as a thumbnail.
		return link.PlaceholderThumbnailURL
	}

	if !link.IsImageHost(url) {
		// Custom/uploaded URLs on third-party hosts are respected as-is when
		// they are already absolute.
		if isAbsoluteHTTP(url) {
			return url
		}
		return link.PlaceholderThumbnailURL
	}

	url = normalizeProtocol(url)

	// A folder link can never render as an image.
	if link.IsFolderURL(url) {
		return link.PlaceholderThumbnailURL
	}

	// Drive file/share links are collapsed to the canonical direct-image
	// form; URLs already on the direct host or in a known-good Drive image
	// path are left alone.
	if strings.Contains(url, link.DriveHost) && !isKnownGoodDrivePath(url) {
		id := link.ExtractDriveID(url)
		if id != url {
			return link.DirectImageURL(id)
		}
		return link.PlaceholderThumbnailURL
	}

	return url
}

func isFacebookCDN(url string) bool {
	for _, marker := range facebookCDNMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}

// isDirectFacebookImage accepts CDN-hosted URLs and page URLs that point
// straight at an image file.
func isDirectFacebookImage(url string) bool {
	if isFacebookCDN(url) {
		return true
	}
	lower := strings.ToLower(url)
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isAbsoluteHTTP(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// normalizeProtocol upgrades protocol-relative and plain-http forms to https.
func normalizeProtocol(url string) string {
	switch {
	case strings.HasPrefix(url, "//"):
		return "https:" + url
	case strings.HasPrefix(url, "http://"):
		return "https://" + strings.TrimPrefix(url, "http://")
	case !strings.HasPrefix(url, "https://"):
		return "https://" + url
	default:
		return url
	}
}

// isKnownGoodDrivePath recognizes Drive URL shapes that already render as
// images and must not be rewritten.
func isKnownGoodDrivePath(url string) bool {
	return strings.Contains(url, "/thumbnail?id=") ||
		strings.Contains(url, "uc?export=view")
}
