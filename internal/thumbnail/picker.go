// Package thumbnail turns classified links into reliably renderable preview
// image URLs. It owns the best-image selection heuristics, the mode-driven
// resolution fallback chain, and the repair pass applied to thumbnails
// already on file.
package thumbnail

import (
	"strings"

	"github.com/docugallery/gallery-backend/internal/domain"
)

// pickKeywords are filename markers that identify an intentionally designated
// cover image. Order matters: an image named with an earlier keyword beats one
// named with a later keyword, even if it appears later in the listing.
var pickKeywords = []string{"cover", "thumb", "main", "thumbnail", "hero", "feature", "banner"}

// Pick selects the single best representative image from a folder listing.
// Must not be called with an empty slice; the caller guards that.
//
// Selection order, first match wins:
//  1. filename keyword match, trying keywords in priority order
//  2. highest reported width×height
//  3. largest reported file size
//  4. first candidate in listing order
func Pick(images []domain.ImageCandidate) domain.ImageCandidate {
	if len(images) == 1 {
		return images[0]
	}

	for _, keyword := range pickKeywords {
		for _, img := range images {
			if strings.Contains(strings.ToLower(img.Name), keyword) {
				return img
			}
		}
	}

	if best, ok := highestResolution(images); ok {
		return best
	}
	if best, ok := largestSize(images); ok {
		return best
	}

	return images[0]
}

// highestResolution returns the candidate with the greatest pixel count among
// those that report both dimensions. Ties keep the first occurrence.
func highestResolution(images []domain.ImageCandidate) (domain.ImageCandidate, bool) {
	var best domain.ImageCandidate
	bestPixels := 0
	found := false

	for _, img := range images {
		if !img.HasResolution() {
			continue
		}
		pixels := img.Width * img.Height
		if !found || pixels > bestPixels {
			best = img
			bestPixels = pixels
			found = true
		}
	}

	return best, found
}

// largestSize returns the candidate with the greatest reported byte size.
// Ties keep the first occurrence.
func largestSize(images []domain.ImageCandidate) (domain.ImageCandidate, bool) {
	var best domain.ImageCandidate
	var bestSize int64
	found := false

	for _, img := range images {
		if !img.HasSize() {
			continue
		}
		if !found || img.SizeBytes > bestSize {
			best = img
			bestSize = img.SizeBytes
			found = true
		}
	}

	return best, found
}
