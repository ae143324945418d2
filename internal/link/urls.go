package link

import "strings"

const (
	// DirectImageHost serves single Drive images without consuming listing
	// quota and without the expiry that thumbnailLink URLs carry.
	DirectImageHost = "lh3.googleusercontent.com"

	// DriveHost is the regular Drive web host; links on it are share/preview
	// pages, not direct images.
	DriveHost = "drive.google.com"

	// PlaceholderThumbnailURL is the fixed fallback image used whenever no
	// real thumbnail could be resolved. Exposed as a stable constant so
	// callers can detect "no real thumbnail was found".
	PlaceholderThumbnailURL = "https://placehold.co/600x400/png?text=No+Preview"
)

// DirectImageURL builds the canonical direct-image URL for a Drive file ID.
// This is the only URL form stored thumbnails should use for Drive content.
func DirectImageURL(fileID string) string {
	return "https://" + DirectImageHost + "/d/" + fileID
}

// IsImageHost reports whether the URL points at one of the hosts this system
// manages thumbnails on. Custom and uploaded URLs on other hosts are left
// alone by the repairer.
func IsImageHost(url string) bool {
	return strings.Contains(url, DirectImageHost) || strings.Contains(url, DriveHost)
}

// IsFolderURL reports whether the URL addresses a Drive folder rather than a
// single file. Folder URLs are never renderable as images.
func IsFolderURL(url string) bool {
	return strings.Contains(url, "/folders/")
}
