package link

import (
	"testing"

	"github.com/docugallery/gallery-backend/internal/domain"
)

func TestClassify_FacebookLinksAreVerbatim(t *testing.T) {
	t.Parallel()

	links := []string{
		"https://www.facebook.com/somepage/posts/123456789",
		"https://fb.com/watch?v=99",
		"https://fb.watch/aBcDeF/",
		"http://m.facebook.com/story.php?story_fbid=1&id=2",
	}

	for _, raw := range links {
		got := Classify(raw)
		if got.Provider != domain.ProviderFacebook {
			t.Errorf("Classify(%q).Provider = %q, want facebook", raw, got.Provider)
		}
		if got.ResourceID != raw {
			t.Errorf("Classify(%q).ResourceID = %q, want verbatim input", raw, got.ResourceID)
		}
		if got.IsCanonicalID() {
			t.Errorf("Classify(%q).IsCanonicalID() = true, want false for facebook", raw)
		}
	}
}

func TestClassify_DrivePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "file view link",
			raw:  "https://drive.google.com/file/d/1AbC_dEf-123456789012345/view?usp=sharing",
			want: "1AbC_dEf-123456789012345",
		},
		{
			name: "folder link",
			raw:  "https://drive.google.com/drive/folders/0B9xYz_Folder-ID-12345?usp=drive_link",
			want: "0B9xYz_Folder-ID-12345",
		},
		{
			name: "short d link",
			raw:  "https://drive.google.com/d/SHORTform_id-0000001/preview",
			want: "SHORTform_id-0000001",
		},
		{
			name: "open with id query param",
			raw:  "https://drive.google.com/open?id=QueryParam_ID-456789",
			want: "QueryParam_ID-456789",
		},
		{
			name: "ampersand id query param",
			raw:  "https://drive.google.com/uc?export=view&id=AmpersandID_123456789",
			want: "AmpersandID_123456789",
		},
		{
			name: "bare token 20-50 chars",
			raw:  "1a2b3c4d5e6f7g8h9i0j_-XY",
			want: "1a2b3c4d5e6f7g8h9i0j_-XY",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.raw)
			if got.Provider != domain.ProviderDrive {
				t.Fatalf("Provider = %q, want drive", got.Provider)
			}
			if got.ResourceID != tt.want {
				t.Errorf("ResourceID = %q, want %q", got.ResourceID, tt.want)
			}
		})
	}
}

func TestClassify_PatternOrder_FileBeatsShortD(t *testing.T) {
	t.Parallel()

	// /file/d/ and /d/ both match here; the /file/d/ arm must win and both
	// extract the same ID regardless.
	raw := "https://drive.google.com/file/d/ORDER_check_id_00001/view"
	if got := Classify(raw).ResourceID; got != "ORDER_check_id_00001" {
		t.Errorf("ResourceID = %q, want ORDER_check_id_00001", got)
	}
}

func TestClassify_UnrecognizedFallsBackToRawString(t *testing.T) {
	t.Parallel()

	raw := "https://example.com/some/page"
	got := Classify(raw)

	if got.Provider != domain.ProviderDrive {
		t.Fatalf("Provider = %q, want drive", got.Provider)
	}
	if got.ResourceID != raw {
		t.Errorf("ResourceID = %q, want raw input back", got.ResourceID)
	}
	if got.IsCanonicalID() {
		t.Error("IsCanonicalID() = true for a raw-string fallback, want false")
	}
}

func TestClassify_BareTokenLengthBounds(t *testing.T) {
	t.Parallel()

	short := "abc123" // under 20 chars: not ID-shaped
	if got := Classify(short); got.ResourceID != short || got.IsCanonicalID() {
		t.Errorf("short token: got %+v, want raw fallback and non-canonical", got)
	}

	long := make([]byte, 60)
	for i := range long {
		long[i] = 'a'
	}
	if got := Classify(string(long)); got.IsCanonicalID() {
		t.Error("60-char token should not be canonical")
	}
}

func TestClassify_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	got := Classify("  https://drive.google.com/file/d/TrimMe_id_0000001/view  ")
	if got.ResourceID != "TrimMe_id_0000001" {
		t.Errorf("ResourceID = %q, want TrimMe_id_0000001", got.ResourceID)
	}
}

func TestClassify_CanonicalIDDetection(t *testing.T) {
	t.Parallel()

	got := Classify("https://drive.google.com/file/d/1AbC_dEf-123456789012345/view")
	if !got.IsCanonicalID() {
		t.Error("extracted 24-char ID should be canonical")
	}
}

func TestDirectImageURL(t *testing.T) {
	t.Parallel()

	want := "https://lh3.googleusercontent.com/d/FILE123"
	if got := DirectImageURL("FILE123"); got != want {
		t.Errorf("DirectImageURL = %q, want %q", got, want)
	}
}

func TestIsFolderURL(t *testing.T) {
	t.Parallel()

	if !IsFolderURL("https://drive.google.com/drive/folders/ABC") {
		t.Error("folder URL not detected")
	}
	if IsFolderURL("https://drive.google.com/file/d/ABC/view") {
		t.Error("file URL misdetected as folder")
	}
}
