package media

import "testing"

func TestDetectKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		kind     Kind
		allowed  bool
	}{
		{"photo.jpg", KindImage, true},
		{"photo.JPEG", KindImage, true},
		{"anim.gif", KindImage, true},
		{"pic.webp", KindImage, true},
		{"clip.mp4", KindVideo, true},
		{"clip.MOV", KindVideo, true},
		{"clip.mkv", KindVideo, true},
		{"clip.webm", KindVideo, true},
		{"doc.pdf", KindPDF, true},
		{"script.exe", KindOther, false},
		{"page.html", KindOther, false},
		{"noextension", KindOther, false},
	}

	for _, tc := range cases {
		kind, allowed := DetectKind(tc.filename)
		if kind != tc.kind || allowed != tc.allowed {
			t.Errorf("DetectKind(%q) = (%v, %v), want (%v, %v)",
				tc.filename, kind, allowed, tc.kind, tc.allowed)
		}
	}
}

func TestSniffMimeFallsBackToExtension(t *testing.T) {
	t.Parallel()

	// Content the sniffer cannot identify falls back to the extension
	got := SniffMime([]byte{0x00, 0x01, 0x02, 0x03}, "movie.mp4")
	if got != "video/mp4" {
		t.Fatalf("SniffMime = %q, want video/mp4", got)
	}
}

func TestMimeAllowed(t *testing.T) {
	t.Parallel()

	if !MimeAllowed("image/jpeg") {
		t.Errorf("image/jpeg should be allowed")
	}
	if !MimeAllowed("application/octet-stream") {
		t.Errorf("octet-stream should be allowed (unidentifiable containers)")
	}
	if MimeAllowed("text/html") {
		t.Errorf("text/html should be rejected")
	}
}
