package media

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

func init() {
	// The platform mime table may lack the video container types; register
	// them so extension fallback behaves the same everywhere.
	for ext, typ := range map[string]string{
		".mp4":  "video/mp4",
		".mov":  "video/quicktime",
		".avi":  "video/avi",
		".mkv":  "video/x-matroska",
		".webm": "video/webm",
	} {
		mime.AddExtensionType(ext, typ)
	}
}

// kindByExtension is the fixed upload allow-list. Anything outside it is
// rejected before any file in the batch is processed.
var kindByExtension = map[string]Kind{
	".jpeg": KindImage,
	".jpg":  KindImage,
	".png":  KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".mp4":  KindVideo,
	".mov":  KindVideo,
	".avi":  KindVideo,
	".mkv":  KindVideo,
	".webm": KindVideo,
	".pdf":  KindPDF,
}

// allowedMimeTypes gates content sniffing. Container formats the sniffer
// cannot identify come back as application/octet-stream, so that stays
// allowed and the extension check carries the decision.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":               true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"video/mp4":                true,
	"video/webm":               true,
	"video/avi":                true,
	"video/x-msvideo":          true,
	"video/x-matroska":         true,
	"video/quicktime":          true,
	"application/pdf":          true,
	"application/octet-stream": true,
}

// DetectKind classifies a filename against the allow-list.
// Returns KindOther and false for anything not allowed.
func DetectKind(filename string) (Kind, bool) {
	kind, ok := kindByExtension[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return KindOther, false
	}
	return kind, true
}

// SniffMime detects the MIME type from leading file bytes, falling back to
// the extension when the content is not recognizable.
func SniffMime(head []byte, filename string) string {
	mimeType := http.DetectContentType(head)
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if mimeType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
			return byExt
		}
	}
	return mimeType
}

// MimeAllowed reports whether a sniffed MIME type passes the allow-list
func MimeAllowed(mimeType string) bool {
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return allowedMimeTypes[mimeType]
}
