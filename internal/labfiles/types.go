package labfiles

import (
	"net/http"
	"path/filepath"
	"strings"
)

// SupportedExtensions defines the allow-list for lab attachments.
// We use a map for O(1) lookups.
var SupportedExtensions = map[string]bool{
	// Scanned charts and photos
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,

	// Standalone lab reports
	".pdf": true,
}

// IsSupported determines if a file should be attached based on its
// content (Magic Numbers) and its name (Extension).
func IsSupported(filename string, headerBytes []byte) bool {
	// 1. Get the file extension (lowercase)
	ext := strings.ToLower(filepath.Ext(filename))

	// If the extension isn't even on our list, reject immediately.
	if !SupportedExtensions[ext] {
		return false
	}

	// 2. Sniff the MIME type from the first 512 bytes
	mime := http.DetectContentType(headerBytes)

	// PDF and the common image formats are all reliably detected.
	switch {
	case mime == "application/pdf":
		return ext == ".pdf"
	case strings.HasPrefix(mime, "image/"):
		return ext != ".pdf"
	}

	// BMP variants sometimes come back as octet-stream; trust the
	// extension check from step 1 for those.
	if mime == "application/octet-stream" && ext == ".bmp" {
		return true
	}

	return false
}

// IsPDF reports whether a path names a standalone lab report rather than
// a scanned image.
func IsPDF(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}
