package cloudinary

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the hard per-file limit. Anything larger is rejected
// locally without touching the network.
const MaxUploadBytes = 5 << 20 // 5 MiB

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
}

// Acceptable reports whether a file of the given size and MIME type may
// be uploaded. It returns a human-readable reason when it is not.
func Acceptable(size int64, mimeType string) (bool, string) {
	if size > MaxUploadBytes {
		return false, fmt.Sprintf("file exceeds %d byte limit", MaxUploadBytes)
	}
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if !allowedMimeTypes[mt] {
		return false, fmt.Sprintf("mime type %q not allowed", mimeType)
	}
	return true, ""
}

// DetectMimeType prefers the declared content type and falls back to the
// filename extension.
func DetectMimeType(declared, filename string) string {
	if declared != "" {
		return declared
	}
	return mime.TypeByExtension(filepath.Ext(filename))
}
