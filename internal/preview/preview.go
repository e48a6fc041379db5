package preview

import "strings"

// Eligible reports whether an attachment of the given MIME type can be
// rendered inline. Everything else gets a download fallback.
func Eligible(fileType string) bool {
	return strings.HasPrefix(fileType, "image/") ||
		strings.HasPrefix(fileType, "video/") ||
		fileType == "application/pdf"
}
