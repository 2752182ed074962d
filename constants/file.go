package constants

import "strings"

// AllowedExtensions holds the allowed file extensions for resume uploads.
// Only digitally authored or scanned PDF documents are accepted.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedExt checks if a file extension is in the allowed set.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
