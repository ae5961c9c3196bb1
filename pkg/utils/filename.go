package utils

import (
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	underscores = regexp.MustCompile(`_+`)
)

// CleanFilename strips any path components and reduces the name to a
// safe character set. An empty or fully-stripped name becomes "image".
func CleanFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, `\`, "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	name = underscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "image"
	}
	return name
}

// SplitNameExt splits a filename into base name and extension. The
// extension, when present, keeps its leading dot.
func SplitNameExt(name string) (string, string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return name, ""
	}
	ext := name[idx:]
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return name, ""
		}
	}
	return name[:idx], ext
}

// DerivedName builds the output filename: sanitized base of the
// original plus the extension of the output format.
func DerivedName(original, ext string) string {
	base, _ := SplitNameExt(CleanFilename(original))
	return base + ext
}
