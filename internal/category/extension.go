package category

import "strings"

// NormalizeExt canonicalizes a user-supplied extension: trimmed, lowercased,
// with a leading dot. Empty or whitespace-only input yields "".
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ExtensionOf returns the lowercased final dot-suffix of a file name, the
// classification key. A name with no dot, only a leading dot, or a trailing
// dot has no extension and yields "".
func ExtensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i:])
}
