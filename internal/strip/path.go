// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strip

import (
	"path/filepath"
	"strings"
)

// OutputPath inserts suffix between the base name and the extension of
// input. Leading dots of the file name do not start an extension, so
// ".pdf" becomes ".pdf_cleaned" rather than "_cleaned.pdf".
func OutputPath(input, suffix string) string {
	base, ext := splitExt(input)
	return base + suffix + ext
}

// splitExt splits path into root and extension such that root+ext == path.
func splitExt(path string) (root, ext string) {
	dir, name := filepath.Split(path)
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndex(trimmed, ".")
	if i < 0 {
		return path, ""
	}
	cut := len(dir) + len(name) - len(trimmed) + i
	return path[:cut], path[cut:]
}
