package errors

import (
	"strings"
	"unicode"
)

// ValidateColormapName validates a colormap name for safety and correctness.
// Names are used as registry keys, cache key components, and URL path segments,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateColormapName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "colormap name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "colormap name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "colormap name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "colormap name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateHexColor validates a hex color string of the form "#rrggbb".
// Short forms ("#rgb") and alpha channels are rejected; the colormap data
// files use the six-digit form exclusively.
func ValidateHexColor(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return New(ErrCodeInvalidColormap, "invalid hex color %q (want #rrggbb)", s)
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return New(ErrCodeInvalidColormap, "invalid hex color %q (want #rrggbb)", s)
		}
	}
	return nil
}
