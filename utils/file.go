package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// SanitizeFileName replaces any character outside [a-zA-Z0-9-_.] with
// an underscore.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// TimestampedName builds an archive filename with format:
// originalname_timestamp.extension
func TimestampedName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)
	timestamp := time.Now().Unix()
	return SanitizeFileName(fmt.Sprintf("%s_%d%s", base, timestamp, ext))
}
