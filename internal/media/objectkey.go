package media

import (
	"fmt"
	"strings"
	"time"
)

// allowed keeps object keys to a conservative character set; everything
// else collapses to underscores.
func sanitizeFileName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	sanitized := sb.String()
	if sanitized == "" {
		sanitized = "upload"
	}
	return sanitized
}

// buildObjectKey prefixes the sanitized file name with a millisecond
// timestamp so repeat uploads of the same file never collide.
func buildObjectKey(now time.Time, fileName string) string {
	return fmt.Sprintf("%d_%s", now.UnixMilli(), sanitizeFileName(fileName))
}
