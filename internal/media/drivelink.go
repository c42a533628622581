package media

import (
	"fmt"
	"regexp"
)

// Admins often paste Google Drive share links into the console. Drive's
// viewer URLs don't serve raw image bytes, so they are rewritten to the
// googleusercontent host that does. Anything else passes through untouched.
var (
	drivePathIDPattern  = regexp.MustCompile(`^https?://drive\.google\.com/file/d/([^/?#]+)`)
	driveQueryIDPattern = regexp.MustCompile(`^https?://drive\.google\.com/[^?#]*\?(?:.*&)?id=([^&#]+)`)
)

// NormalizeImageLink converts a Google Drive share link into a direct
// image URL. Non-Drive links are returned byte-identical.
func NormalizeImageLink(link string) string {
	if m := drivePathIDPattern.FindStringSubmatch(link); m != nil {
		return directImageURL(m[1])
	}
	if m := driveQueryIDPattern.FindStringSubmatch(link); m != nil {
		return directImageURL(m[1])
	}
	return link
}

func directImageURL(fileID string) string {
	return fmt.Sprintf("https://lh3.googleusercontent.com/u/0/d/%s", fileID)
}
