package gamepool

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	steamIDPrefix = "7656119"
	steamIDLength = 17
)

var (
	numericPattern     = regexp.MustCompile(`^\d+$`)
	profilePathPattern = regexp.MustCompile(`/profiles/(\d+)`)
	vanityPathPattern  = regexp.MustCompile(`/id/([^/?#]+)`)
)

// IsNumericID reports whether s is a bare numeric identifier.
func IsNumericID(s string) bool {
	return numericPattern.MatchString(s)
}

// IsSteamID64 reports whether s looks like a real SteamID64: 17 digits
// starting with the public-account prefix. Every value scraped out of
// XML or HTML must pass this before it is trusted.
func IsSteamID64(s string) bool {
	if len(s) != steamIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return strings.HasPrefix(s, steamIDPrefix)
}

// IsProfileURL reports whether the identifier is a community profile
// URL rather than a bare id or vanity name.
func IsProfileURL(identifier string) bool {
	return strings.Contains(identifier, "steamcommunity.com")
}

// ExtractProfileID pulls the numeric id out of a /profiles/<digits>
// path segment.
func ExtractProfileID(identifier string) (string, bool) {
	m := profilePathPattern.FindStringSubmatch(identifier)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractVanityName pulls the vanity name out of an /id/<name> path
// segment.
func ExtractVanityName(identifier string) (string, bool) {
	m := vanityPathPattern.FindStringSubmatch(identifier)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FallbackArtworkURL builds the community media URL used when the store
// has no header image for an app.
func FallbackArtworkURL(appID int, logoHash string) string {
	return fmt.Sprintf("%s/steamcommunity/public/images/apps/%d/%s.jpg", MediaBase, appID, logoHash)
}
