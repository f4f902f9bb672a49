package secure

import (
	"net/url"
	"regexp"
)

// Query parameters whose values must never reach a log sink. The boundary
// allows start-of-string and whitespace so a bare query string (no URL
// prefix) is still masked.
var secretParamPattern = regexp.MustCompile(`(?i)((?:^|[?&\s])(?:key|token|auth|password)=)[^&\s]*`)

// MaskSecrets masks secret-bearing query parameters inside an arbitrary
// string. Used for free-form text that may embed a URL.
func MaskSecrets(s string) string {
	return secretParamPattern.ReplaceAllString(s, "${1}***")
}

// SanitizeURL reduces a full URL to scheme://host/path, dropping the query
// and fragment entirely. Anything that fails to parse is masked instead.
func SanitizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return MaskSecrets(raw)
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path
}
