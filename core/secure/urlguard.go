package secure

import (
	"net/url"
	"strings"

	"vendorhub/core/constants"
)

type ValidationResult struct {
	IsValid bool
	Error   string
}

// Hosts of the calendar providers we recognize outright. URLs from other
// hosts are still accepted when they look like an ICS link.
var allowedHostSuffixes = []string{
	"calendar.google.com",
	"outlook.live.com",
	"outlook.office.com",
	"outlook.office365.com",
	"calendar.yahoo.com",
	"icloud.com",
}

// ValidateFeedURL checks a vendor-supplied calendar feed URL before any
// network call or storage write happens.
func ValidateFeedURL(raw string) ValidationResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ValidationResult{IsValid: false, Error: "calendar URL is required"}
	}
	if len(trimmed) > constants.MaxFeedURLLength {
		return ValidationResult{IsValid: false, Error: "URL too long"}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ValidationResult{IsValid: false, Error: "invalid URL format"}
	}

	// Blocks javascript:, file:, data: and anything else non-web.
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ValidationResult{IsValid: false, Error: "invalid protocol, only http and https are supported"}
	}
	if parsed.Hostname() == "" {
		return ValidationResult{IsValid: false, Error: "invalid URL format"}
	}

	host := strings.ToLower(parsed.Hostname())
	for _, suffix := range allowedHostSuffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return ValidationResult{IsValid: true}
		}
	}

	// Generic .ics links from unlisted providers.
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "ics") || strings.Contains(lower, "ical") {
		return ValidationResult{IsValid: true}
	}

	return ValidationResult{IsValid: false, Error: "URL does not look like a calendar feed"}
}
