package secure

import (
	"strings"
	"testing"
)

func TestValidateFeedURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"google private ics", "https://calendar.google.com/calendar/ical/user%40gmail.com/private-abc/basic.ics", true},
		{"outlook live", "https://outlook.live.com/owa/calendar/feed.ics", true},
		{"office 365", "https://outlook.office365.com/owa/calendar/x/calendar.ics", true},
		{"icloud subdomain", "https://p123-caldav.icloud.com/published/2/xyz", true},
		{"yahoo", "https://calendar.yahoo.com/some/feed", true},
		{"generic ics link", "https://example.org/exports/team.ics", true},
		{"generic ical path", "http://selfhosted.example/ical/feed", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"file scheme", "file:///etc/passwd", false},
		{"data scheme", "data:text/plain;base64,aGk=", false},
		{"ftp scheme", "ftp://example.com/cal.ics", false},
		{"no host", "https:///cal.ics", false},
		{"unrelated url", "https://example.com/blog/post", false},
		{"lookalike host", "https://calendar.google.com.evil.net/cal", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateFeedURL(tt.url)
			if got.IsValid != tt.valid {
				t.Fatalf("ValidateFeedURL(%q) = %v, want %v (%s)", tt.url, got.IsValid, tt.valid, got.Error)
			}
			if !got.IsValid && got.Error == "" {
				t.Fatal("invalid result must carry an error message")
			}
		})
	}
}

func TestValidateFeedURLLengthLimit(t *testing.T) {
	long := "https://calendar.google.com/" + strings.Repeat("a", 3000)
	if got := ValidateFeedURL(long); got.IsValid {
		t.Fatal("expected URL over the length limit to be rejected")
	}
}

func TestValidateFeedURLLookalikePathStillICS(t *testing.T) {
	// A non-allowlisted host is accepted when the link itself is an .ics
	// export, even if the host name resembles nothing we know.
	got := ValidateFeedURL("https://phish.example.net/calendar/export.ics")
	if !got.IsValid {
		t.Fatalf("expected generic .ics link to pass, got %s", got.Error)
	}
}
