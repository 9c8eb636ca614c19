package contact

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError names the first field that failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidEmail reports whether s matches the basic local@domain.tld pattern.
func ValidEmail(s string) bool {
	return emailRx.MatchString(s)
}

// ValidWebsite reports whether s parses as an absolute http(s) URL.
func ValidWebsite(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate re-applies the form rules server-side. It trims its own copies of
// the fields, so it works on raw wire payloads too.
func Validate(p Payload, messageRequired bool) *ValidationError {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !ValidEmail(email) {
		return &ValidationError{Field: "email", Reason: "invalid format"}
	}
	if messageRequired && strings.TrimSpace(p.Message) == "" {
		return &ValidationError{Field: "message", Reason: "required"}
	}
	if website := strings.TrimSpace(p.Website); website != "" && !ValidWebsite(website) {
		return &ValidationError{Field: "website", Reason: "must be an http(s) URL"}
	}
	return nil
}
