package service

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Collections sort by editor-assigned position first; unordered rows
// (null position) sink to the end, oldest first.
const collectionOrder = "position ASC NULLS LAST, created_at ASC"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return validationf("slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}

// optional trims s and maps the empty string to null, the storage form for
// absent optional fields.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// validateWebURL checks that raw parses as a well-formed URL.
func validateWebURL(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return validationf("%s must be a valid URL", field)
	}
	return nil
}

// validateCtaURL additionally restricts the scheme to http/https. The
// allowlist blocks javascript:-style payloads from reaching rendered links;
// keep it even if a future migration simplifies URL handling.
func validateCtaURL(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return validationf("%s must be a valid URL", field)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return validationf("%s must use http or https", field)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
