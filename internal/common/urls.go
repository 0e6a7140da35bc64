// Package common holds small helpers shared by the CLI actions.
package common

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// markdownLinkPattern extracts the URL out of a pasted markdown link:
// [text](https://example.com) -> https://example.com
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL cleans up common copy-paste artifacts around a URL:
// surrounding whitespace, markdown link syntax, stray punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// ValidateURL sanitizes a user-supplied URL and verifies it is an
// absolute http(s) URL. Returns the cleaned URL.
func ValidateURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("empty URL")
	}
	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("URL contains spaces: %q", cleaned)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", cleaned, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL must start with http:// or https://: %q", cleaned)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL has no host: %q", cleaned)
	}

	return cleaned, nil
}
