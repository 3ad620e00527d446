package utils

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s, used for case-insensitive matching.
// Casers keep state, so one is built per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsAnyFold reports whether s contains any keyword, ignoring case.
// keywords are expected to be folded already.
func ContainsAnyFold(s string, keywords []string) bool {
	folded := Fold(s)
	for _, keyword := range keywords {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

// QueryEscape escapes s for use as a query value, encoding spaces as %20
// rather than "+" so the result reads the same as a browser-built search URL.
func QueryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// GetBaseURL returns scheme://host of rawURL, or "" if it does not parse.
func GetBaseURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// ResolveURL resolves href against base. Absolute hrefs come back untouched.
func ResolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// Hostname returns the lower-cased host of rawURL without port or a
// trailing dot. Unparseable input yields "".
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
}

// HostMatches reports whether host is domain or one of its subdomains.
func HostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
