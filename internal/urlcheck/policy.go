// Package urlcheck classifies and verifies URLs found in generated content.
// Policy filtering is pure and always runs before any network call: a URL
// rejected by policy is never fetched, no matter how plausible it looks.
package urlcheck

import (
	"net/url"
	"strings"
)

// Placeholder and local hosts that models hallucinate into citations.
var blockedHosts = map[string]bool{
	"example.com":     true,
	"www.example.com": true,
	"example.org":     true,
	"www.example.org": true,
	"example.net":     true,
	"www.example.net": true,
	"localhost":       true,
	"127.0.0.1":       true,
	"0.0.0.0":         true,
}

// IsDisallowed reports whether a URL is policy-blocked regardless of
// reachability: placeholder/demo domains (including subdomains), local
// hosts, or anything that fails to parse as an absolute URL.
func IsDisallowed(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return true
	}

	host := strings.ToLower(u.Hostname())
	if blockedHosts[host] {
		return true
	}

	// Some models emit *.example.com style hosts.
	return strings.HasSuffix(host, ".example.com") ||
		strings.HasSuffix(host, ".example.org") ||
		strings.HasSuffix(host, ".example.net")
}

// StripTrailingSlash normalizes a URL for allow-list comparison.
func StripTrailingSlash(raw string) string {
	return strings.TrimRight(raw, "/")
}

// AllowList is the caller-supplied set of citable URLs. Comparison is an
// exact match after trailing-slash normalization, deliberately not a
// prefix or substring check.
type AllowList map[string]bool

// NewAllowList builds an allow-list from the caller's source URLs, trimming
// whitespace, dropping empties, and capping at limit entries (<=0 for no
// cap). Returns nil when no usable entry remains, which downstream treats
// as "no restriction".
func NewAllowList(sourceURLs []string, limit int) AllowList {
	if len(sourceURLs) == 0 {
		return nil
	}
	if limit > 0 && len(sourceURLs) > limit {
		sourceURLs = sourceURLs[:limit]
	}

	list := make(AllowList, len(sourceURLs))
	for _, raw := range sourceURLs {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		list[StripTrailingSlash(trimmed)] = true
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// Contains reports whether a URL is on the allow-list. A nil list allows
// everything.
func (a AllowList) Contains(raw string) bool {
	if a == nil {
		return true
	}
	return a[StripTrailingSlash(raw)]
}
