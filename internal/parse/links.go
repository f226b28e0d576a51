package parse

import (
	"regexp"
	"strings"

	"github.com/artflaneur/contentfactory/internal/models"
)

// Only markdown-style links count as citations; bare URLs are left alone.
var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)

// ExtractLinks pulls [title](url) markdown links out of a text blob,
// ordered by first appearance and deduplicated by URL. The first-seen title
// wins; later occurrences of the same URL are discarded.
func ExtractLinks(text string) []models.SourceLink {
	matches := markdownLinkRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	links := make([]models.SourceLink, 0, len(matches))
	for _, m := range matches {
		url := strings.TrimSpace(m[2])
		if seen[url] {
			continue
		}
		seen[url] = true
		links = append(links, models.SourceLink{
			Title: strings.TrimSpace(m[1]),
			URL:   url,
		})
	}
	return links
}

// ExtractLinkURLs returns just the deduplicated URLs, preserving order.
func ExtractLinkURLs(text string) []string {
	links := ExtractLinks(text)
	if len(links) == 0 {
		return nil
	}
	urls := make([]string, len(links))
	for i, l := range links {
		urls[i] = l.URL
	}
	return urls
}
