// Package normalize post-processes recovered sections for their target
// surfaces: hard character budgets, plain-text emphasis stripping, and
// redaction of lines citing invalid URLs.
package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/artflaneur/contentfactory/internal/models"
)

// PlatformCharLimits are hard per-surface character ceilings, counted in
// runes. Content for an enforced platform never exceeds its ceiling.
var PlatformCharLimits = map[models.Platform]int{
	models.PlatformLinkedIn:  1250,
	models.PlatformTwitter:   280,
	models.PlatformTelegram:  4096,
	models.PlatformInstagram: 2200,
	models.PlatformYouTube:   10000,
}

const ellipsis = "..."

// TruncateToLimit trims text and cuts it to at most limit runes. When a cut
// is needed, 3 runes are reserved for a literal "..." suffix and the cut
// prefers the last space before the budget, unless that space sits absurdly
// early (before max(30, budget-40) runes), in which case it hard-cuts at the
// rune boundary.
func TruncateToLimit(text string, limit int) string {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) <= limit {
		return trimmed
	}

	max := limit - len(ellipsis)
	if max < 0 {
		max = 0
	}
	candidate := string(runes[:max])

	threshold := max - 40
	if threshold < 30 {
		threshold = 30
	}

	// LastIndex returns a byte offset; the threshold is in runes. Compare
	// in runes or multibyte text cuts far too early.
	cut := candidate
	if lastSpace := strings.LastIndex(candidate, " "); lastSpace >= 0 &&
		utf8.RuneCountInString(candidate[:lastSpace]) > threshold {
		cut = candidate[:lastSpace]
	}

	out := []rune(strings.TrimRight(cut, " \t\n") + ellipsis)
	if len(out) > limit {
		out = out[:limit]
	}
	return string(out)
}

var emphasisReplacer = strings.NewReplacer("**", "", "*", "", "__", "", "_", "")

// StripEmphasis removes markdown emphasis markers. Used for surfaces that
// render plain text, where the markers would leak literally to the reader.
func StripEmphasis(text string) string {
	return emphasisReplacer.Replace(text)
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// ScrubInvalidURLLines drops every line that contains any of the invalid
// URLs as a substring, then collapses runs of three or more newlines down to
// a single blank line and trims. Redaction is line-granular: a line pairing
// a claim with a dead citation loses the claim too.
func ScrubInvalidURLLines(text string, invalidURLs []string) string {
	if text == "" || len(invalidURLs) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		bad := false
		for _, u := range invalidURLs {
			if u != "" && strings.Contains(line, u) {
				bad = true
				break
			}
		}
		if !bad {
			kept = append(kept, line)
		}
	}

	return strings.TrimSpace(blankRunRe.ReplaceAllString(strings.Join(kept, "\n"), "\n\n"))
}

// FilterHooks drops hooks that reference any invalid URL.
func FilterHooks(hooks []string, invalidURLs []string) []string {
	if len(hooks) == 0 || len(invalidURLs) == 0 {
		return hooks
	}
	kept := make([]string, 0, len(hooks))
	for _, h := range hooks {
		bad := false
		for _, u := range invalidURLs {
			if u != "" && strings.Contains(h, u) {
				bad = true
				break
			}
		}
		if !bad {
			kept = append(kept, h)
		}
	}
	return kept
}
