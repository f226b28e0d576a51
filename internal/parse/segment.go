package parse

import (
	"regexp"
	"strings"
)

// Segment is one delimited region of a completion: the canonical name from
// the delimiter line plus the trimmed body up to the next delimiter.
type Segment struct {
	Name string
	Body string
}

// NormalizeLooseHeadings rewrites decorated heading lines into the strict
// ---NAME--- delimiter form so the primary split can pick them up.
// Example: "**YOUTUBE_VERSION---" becomes "---YOUTUBE_VERSION---".
//
// LinkedIn is the implicit default before any delimiter, so explicit
// LinkedIn headings are dropped rather than rewritten; inline content on the
// heading line is preserved either way.
func NormalizeLooseHeadings(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		m := socialHeadingRe.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}

		section := CanonicalizeSection(m[1])
		if section == "" {
			out = append(out, line)
			continue
		}

		rest := strings.TrimSpace(m[2])
		if section == SectionLinkedIn {
			if rest != "" {
				out = append(out, rest)
			}
			continue
		}

		out = append(out, "---"+section+"---")
		if rest != "" {
			out = append(out, rest)
		}
	}

	return strings.Join(out, "\n")
}

// SplitDelimited splits a completion on strict ---NAME--- delimiters.
// It returns the preamble (everything before the first delimiter, untrimmed)
// and the ordered delimited segments. An empty segment list means the text
// contained no recognizable delimiter at all.
func SplitDelimited(text string) (string, []Segment) {
	locs := delimiterRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}

	preamble := text[:locs[0][0]]
	segments := make([]Segment, 0, len(locs))
	for i, m := range locs {
		name := text[m[2]:m[3]]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segments = append(segments, Segment{
			Name: name,
			Body: strings.TrimSpace(text[m[1]:end]),
		})
	}

	return preamble, segments
}

// bucketByHeadings runs the loose line-by-line heading scan shared by the
// social and press fallback parsers. Lines accumulate under the most recent
// recognized heading; lines before any heading form the preamble. When the
// defaultSection bucket ends up empty the preamble is promoted into it.
func bucketByHeadings(text string, headingRe *regexp.Regexp, canonicalize func(string) string, defaultSection string) (map[string]string, bool) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	buckets := make(map[string][]string)
	var preamble []string
	current := ""

	for _, line := range lines {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			if section := canonicalize(m[1]); section != "" {
				current = section
				if rest := strings.TrimSpace(m[2]); rest != "" {
					buckets[current] = append(buckets[current], rest)
				}
				continue
			}
		}

		if current != "" {
			buckets[current] = append(buckets[current], line)
		} else {
			preamble = append(preamble, line)
		}
	}

	out := make(map[string]string, len(buckets))
	for name, lines := range buckets {
		out[name] = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	if out[defaultSection] == "" {
		if pre := strings.TrimSpace(strings.Join(preamble, "\n")); pre != "" {
			out[defaultSection] = pre
		}
	}

	hasAny := false
	for _, body := range out {
		if body != "" {
			hasAny = true
			break
		}
	}
	return out, hasAny
}
