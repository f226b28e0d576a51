package parse

import (
	"regexp"
	"strings"
)

var ordinalPrefixRe = regexp.MustCompile(`^\d+\.\s*`)

// Hooks splits a HOOKS section into an ordered list of hook lines,
// stripping "1. " style ordinal prefixes and dropping blank lines.
func Hooks(raw string) []string {
	var hooks []string
	for _, line := range strings.Split(raw, "\n") {
		hook := strings.TrimSpace(ordinalPrefixRe.ReplaceAllString(line, ""))
		if hook != "" {
			hooks = append(hooks, hook)
		}
	}
	return hooks
}
