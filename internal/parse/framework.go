package parse

import "strings"

const linkedInPlaceholder = "[LinkedIn Post Content]"

// StripFrameworkLine removes the "Framework Used: ..." line and the literal
// scaffold placeholder from LinkedIn content. It returns the cleaned content
// and the detected framework name ("" when the model named none).
func StripFrameworkLine(content string) (string, string) {
	framework := ""
	found := false

	var clean []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == linkedInPlaceholder {
			continue
		}

		if !found {
			if idx := strings.Index(strings.ToLower(trimmed), "framework used:"); idx >= 0 {
				framework = strings.TrimSpace(trimmed[idx+len("framework used:"):])
				found = true
				continue
			}
		}

		clean = append(clean, line)
	}

	return strings.TrimSpace(strings.Join(clean, "\n")), framework
}
