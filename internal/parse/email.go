package parse

import (
	"regexp"
	"strings"

	"github.com/artflaneur/contentfactory/internal/models"
)

var (
	emailSubjectRe   = regexp.MustCompile(`(?i)Subject:\s*(.+)`)
	emailGreetingRe  = regexp.MustCompile(`(?i)Greeting:\s*(.+)`)
	emailBodyRe      = regexp.MustCompile(`(?is)Body:\s*(.*?)(?:\n\s*Signature:|\z)`)
	emailSignatureRe = regexp.MustCompile(`(?is)Signature:\s*(.*)\z`)
)

// EmailTemplate extracts the Subject/Greeting/Body/Signature fields from an
// EMAIL_VERSION section. Each field matches independently; anything that
// does not match stays empty. This never fails.
func EmailTemplate(raw string) models.EmailTemplate {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	var tpl models.EmailTemplate
	if m := emailSubjectRe.FindStringSubmatch(normalized); m != nil {
		tpl.Subject = strings.TrimSpace(m[1])
	}
	if m := emailGreetingRe.FindStringSubmatch(normalized); m != nil {
		tpl.Greeting = strings.TrimSpace(m[1])
	}
	if m := emailBodyRe.FindStringSubmatch(normalized); m != nil {
		tpl.Body = strings.TrimSpace(m[1])
	}
	if m := emailSignatureRe.FindStringSubmatch(normalized); m != nil {
		tpl.Signature = strings.TrimSpace(m[1])
	}
	return tpl
}
