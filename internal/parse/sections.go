package parse

import (
	"regexp"
	"strings"
)

// Canonical section names emitted by the prompt's delimiter scaffold.
// The alias tables below are load-bearing: they encode every heading
// variant observed in real model output and must stay stable so that
// responses to historical prompts keep parsing.
const (
	SectionLinkedIn  = "LINKEDIN"
	SectionShort     = "SHORT_VERSION"
	SectionTelegram  = "TELEGRAM_VERSION"
	SectionInstagram = "INSTAGRAM_VERSION"
	SectionYouTube   = "YOUTUBE_VERSION"
	SectionEmail     = "EMAIL_VERSION"
	SectionHooks     = "HOOKS"

	SectionHeadline     = "HEADLINE"
	SectionSubheadline  = "SUBHEADLINE"
	SectionReleaseDate  = "RELEASE_DATE"
	SectionBody         = "BODY"
	SectionBoilerplate  = "BOILERPLATE"
	SectionMediaContact = "MEDIA_CONTACT"
)

// CanonicalizeSection maps a loose heading token to its canonical social
// section name. Returns "" when the token is not recognized.
func CanonicalizeSection(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Join(strings.Fields(key), " ")

	switch key {
	case "linkedin", "linkedin post", "linkedin post content":
		return SectionLinkedIn
	case "short_version", "short version", "x", "x / threads", "x/threads", "threads", "twitter":
		return SectionShort
	case "telegram_version", "telegram", "telegram version":
		return SectionTelegram
	case "instagram_version", "instagram", "instagram version":
		return SectionInstagram
	case "youtube_version", "youtube", "youtube version":
		return SectionYouTube
	case "email_version", "email", "email template", "email version":
		return SectionEmail
	case "hooks", "hook", "alt hooks", "alternative hooks":
		return SectionHooks
	}
	return ""
}

// CanonicalizePressSection maps a loose heading token to its canonical
// press-release field name. Returns "" when the token is not recognized.
func CanonicalizePressSection(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Join(strings.Fields(key), " ")

	switch key {
	case "headline":
		return SectionHeadline
	case "subheadline", "sub-headline", "subhead":
		return SectionSubheadline
	case "release_date", "release date", "release info":
		return SectionReleaseDate
	case "body":
		return SectionBody
	case "boilerplate", "about":
		return SectionBoilerplate
	case "media_contact", "media contact", "press contact":
		return SectionMediaContact
	}
	return ""
}

// Heading recognizers tolerate markdown decoration around a section name:
//
//	LinkedIn
//	## SHORT_VERSION
//	**YOUTUBE_VERSION---
//	Telegram: inline content after the colon
//
// Group 1 captures the alias, group 2 any inline content on the same line.
var (
	socialHeadingRe = regexp.MustCompile(`(?i)^\s*(?:[#>*\-–•]+\s*)?(?:[*_]{1,3}\s*)?(linkedin(?:\s+post(?:\s+content)?)?|short_version|short version|x\s*/\s*threads|twitter|threads|telegram_version|telegram(?:\s+version)?|instagram_version|instagram(?:\s+version)?|youtube_version|youtube(?:\s+version)?|email_version|email(?:\s+version)?|email template|hooks|alternative hooks)\b\s*(?:-{3,})?\s*:?\s*(.*)$`)

	pressHeadingRe = regexp.MustCompile(`(?i)^\s*(?:[#>*\-–•]+\s*)?(?:[*_]{1,3}\s*)?(headline|subheadline|release_date|release date|release info|body|boilerplate|media_contact|media contact|press contact)\b\s*(?:-{3,})?\s*:?\s*(.*)$`)

	// Strict delimiter form the prompt asks for: ---NAME---
	delimiterRe = regexp.MustCompile(`(?:^|\n)\s*---\s*([A-Z_]+)\s*---\s*(?:\n|$)`)

	// Literal section tokens left inside text signal a failed split.
	socialMarkerRe = regexp.MustCompile(`(?i)(SHORT_VERSION|TELEGRAM_VERSION|INSTAGRAM_VERSION|YOUTUBE_VERSION|HOOKS)`)
	pressMarkerRe  = regexp.MustCompile(`(?i)(HEADLINE|SUBHEADLINE|RELEASE_DATE|BOILERPLATE|MEDIA_CONTACT)`)
)

// SocialSections lists the canonical social names in scaffold order.
var SocialSections = []string{
	SectionLinkedIn,
	SectionShort,
	SectionTelegram,
	SectionInstagram,
	SectionYouTube,
	SectionEmail,
	SectionHooks,
}

// PressSections lists the canonical press-release field names in scaffold order.
var PressSections = []string{
	SectionHeadline,
	SectionSubheadline,
	SectionReleaseDate,
	SectionBody,
	SectionBoilerplate,
	SectionMediaContact,
}
