package parse

import (
	"regexp"
	"strings"

	"github.com/artflaneur/contentfactory/internal/models"
)

var (
	releaseLocationRe = regexp.MustCompile(`^([^-]+?)\s*-`)
	contactNameRe     = regexp.MustCompile(`(?i)Name:\s*(.+)`)
	contactEmailRe    = regexp.MustCompile(`(?i)Email:\s*(.+)`)
	contactPhoneRe    = regexp.MustCompile(`(?i)Phone:\s*(.+)`)
)

// LocationNotSpecified is the sentinel used when neither the RELEASE_DATE
// line nor the caller's context yields a location.
const LocationNotSpecified = "Location not specified"

// PressRelease maps raw press segments (canonical name -> body) into the
// structured record. The release-date line is expected in the
// "[City, Country] - [Date]" shape; when the location prefix is missing it
// falls back to the caller's city/country context, then to the sentinel.
func PressRelease(sections map[string]string, userCtx *models.UserContext) *models.PressRelease {
	if len(sections) == 0 {
		return nil
	}

	pr := &models.PressRelease{
		Headline:    sections[SectionHeadline],
		Subheadline: sections[SectionSubheadline],
		Body:        sections[SectionBody],
		Boilerplate: sections[SectionBoilerplate],
	}

	if release := sections[SectionReleaseDate]; release != "" {
		pr.ReleaseDate = release
		if m := releaseLocationRe.FindStringSubmatch(release); m != nil {
			pr.Location = strings.TrimSpace(m[1])
		} else {
			pr.Location = fallbackLocation(userCtx)
		}
	}

	if contact := sections[SectionMediaContact]; contact != "" {
		pr.MediaContact = MediaContact(contact)
	}

	if pr.Empty() {
		return nil
	}
	return pr
}

// MediaContact extracts Name/Email/Phone lines from a MEDIA_CONTACT
// section. Absent fields stay empty for downstream back-filling from the
// organization profile.
func MediaContact(raw string) *models.MediaContact {
	contact := &models.MediaContact{}
	if m := contactNameRe.FindStringSubmatch(raw); m != nil {
		contact.Name = strings.TrimSpace(m[1])
	}
	if m := contactEmailRe.FindStringSubmatch(raw); m != nil {
		contact.Email = strings.TrimSpace(m[1])
	}
	if m := contactPhoneRe.FindStringSubmatch(raw); m != nil {
		contact.Phone = strings.TrimSpace(m[1])
	}
	return contact
}

func fallbackLocation(userCtx *models.UserContext) string {
	if userCtx != nil && userCtx.City != "" && userCtx.Country != "" {
		return userCtx.City + ", " + userCtx.Country
	}
	return LocationNotSpecified
}
