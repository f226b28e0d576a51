package models

// Category selects the content framework family for a generation.
type Category string

const (
	CategoryHarshTruths             Category = "Harsh Truths"
	CategoryPersonalJourney         Category = "Personal Journey"
	CategoryLeadership              Category = "Leadership & Management"
	CategoryProblemSolving          Category = "Problem Solving"
	CategoryGrowth                  Category = "Growth & Development"
	CategoryClientRelations         Category = "Client Relations"
	CategoryInnovation              Category = "Innovation & Change"
	CategoryProductivity            Category = "Productivity & Systems"
	CategoryMoneyValue              Category = "Money & Value"
	CategoryRedFlags                Category = "Red Flags / Green Flags"
	CategoryComments                Category = "Comments"
	CategoryPressReleases           Category = "Press Releases"
	CategoryExhibitionAnnouncements Category = "Exhibition Announcements"
	CategoryCollectorCommunication  Category = "Collector Communication"
	CategoryEventInvitations        Category = "Event Invitations"
)

// IsOfficial reports whether the category represents an institutional
// communication that must avoid first-person singular voice.
func (c Category) IsOfficial() bool {
	switch c {
	case CategoryPressReleases, CategoryExhibitionAnnouncements,
		CategoryCollectorCommunication, CategoryEventInvitations:
		return true
	}
	return false
}

// Language is the output language requested for the generated content.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageRussian Language = "Russian"
	LanguageFrench  Language = "French"
	LanguageGerman  Language = "German"
)

// Platform identifies a target surface with its own character budget.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformTelegram  Platform = "telegram"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
)

// AllPlatforms is the default enforcement set when the caller does not
// restrict platforms. Order is significant for prompt construction.
var AllPlatforms = []Platform{
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformTelegram,
	PlatformInstagram,
	PlatformYouTube,
}

// UserContext carries the author profile used to flavor prompt construction.
type UserContext struct {
	Industry       string `json:"industry,omitempty"`
	Role           string `json:"role,omitempty"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
}

// OrganizationInfo holds the organization profile. Contact fields back-fill
// the media contact block of press releases when the model omits them.
type OrganizationInfo struct {
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	Description  string `json:"description,omitempty"`
	Website      string `json:"website,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// GenerationRequest is the body of POST /api/v1/generate.
type GenerationRequest struct {
	Audience    string   `json:"audience" validate:"required"`
	Category    Category `json:"category" validate:"required"`
	Topic       string   `json:"topic" validate:"required"`
	Language    Language `json:"language,omitempty"`
	FrameworkID string   `json:"framework_id,omitempty"`
	IncludeNews bool     `json:"include_news"`
	// SourceURLs is the allow-list of citable URLs. Only meaningful when
	// IncludeNews is set; capped at 20 entries.
	SourceURLs       []string          `json:"source_urls,omitempty" validate:"omitempty,max=20,dive,url"`
	Platforms        []Platform        `json:"platforms,omitempty"`
	Goal             string            `json:"goal,omitempty"`
	Tone             string            `json:"tone,omitempty"`
	UserContext      *UserContext      `json:"user_context,omitempty"`
	OrganizationInfo *OrganizationInfo `json:"organization_info,omitempty"`
}

// OutputLanguage resolves the requested language, defaulting to English.
func (r *GenerationRequest) OutputLanguage() Language {
	if r.Language == "" {
		return LanguageEnglish
	}
	return r.Language
}

// EnforcedPlatforms resolves the platform set whose character limits are
// enforced. An empty or missing set means all platforms; unknown tags are
// dropped and the canonical order is preserved.
func (r *GenerationRequest) EnforcedPlatforms() []Platform {
	if len(r.Platforms) == 0 {
		return AllPlatforms
	}
	requested := make(map[Platform]bool, len(r.Platforms))
	for _, p := range r.Platforms {
		requested[p] = true
	}
	var out []Platform
	for _, p := range AllPlatforms {
		if requested[p] {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return AllPlatforms
	}
	return out
}
