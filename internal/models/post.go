package models

import "time"

// SourceLink is a markdown citation recovered from generated content.
type SourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EmailTemplate holds the structured email/collector letter fields parsed
// from the EMAIL_VERSION section. Missing fields stay empty.
type EmailTemplate struct {
	Subject   string `json:"subject"`
	Greeting  string `json:"greeting"`
	Body      string `json:"body"`
	Signature string `json:"signature"`
}

// MediaContact is the press-release contact block. Email is mandatory by the
// time a press release leaves the pipeline.
type MediaContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PressRelease carries the structured fields extracted from a press-release
// generation.
type PressRelease struct {
	Headline     string        `json:"headline"`
	Subheadline  string        `json:"subheadline,omitempty"`
	ReleaseDate  string        `json:"release_date"`
	Location     string        `json:"location"`
	Body         string        `json:"body"`
	Boilerplate  string        `json:"boilerplate,omitempty"`
	MediaContact *MediaContact `json:"media_contact,omitempty"`
}

// Empty reports whether no press-release field was recovered at all.
func (p *PressRelease) Empty() bool {
	if p == nil {
		return true
	}
	return p.Headline == "" && p.Subheadline == "" && p.ReleaseDate == "" &&
		p.Body == "" && p.Boilerplate == "" && p.MediaContact == nil
}

// GeneratedPost is the final structured result of one generation.
type GeneratedPost struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Content          string         `json:"content"`
	ShortContent     string         `json:"short_content,omitempty"`
	TelegramContent  string         `json:"telegram_content,omitempty"`
	InstagramContent string         `json:"instagram_content,omitempty"`
	YoutubeContent   string         `json:"youtube_content,omitempty"`
	AlternativeHooks []string       `json:"alternative_hooks,omitempty"`
	FrameworkUsed    string         `json:"framework_used"`
	Rationale        string         `json:"rationale"`
	SourceLinks      []SourceLink   `json:"source_links,omitempty"`
	EmailTemplate    *EmailTemplate `json:"email_template,omitempty"`
	PressRelease     *PressRelease  `json:"press_release,omitempty"`
	FilePath         string         `json:"file_path,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}
