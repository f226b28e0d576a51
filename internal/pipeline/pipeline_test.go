package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/artflaneur/contentfactory/internal/models"
	"github.com/artflaneur/contentfactory/internal/urlcheck"
)

type stubCompleter struct {
	response string
	err      error
}

func (s stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.response, s.err
}

// stubValidator marks the listed URLs dead and everything else alive.
type stubValidator struct {
	dead map[string]bool
	seen []string
}

func (s *stubValidator) ValidateAll(_ context.Context, urls []string) []urlcheck.Outcome {
	s.seen = append(s.seen, urls...)
	outcomes := make([]urlcheck.Outcome, 0, len(urls))
	for _, u := range urls {
		status := 200
		if s.dead[u] {
			status = 404
			outcomes = append(outcomes, urlcheck.Outcome{URL: u, OK: false, Status: &status, Reason: urlcheck.ReasonNotFound})
			continue
		}
		outcomes = append(outcomes, urlcheck.Outcome{URL: u, OK: true, Status: &status})
	}
	return outcomes
}

func basicRequest() *models.GenerationRequest {
	return &models.GenerationRequest{
		Audience: "gallery owners",
		Category: models.CategoryGrowth,
		Topic:    "building a collector base",
	}
}

func TestGenerateBasic(t *testing.T) {
	response := strings.Join([]string{
		"Framework Used: AIDA",
		"The main post about collectors.",
		"",
		"---SHORT_VERSION---",
		"The short take.",
		"",
		"---TELEGRAM_VERSION---",
		"The telegram take.",
		"",
		"---HOOKS---",
		"1. First hook",
		"2. Second hook",
	}, "\n")

	svc := New(stubCompleter{response: response}, &stubValidator{}, nil)

	post, err := svc.Generate(context.Background(), basicRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if post.Content != "The main post about collectors." {
		t.Errorf("Unexpected content: %q", post.Content)
	}
	if post.FrameworkUsed != "AIDA" {
		t.Errorf("Unexpected framework: %q", post.FrameworkUsed)
	}
	if post.ShortContent != "The short take." {
		t.Errorf("Unexpected short content: %q", post.ShortContent)
	}
	if post.TelegramContent != "The telegram take." {
		t.Errorf("Unexpected telegram content: %q", post.TelegramContent)
	}
	if len(post.AlternativeHooks) != 2 || post.AlternativeHooks[0] != "First hook" {
		t.Errorf("Unexpected hooks: %v", post.AlternativeHooks)
	}
	if len(post.ID) != 16 {
		t.Errorf("Expected 16-char ID, got %q", post.ID)
	}
	if post.PressRelease != nil {
		t.Errorf("Expected no press release, got %+v", post.PressRelease)
	}
}

func TestGenerateCompletionFailure(t *testing.T) {
	svc := New(stubCompleter{err: errors.New("backend down")}, &stubValidator{}, nil)

	if _, err := svc.Generate(context.Background(), basicRequest()); err == nil {
		t.Fatal("Expected error from failed completion")
	}
}

func TestGenerateScrubsDeadCitations(t *testing.T) {
	response := strings.Join([]string{
		"A claim with a live source [report](https://news.site.com/report).",
		"A claim citing [dead research](https://news.site.com/gone) here.",
	}, "\n")

	req := basicRequest()
	req.SourceURLs = []string{"https://news.site.com/report", "https://news.site.com/gone"}

	validator := &stubValidator{dead: map[string]bool{"https://news.site.com/gone": true}}
	svc := New(stubCompleter{response: response}, validator, nil)

	post, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if strings.Contains(post.Content, "dead research") {
		t.Errorf("Expected dead-citation line removed, got %q", post.Content)
	}
	if !strings.Contains(post.Content, "live source") {
		t.Errorf("Expected live-citation line kept, got %q", post.Content)
	}
	if len(post.SourceLinks) != 1 || post.SourceLinks[0].URL != "https://news.site.com/report" {
		t.Errorf("Unexpected source links: %v", post.SourceLinks)
	}
	if len(validator.seen) != 2 {
		t.Errorf("Expected both URLs validated, got %v", validator.seen)
	}
}

func TestGeneratePolicyBlockedURLsNeverValidated(t *testing.T) {
	response := "Cites [a placeholder](https://example.com/fake) and " +
		"[off-list](https://other.site.com/x) sources."

	req := basicRequest()
	req.SourceURLs = []string{"https://news.site.com/report"}

	validator := &stubValidator{}
	svc := New(stubCompleter{response: response}, validator, nil)

	post, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(validator.seen) != 0 {
		t.Errorf("Expected no network validation for blocked URLs, got %v", validator.seen)
	}
	if len(post.SourceLinks) != 0 {
		t.Errorf("Expected no surviving source links, got %v", post.SourceLinks)
	}
	if strings.Contains(post.Content, "example.com") {
		t.Errorf("Expected blocked citation lines scrubbed, got %q", post.Content)
	}
}

func TestGenerateTruncatesEnforcedPlatforms(t *testing.T) {
	longShort := strings.Repeat("word ", 100)
	response := "The post.\n---SHORT_VERSION---\n" + longShort

	req := basicRequest()
	req.Platforms = []models.Platform{models.PlatformTwitter}

	svc := New(stubCompleter{response: response}, &stubValidator{}, nil)

	post, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if utf8.RuneCountInString(post.ShortContent) > 280 {
		t.Errorf("Short content exceeds limit: %d runes", utf8.RuneCountInString(post.ShortContent))
	}
	if !strings.HasSuffix(post.ShortContent, "...") {
		t.Errorf("Expected ellipsis on truncated content, got %q", post.ShortContent)
	}
	// LinkedIn not in the enforced set, so the main content keeps its length.
	if post.Content != "The post." {
		t.Errorf("Unexpected content: %q", post.Content)
	}
}

func TestGeneratePressReleaseMergesOrgContact(t *testing.T) {
	response := strings.Join([]string{
		"---HEADLINE---",
		"Gallery Announces Winter Program",
		"---RELEASE_DATE---",
		"Vienna, Austria - January 10, 2027",
		"---BODY---",
		"The program opens in January.",
		"---MEDIA_CONTACT---",
		"Name: Ada Example",
	}, "\n")

	req := basicRequest()
	req.Category = models.CategoryPressReleases
	req.OrganizationInfo = &models.OrganizationInfo{
		Name:         "The Gallery",
		ContactEmail: "press@gallery.example",
		ContactPhone: "+43 1 5550100",
	}

	svc := New(stubCompleter{response: response}, &stubValidator{}, nil)

	post, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	pr := post.PressRelease
	if pr == nil {
		t.Fatal("Expected press release")
	}
	if pr.Headline != "Gallery Announces Winter Program" {
		t.Errorf("Unexpected headline: %q", pr.Headline)
	}
	if pr.Location != "Vienna, Austria" {
		t.Errorf("Unexpected location: %q", pr.Location)
	}
	if pr.MediaContact == nil {
		t.Fatal("Expected media contact")
	}
	if pr.MediaContact.Name != "Ada Example" {
		t.Errorf("Unexpected contact name: %q", pr.MediaContact.Name)
	}
	if pr.MediaContact.Email != "press@gallery.example" {
		t.Errorf("Expected email back-filled from organization, got %q", pr.MediaContact.Email)
	}
}

func TestGeneratePressReleaseMissingEmail(t *testing.T) {
	response := "---HEADLINE---\nA Headline\n---BODY---\nBody text."

	req := basicRequest()
	req.Category = models.CategoryPressReleases

	svc := New(stubCompleter{response: response}, &stubValidator{}, nil)

	_, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, ErrMissingContactEmail) {
		t.Fatalf("Expected ErrMissingContactEmail, got %v", err)
	}
}

func TestGenerateCommentSkipsExtras(t *testing.T) {
	response := "A thoughtful comment reply.\n---HOOKS---\n1. Should be ignored"

	req := basicRequest()
	req.Category = models.CategoryComments

	svc := New(stubCompleter{response: response}, &stubValidator{}, nil)

	post, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if post.AlternativeHooks != nil {
		t.Errorf("Expected no hooks for comments, got %v", post.AlternativeHooks)
	}
	if post.EmailTemplate != nil {
		t.Errorf("Expected no email template for comments, got %+v", post.EmailTemplate)
	}
	if post.Title != "Comment reply" {
		t.Errorf("Unexpected title: %q", post.Title)
	}
}

func TestMergeMediaContactDefaults(t *testing.T) {
	org := &models.OrganizationInfo{ContactEmail: "press@org.example"}

	merged, err := mergeMediaContact(nil, org)
	if err != nil {
		t.Fatalf("mergeMediaContact failed: %v", err)
	}
	if merged.Name != "Media Relations" {
		t.Errorf("Expected default name, got %q", merged.Name)
	}
	if merged.Email != "press@org.example" {
		t.Errorf("Unexpected email: %q", merged.Email)
	}
}

func TestMergeMediaContactModelEmailWins(t *testing.T) {
	contact := &models.MediaContact{Name: "Ada", Email: "ada@studio.example"}
	org := &models.OrganizationInfo{ContactEmail: "press@org.example"}

	merged, err := mergeMediaContact(contact, org)
	if err != nil {
		t.Fatalf("mergeMediaContact failed: %v", err)
	}
	if merged.Email != "ada@studio.example" {
		t.Errorf("Expected model-provided email kept, got %q", merged.Email)
	}
}
