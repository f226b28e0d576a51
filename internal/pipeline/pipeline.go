// Package pipeline runs a generation end to end: prompt the completion
// backend, recover sections from the raw text, validate and scrub embedded
// URLs, and enforce per-platform budgets. Segmentation, link extraction and
// policy filtering always finish before any network validation starts, and
// validation results are applied across all sections in one batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artflaneur/contentfactory/internal/ai"
	"github.com/artflaneur/contentfactory/internal/history"
	"github.com/artflaneur/contentfactory/internal/logger"
	"github.com/artflaneur/contentfactory/internal/models"
	"github.com/artflaneur/contentfactory/internal/normalize"
	"github.com/artflaneur/contentfactory/internal/parse"
	"github.com/artflaneur/contentfactory/internal/urlcheck"
	"github.com/artflaneur/contentfactory/internal/utils"
)

// ErrMissingContactEmail is the one hard validation failure in the
// pipeline: a press release without a reachable contact must not ship.
var ErrMissingContactEmail = errors.New("organization contact email is required for press releases; please complete your organization profile")

const defaultSaveTimeout = 4 * time.Second

// URLValidator is the request-boundary liveness capability. The pipeline
// calls it once per generation with the deduplicated union of URLs across
// all sections, never per section.
type URLValidator interface {
	ValidateAll(ctx context.Context, urls []string) []urlcheck.Outcome
}

// Service orchestrates generations.
type Service struct {
	completer   ai.Completer
	validator   URLValidator
	store       *history.Store
	saveTimeout time.Duration
}

// New wires a pipeline service. The history store may be nil to disable
// persistence.
func New(completer ai.Completer, validator URLValidator, store *history.Store) *Service {
	return &Service{
		completer:   completer,
		validator:   validator,
		store:       store,
		saveTimeout: defaultSaveTimeout,
	}
}

// Generate runs the full pipeline for one request.
func (s *Service) Generate(ctx context.Context, req *models.GenerationRequest) (*models.GeneratedPost, error) {
	log := logger.Get()
	start := time.Now()

	system, prompt := ai.BuildPrompt(req)
	fullText, err := s.completer.Complete(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate post: %w", err)
	}

	log.Debug().
		Int("completion_chars", len(fullText)).
		Dur("completion_duration", time.Since(start)).
		Msg("Received completion")

	isComment := req.Category == models.CategoryComments

	sections := parse.Sections(fullText)
	content, detectedFramework := parse.StripFrameworkLine(sections.LinkedIn)

	var (
		hooks         []string
		emailTemplate *models.EmailTemplate
		pressRelease  *models.PressRelease
	)

	if !isComment {
		if sections.HooksRaw != "" {
			hooks = parse.Hooks(sections.HooksRaw)
		}
		if sections.EmailRaw != "" {
			tpl := parse.EmailTemplate(sections.EmailRaw)
			emailTemplate = &tpl
		}

		pressSections := sections.Press
		if req.Category == models.CategoryPressReleases &&
			len(pressSections) == 0 && !sections.ParsedByDelimiters &&
			parse.LooksLikePress(fullText) {
			pressSections = parse.PressFallback(fullText)
		}
		pressRelease = parse.PressRelease(pressSections, req.UserContext)

		if pressRelease != nil {
			if pressRelease.MediaContact, err = mergeMediaContact(pressRelease.MediaContact, req.OrganizationInfo); err != nil {
				return nil, err
			}
		}
	}

	youtube := normalize.StripEmphasis(sections.YouTube)

	// Collect every markdown link across sections, filter by policy and
	// allow-list, and only then hit the network for what is left.
	emailBody := ""
	if emailTemplate != nil {
		emailBody = emailTemplate.Body
	}
	allLinks := uniq(concat(
		parse.ExtractLinkURLs(content),
		parse.ExtractLinkURLs(sections.Short),
		parse.ExtractLinkURLs(sections.Telegram),
		parse.ExtractLinkURLs(youtube),
		parse.ExtractLinkURLs(emailBody),
	))

	allowList := urlcheck.NewAllowList(req.SourceURLs, urlcheck.MaxURLsPerRequest)

	var preInvalid []string
	for _, u := range allLinks {
		if urlcheck.IsDisallowed(u) || !allowList.Contains(u) {
			preInvalid = append(preInvalid, u)
		}
	}

	var candidates []string
	for _, u := range allLinks {
		if !contains(preInvalid, u) {
			candidates = append(candidates, u)
		}
	}

	var validURLs []string
	invalidURLs := preInvalid
	if len(candidates) > 0 {
		outcomes := s.validator.ValidateAll(ctx, urlcheck.Normalize(candidates))
		valid, netInvalid := urlcheck.Partition(outcomes)
		validURLs = valid
		invalidURLs = uniq(concat(preInvalid, netInvalid))
	}

	short, telegram := sections.Short, sections.Telegram
	if len(invalidURLs) > 0 {
		content = normalize.ScrubInvalidURLLines(content, invalidURLs)
		short = normalize.ScrubInvalidURLLines(short, invalidURLs)
		telegram = normalize.ScrubInvalidURLLines(telegram, invalidURLs)
		youtube = normalize.ScrubInvalidURLLines(youtube, invalidURLs)
		hooks = normalize.FilterHooks(hooks, invalidURLs)
		if emailTemplate != nil {
			if scrubbed := normalize.ScrubInvalidURLLines(emailTemplate.Body, invalidURLs); scrubbed != "" {
				emailTemplate.Body = scrubbed
			}
		}
	}

	instagram := sections.Instagram
	enforced := make(map[models.Platform]bool)
	for _, p := range req.EnforcedPlatforms() {
		enforced[p] = true
	}
	if enforced[models.PlatformLinkedIn] {
		content = normalize.TruncateToLimit(content, normalize.PlatformCharLimits[models.PlatformLinkedIn])
	}
	if enforced[models.PlatformTwitter] && short != "" {
		short = normalize.TruncateToLimit(short, normalize.PlatformCharLimits[models.PlatformTwitter])
	}
	if enforced[models.PlatformTelegram] && telegram != "" {
		telegram = normalize.TruncateToLimit(telegram, normalize.PlatformCharLimits[models.PlatformTelegram])
	}
	if enforced[models.PlatformInstagram] && instagram != "" {
		instagram = normalize.TruncateToLimit(instagram, normalize.PlatformCharLimits[models.PlatformInstagram])
	}
	if enforced[models.PlatformYouTube] && youtube != "" {
		youtube = normalize.TruncateToLimit(youtube, normalize.PlatformCharLimits[models.PlatformYouTube])
	}

	sourceLinks := s.filterSourceLinks(parse.ExtractLinks(content), allowList, validURLs)

	post := &models.GeneratedPost{
		ID:               utils.ShortHash(fmt.Sprintf("%s|%d", req.Topic, time.Now().UnixNano()), 16),
		Title:            postTitle(req),
		Content:          content,
		ShortContent:     short,
		TelegramContent:  telegram,
		InstagramContent: instagram,
		YoutubeContent:   youtube,
		AlternativeHooks: hooks,
		FrameworkUsed:    frameworkUsed(req, detectedFramework),
		Rationale:        rationale(req),
		SourceLinks:      sourceLinks,
		EmailTemplate:    emailTemplate,
		PressRelease:     pressRelease,
		CreatedAt:        time.Now(),
	}

	s.persistAsync(post)

	log.Info().
		Str("id", post.ID).
		Str("category", string(req.Category)).
		Int("source_links", len(sourceLinks)).
		Int("invalid_urls", len(invalidURLs)).
		Dur("duration", time.Since(start)).
		Msg("Generation complete")

	return post, nil
}

// mergeMediaContact back-fills contact fields from the organization
// profile. Missing email anywhere is the pipeline's only hard failure.
func mergeMediaContact(contact *models.MediaContact, org *models.OrganizationInfo) (*models.MediaContact, error) {
	merged := &models.MediaContact{}
	if contact != nil {
		merged.Name = strings.TrimSpace(contact.Name)
		merged.Email = strings.TrimSpace(contact.Email)
		merged.Phone = strings.TrimSpace(contact.Phone)
	}

	if org != nil {
		if merged.Name == "" {
			merged.Name = org.ContactName
		}
		if merged.Email == "" {
			merged.Email = org.ContactEmail
		}
		if merged.Phone == "" {
			merged.Phone = org.ContactPhone
		}
	}
	if merged.Name == "" {
		merged.Name = "Media Relations"
	}
	if merged.Email == "" {
		return nil, ErrMissingContactEmail
	}
	return merged, nil
}

// filterSourceLinks keeps only citations that survive policy, allow-list,
// and the liveness verdict. When no URL went through liveness at all, the
// liveness filter is a no-op.
func (s *Service) filterSourceLinks(links []models.SourceLink, allowList urlcheck.AllowList, validURLs []string) []models.SourceLink {
	validSet := make(map[string]bool, len(validURLs))
	for _, u := range validURLs {
		validSet[u] = true
	}

	var out []models.SourceLink
	for _, l := range links {
		if urlcheck.IsDisallowed(l.URL) {
			continue
		}
		if !allowList.Contains(l.URL) {
			continue
		}
		if len(validSet) > 0 && !validSet[l.URL] {
			continue
		}
		out = append(out, l)
	}
	return out
}

// persistAsync saves the post in the background with its own time box so a
// slow disk or archive never blocks the user-visible response.
func (s *Service) persistAsync(post *models.GeneratedPost) {
	if s.store == nil {
		return
	}
	snapshot := *post
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		if err := s.store.Save(ctx, &snapshot); err != nil {
			logger.Get().Error().Err(err).Str("id", snapshot.ID).Msg("Error saving post to history")
		}
	}()
}

func postTitle(req *models.GenerationRequest) string {
	if req.Category == models.CategoryComments {
		return "Comment reply"
	}
	return fmt.Sprintf("%s: %s", req.Category, req.Topic)
}

func frameworkUsed(req *models.GenerationRequest, detected string) string {
	if req.FrameworkID != "" {
		return req.FrameworkID
	}
	if detected != "" {
		return detected
	}
	return "Auto-detected based on content"
}

func rationale(req *models.GenerationRequest) string {
	if req.Category == models.CategoryComments {
		return "Generated as a platform-ready comment reply."
	}
	return "Generated via the configured completion backend."
}

func uniq(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
