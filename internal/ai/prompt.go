package ai

import (
	"fmt"
	"strings"

	"github.com/artflaneur/contentfactory/internal/models"
	"github.com/artflaneur/contentfactory/internal/normalize"
)

// SystemContext is the ghostwriter persona shared by every generation.
const SystemContext = `You are an expert LinkedIn ghostwriter for the Cultural Systems & Art Tech sector (gallery operations, festival management, art tech).
Your tone of voice is professional yet raw, authoritative but vulnerable, data-driven but human-centric. You avoid corporate jargon. You speak truth to power in the art world.
You structure posts using named Frameworks appropriate to the requested category and you always honor the requested output format exactly.`

// antiAIRules are format rules that suppress the telltale patterns of
// machine-written copy.
const antiAIRules = `STYLE RULES (STRICT):
- Do NOT use the em dash character; use '-' or '--' instead.
- Do NOT use curly quotes; use straight quotes.
- Avoid stock AI phrasing ("delve", "in today's fast-paced world", "game-changer", "unlock", "elevate").
- No tricolon clichés; vary sentence rhythm like a human author would.`

// delimiterScaffold is the exact response structure the parser expects.
const delimiterScaffold = `Structure your response exactly like this (ensure you include the delimiters):

[LinkedIn Post Content]

---SHORT_VERSION---

[Short Version Content]

---TELEGRAM_VERSION---

[Telegram Content]

---INSTAGRAM_VERSION---

[Instagram Content]

---YOUTUBE_VERSION---

[YouTube Content]

---EMAIL_VERSION---

Subject: [Email Subject]
Greeting: [Email greeting line]
Body:
[2-4 paragraphs or bullet points]
Signature:
[Sender name / title]

---HOOKS---

1. [Hook Option 1]
2. [Hook Option 2]
3. [Hook Option 3]
4. [Hook Option 4]
5. [Hook Option 5]`

// BuildPrompt renders the system and user prompts for a generation request.
func BuildPrompt(req *models.GenerationRequest) (system, user string) {
	if req.Category == models.CategoryComments {
		return SystemContext, buildCommentPrompt(req)
	}
	return SystemContext, buildPostPrompt(req)
}

func authorContextBlock(req *models.GenerationRequest) string {
	uc := req.UserContext
	industry, role, country, target := "Art & Culture", "Thought Leader", "Global", req.Audience
	city := ""
	if uc != nil {
		if uc.Industry != "" {
			industry = uc.Industry
		}
		if uc.Role != "" {
			role = uc.Role
		}
		if uc.Country != "" {
			country = uc.Country
		}
		if uc.City != "" {
			city = uc.City + ", "
		}
		if uc.TargetAudience != "" {
			target = uc.TargetAudience
		}
	}
	return fmt.Sprintf(`AUTHOR CONTEXT:
- Industry: %s
- Role: %s
- Location: %s%s
- Target Reader Profile: %s`, industry, role, city, country, target)
}

func languageBlock(req *models.GenerationRequest) string {
	lang := req.OutputLanguage()
	return fmt.Sprintf(`OUTPUT LANGUAGE: %s
Write the entire response in %s. Do NOT translate section delimiters (keep ---SHORT_VERSION---, ---TELEGRAM_VERSION---, etc. exactly as written).`, lang, lang)
}

func charLimitsBlock(req *models.GenerationRequest) string {
	var lines []string
	for _, p := range req.EnforcedPlatforms() {
		lines = append(lines, fmt.Sprintf("%s: <= %d chars", strings.ToUpper(string(p)), normalize.PlatformCharLimits[p]))
	}
	return "CHARACTER LIMITS (count every character, including spaces):\n" + strings.Join(lines, "\n")
}

// allowedSources returns the capped, trimmed allow-list, or nil when news
// grounding is off or no sources were supplied.
func allowedSources(req *models.GenerationRequest) []string {
	if !req.IncludeNews || len(req.SourceURLs) == 0 {
		return nil
	}
	urls := req.SourceURLs
	if len(urls) > 20 {
		urls = urls[:20]
	}
	var out []string
	for _, u := range urls {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func sourcesBlocks(req *models.GenerationRequest) string {
	sources := allowedSources(req)
	if !req.IncludeNews {
		return ""
	}

	if len(sources) == 0 {
		return `Do NOT add external facts, stats, or sources. Do NOT include any links. (No sources were provided.)

FACT-CHECKING REQUIREMENTS:
- News enrichment disabled automatically because no verified sources were supplied.
- Do NOT invent dates, numbers, quotes, or external references.`
	}

	var numbered []string
	for i, u := range sources {
		numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, u))
	}

	return fmt.Sprintf(`You MUST use ONLY the ALLOWED_SOURCES below for any factual claims. For every factual claim, include a Markdown link to ONE of the ALLOWED_SOURCES. NEVER invent, guess, or modify URLs. If you cannot support a claim with ALLOWED_SOURCES, do not include that claim.

ALLOWED_SOURCES (you may ONLY cite these exact URLs):
%s

FACT-CHECKING REQUIREMENTS:
- Treat ALLOWED_SOURCES as the only ground truth. No other data, names, or numbers are allowed.
- Every statistic, quote, or news reference MUST be traceable to one of the ALLOWED_SOURCES.
- Cite inline using Markdown links immediately after the sentence they support.
- If the sources do not confirm a claim, explicitly say so or omit the claim entirely.`, strings.Join(numbered, "\n"))
}

const institutionalVoiceRule = `CRITICAL VOICE REQUIREMENT FOR OFFICIAL COMMUNICATIONS:
- NEVER use first-person singular pronouns (I, my, me / я, моя, меня / je, mon, ma / ich, mein, mir)
- Write from the institutional perspective: use "we" or the organization name
- Represent the gallery/museum/agency as an entity, not an individual
- Professional, institutional tone throughout`

func pressReleaseInstructions(req *models.GenerationRequest) string {
	var orgBlock string
	if org := req.OrganizationInfo; org != nil {
		var b strings.Builder
		b.WriteString("ORGANIZATION INFORMATION (Use this data in the press release):\n")
		fmt.Fprintf(&b, "- Name: %s\n", org.Name)
		fmt.Fprintf(&b, "- Location: %s, %s\n", org.City, org.Country)
		if org.Description != "" {
			fmt.Fprintf(&b, "- About (Boilerplate): %s\n", org.Description)
		}
		if org.Website != "" {
			fmt.Fprintf(&b, "- Website: %s\n", org.Website)
		}
		if org.ContactName != "" {
			fmt.Fprintf(&b, "- Media Contact Name: %s\n", org.ContactName)
		}
		if org.ContactEmail != "" {
			fmt.Fprintf(&b, "- Media Contact Email: %s\n", org.ContactEmail)
		}
		if org.ContactPhone != "" {
			fmt.Fprintf(&b, "- Media Contact Phone: %s\n", org.ContactPhone)
		}
		orgBlock = b.String()
	} else {
		orgBlock = `ORGANIZATION INFORMATION:
No saved organization data available. Generate appropriate placeholders for the organization name, location, boilerplate, and media contact details.`
	}

	return fmt.Sprintf(`PRESS RELEASE FORMAT (STRICT):

%s

1. Create a professional press release following standard gallery/museum format.
2. Structure:
   - HEADLINE: compelling, newsworthy, 10-15 words
   - SUBHEADLINE: supporting detail, optional
   - RELEASE INFO: "[City, Country] - [Date]" - use the organization location above
   - BODY: 3-5 paragraphs, inverted pyramid, at least one quote
   - BOILERPLATE: "About [Organization]" from the organization info above
   - MEDIA CONTACT: use the contact details above
3. Third person throughout, AP style, no hyperbole.
4. Output format, using delimiters to separate sections:

---HEADLINE---
[Headline text]

---SUBHEADLINE---
[Subheadline text or leave empty]

---RELEASE_DATE---
[City, Country] - [Date] OR "FOR IMMEDIATE RELEASE"

---BODY---
[Full press release body with paragraphs]

---BOILERPLATE---
About [Organization]:
[Organization description]

---MEDIA_CONTACT---
Name: [Contact name]
Email: [Email address]
Phone: [Optional phone]`, orgBlock)
}

func frameworkDirective(req *models.GenerationRequest) string {
	if req.FrameworkID != "" {
		return fmt.Sprintf("Use framework %q exactly as defined.", req.FrameworkID)
	}
	return fmt.Sprintf(`Select the most relevant framework inside %s and mention it explicitly in the first line (e.g., "Framework Used: ...").`, req.Category)
}

func buildPostPrompt(req *models.GenerationRequest) string {
	specific := `1. Open with a strong hook.
2. Use short paragraphs with clean breaks for readability.
3. Share tangible examples relevant to ` + req.Audience + `.
4. Close with a question or CTA that inspires responses.
5. Output valid Markdown only.`
	if req.Category == models.CategoryPressReleases {
		specific = pressReleaseInstructions(req)
	}

	voiceRule := ""
	if req.Category.IsOfficial() {
		voiceRule = institutionalVoiceRule
	}

	blocks := []string{
		authorContextBlock(req),
		languageBlock(req),
		fmt.Sprintf("TARGET AUDIENCE: %s\nCATEGORY: %s\nTOPIC: %s\nGOAL: %s\nTONE: %s",
			req.Audience, req.Category, req.Topic, req.Goal, req.Tone),
		frameworkDirective(req),
		sourcesBlocks(req),
		voiceRule,
		`Write a high-impact LinkedIn post adapted to the Author Context above.
ALSO, generate a short version (max 280 chars) for X/Threads.
ALSO, generate a Telegram version (use **bold** for emphasis, [text](url) for hidden links).
ALSO, generate an Instagram Caption (engaging, more emojis, "link in bio", NO links in text).
ALSO, generate a YouTube Script Outline (3-5 key bullet points). Inside YOUTUBE_VERSION do NOT use Markdown ** or * for emphasis.
ALSO, generate an executive-grade email/collector letter template with Subject, Greeting, Body (2-4 short paragraphs or bullets), and Signature. Formal, discreet but clear CTA, no emojis.
ALSO, generate 5 alternative "Hooks" (opening lines) for the LinkedIn post.`,
		specific,
		fmt.Sprintf("IMPORTANT:\n1. Adopt the requested TONE (%s).\n2. Ensure the Call to Action matches the GOAL (%s).\n3. Separate the sections with the specific delimiters.", req.Tone, req.Goal),
		charLimitsBlock(req),
		delimiterScaffold,
		antiAIRules,
		"CRITICAL: Do NOT fabricate facts, statistics, or quotes. Do NOT cite sources that do not exist. If you are unsure of a fact, do not include it. STRICT BAN ON HALLUCINATIONS.",
	}

	return joinBlocks(blocks)
}

func buildCommentPrompt(req *models.GenerationRequest) string {
	blocks := []string{
		authorContextBlock(req),
		languageBlock(req),
		`TASK:
Write a comment reply to the POST TEXT below. This is a *comment*, not a long-form post.
Make it feel human: specific, punchy, high-signal. No fluff.`,
		fmt.Sprintf("TARGET AUDIENCE: %s\nGOAL: %s\nTONE: %s\nCATEGORY: Comments", req.Audience, req.Goal, req.Tone),
		"POST TEXT TO REPLY TO:\n" + req.Topic,
		`OUTPUT RULES:
- Output valid Markdown only.
- Do NOT include links.
- Respect character limits for the platforms the user selected.`,
		charLimitsBlock(req),
		`Structure your response exactly like this (ensure you include the delimiters):

[LinkedIn Comment]

---SHORT_VERSION---

[X/Threads Comment]

---TELEGRAM_VERSION---

[Telegram Comment]

---INSTAGRAM_VERSION---

[Instagram Comment]

---YOUTUBE_VERSION---

[YouTube Comment]`,
		antiAIRules,
		"CRITICAL: Do NOT fabricate facts, statistics, or quotes. If the post mentions a fact you can't verify, respond without adding new facts.",
	}

	return joinBlocks(blocks)
}

func joinBlocks(blocks []string) string {
	var nonEmpty []string
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(b))
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}
