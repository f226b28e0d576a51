package parse

import "strings"

// Result holds everything recovered from one completion: the social
// sections, the raw press-release fields (if the completion carried any),
// and whether the strict delimiter pass produced the split.
type Result struct {
	LinkedIn  string
	Short     string
	Telegram  string
	Instagram string
	YouTube   string
	EmailRaw  string
	HooksRaw  string

	// Press holds raw press-release segment bodies keyed by canonical name.
	Press map[string]string

	ParsedByDelimiters bool
}

func (r *Result) assign(name, body string) {
	if body == "" {
		return
	}
	switch name {
	case SectionShort:
		r.Short = body
	case SectionTelegram:
		r.Telegram = body
	case SectionInstagram:
		r.Instagram = body
	case SectionYouTube:
		r.YouTube = body
	case SectionEmail:
		r.EmailRaw = body
	case SectionHooks:
		r.HooksRaw = body
	case SectionHeadline, SectionSubheadline, SectionReleaseDate,
		SectionBody, SectionBoilerplate, SectionMediaContact:
		if r.Press == nil {
			r.Press = make(map[string]string)
		}
		r.Press[name] = body
	}
}

// looksUnsplit detects the failure mode where the delimiter split succeeded
// syntactically but the whole response still sits inside the LinkedIn blob
// with literal section tokens embedded. Syntactic success of the split is
// not semantic success.
func (r *Result) looksUnsplit() bool {
	hasAnyOther := r.Short != "" || r.Telegram != "" || r.Instagram != "" || r.YouTube != ""
	return !hasAnyOther && socialMarkerRe.MatchString(r.LinkedIn)
}

// applyHeadingFallback re-scans the text with the loose heading parser and
// merges any non-empty bucket over the current result. Fields the delimiter
// pass populated are never erased by an empty fallback bucket.
func (r *Result) applyHeadingFallback(text string) {
	buckets, hasAny := bucketByHeadings(text, socialHeadingRe, CanonicalizeSection, SectionLinkedIn)
	if !hasAny {
		return
	}

	if b := buckets[SectionLinkedIn]; b != "" {
		r.LinkedIn = b
	}
	if b := buckets[SectionShort]; b != "" {
		r.Short = b
	}
	if b := buckets[SectionTelegram]; b != "" {
		r.Telegram = b
	}
	if b := buckets[SectionInstagram]; b != "" {
		r.Instagram = b
	}
	if b := buckets[SectionYouTube]; b != "" {
		r.YouTube = b
	}
	if b := buckets[SectionEmail]; b != "" {
		r.EmailRaw = b
	}
	if b := buckets[SectionHooks]; b != "" {
		r.HooksRaw = b
	}
}

// Sections recovers the named sections of a raw completion.
//
// Pass 1 normalizes decorated headings into strict delimiters and splits on
// them; the pre-delimiter preamble becomes the LinkedIn content. When the
// split yields nothing, or yields a result that still looks unsplit, pass 2
// re-buckets the normalized text line by line using the loose heading
// recognizer. If no structure is recoverable at all the entire completion is
// returned as LinkedIn content: a usable partial result always beats failing
// the generation.
func Sections(raw string) Result {
	normalized := NormalizeLooseHeadings(raw)
	preamble, segments := SplitDelimited(normalized)

	res := Result{
		LinkedIn:           strings.TrimSpace(preamble),
		ParsedByDelimiters: len(segments) > 0,
	}

	if res.ParsedByDelimiters {
		for _, seg := range segments {
			res.assign(seg.Name, seg.Body)
		}
	} else {
		res.applyHeadingFallback(normalized)
	}

	if res.looksUnsplit() {
		res.applyHeadingFallback(normalized)
	}

	return res
}

// PressFallback re-buckets a completion against the press-release heading
// set. The pipeline calls this for press-release requests whose delimiter
// pass produced no press fields even though press tokens appear in the text.
func PressFallback(raw string) map[string]string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	buckets, hasAny := bucketByHeadings(normalized, pressHeadingRe, CanonicalizePressSection, SectionBody)
	if !hasAny {
		return nil
	}
	out := make(map[string]string, len(buckets))
	for name, body := range buckets {
		if body != "" {
			out[name] = body
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// LooksLikePress reports whether a completion still carries literal
// press-release tokens, which means the press fallback is worth running.
func LooksLikePress(text string) bool {
	return pressMarkerRe.MatchString(text)
}
