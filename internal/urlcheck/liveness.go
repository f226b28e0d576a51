package urlcheck

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/artflaneur/contentfactory/internal/logger"
)

// Reachability failure reasons, stable across the API surface.
const (
	ReasonNotHTTPURL   = "not_http_url"
	ReasonNotFound     = "not_found"
	ReasonServerError  = "server_error"
	ReasonNotOK        = "not_ok"
	ReasonNetworkError = "network_error"
)

// MaxURLsPerRequest caps how many URLs one validation pass will touch.
const MaxURLsPerRequest = 20

const (
	defaultTimeout = 4500 * time.Millisecond
	userAgent      = "ContentFactoryLinkValidator/1.0"
)

// Outcome is the immutable result of checking one URL.
type Outcome struct {
	URL      string `json:"url"`
	OK       bool   `json:"ok"`
	Status   *int   `json:"status"`
	FinalURL string `json:"finalUrl,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Validator performs liveness checks over HTTP. Checks are strictly
// sequential: a parallel burst against arbitrary third-party hosts trips
// abuse detection and rate limits, and one generation never carries enough
// URLs for latency to matter.
type Validator struct {
	client *resty.Client
}

// NewValidator builds a validator with the standard per-URL timeout.
func NewValidator() *Validator {
	return NewValidatorWithTimeout(defaultTimeout)
}

// NewValidatorWithTimeout builds a validator with a custom per-URL timeout.
func NewValidatorWithTimeout(timeout time.Duration) *Validator {
	return &Validator{
		client: resty.New().
			SetTimeout(timeout).
			SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
			SetHeader("User-Agent", userAgent),
	}
}

// Normalize trims, drops empties, deduplicates preserving order, and caps
// the candidate list at MaxURLsPerRequest.
func Normalize(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	var out []string
	for _, raw := range urls {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
		if len(out) == MaxURLsPerRequest {
			break
		}
	}
	return out
}

// ValidateAll checks each URL in order and returns one outcome per URL.
func (v *Validator) ValidateAll(ctx context.Context, urls []string) []Outcome {
	outcomes := make([]Outcome, 0, len(urls))
	for _, u := range urls {
		outcomes = append(outcomes, v.validateOne(ctx, u))
	}
	return outcomes
}

// Partition splits outcomes into valid and invalid URL lists.
func Partition(outcomes []Outcome) (valid, invalid []string) {
	for _, o := range outcomes {
		if o.OK {
			valid = append(valid, o.URL)
		} else {
			invalid = append(invalid, o.URL)
		}
	}
	return valid, invalid
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// validateOne tries HEAD first; origins answering 405/501 get a ranged GET
// under the same timeout budget. Classification:
//
//	2xx/3xx          ok
//	401, 403         ok (real but gated resource, still a valid citation)
//	404, 410         not_found
//	>= 500           server_error
//	other statuses   not_ok
//	transport error  network_error
func (v *Validator) validateOne(ctx context.Context, rawURL string) Outcome {
	if !isHTTPURL(rawURL) {
		return Outcome{URL: rawURL, OK: false, Reason: ReasonNotHTTPURL}
	}

	resp, err := v.client.R().SetContext(ctx).Head(rawURL)
	if err == nil && (resp.StatusCode() == 405 || resp.StatusCode() == 501) {
		resp, err = v.rangedGet(ctx, rawURL)
	} else if err != nil {
		resp, err = v.rangedGet(ctx, rawURL)
	}

	if err != nil {
		logger.Get().Debug().Str("url", rawURL).Err(err).Msg("URL liveness check failed")
		return Outcome{URL: rawURL, OK: false, Reason: ReasonNetworkError}
	}

	status := resp.StatusCode()
	finalURL := ""
	if resp.RawResponse != nil && resp.RawResponse.Request != nil && resp.RawResponse.Request.URL != nil {
		finalURL = resp.RawResponse.Request.URL.String()
	}

	ok := (status >= 200 && status < 400) || status == 401 || status == 403
	if ok {
		return Outcome{URL: rawURL, OK: true, Status: &status, FinalURL: finalURL}
	}

	reason := ReasonNotOK
	switch {
	case status == 404 || status == 410:
		reason = ReasonNotFound
	case status >= 500:
		reason = ReasonServerError
	}
	return Outcome{URL: rawURL, OK: false, Status: &status, FinalURL: finalURL, Reason: reason}
}

func (v *Validator) rangedGet(ctx context.Context, rawURL string) (*resty.Response, error) {
	return v.client.R().
		SetContext(ctx).
		SetHeader("Range", "bytes=0-2048").
		Get(rawURL)
}
