// Package share renders stored posts for share previews.
package share

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/artflaneur/contentfactory/internal/models"
)

// RenderHTML converts a post's markdown content into HTML for the share
// preview card.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 680px; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
h1 { font-size: 1.4rem; }
section { border: 1px solid #e0e0e0; border-radius: 8px; padding: 1rem; margin: 1rem 0; }
section > h2 { font-size: 0.85rem; text-transform: uppercase; letter-spacing: 0.05em; color: #666; margin-top: 0; }
.sources a { display: block; margin: 0.25rem 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}
<section>
<h2>{{.Name}}</h2>
{{.HTML}}
</section>
{{end}}
{{if .Sources}}
<section class="sources">
<h2>Sources</h2>
{{range .Sources}}<a href="{{.URL}}">{{.Title}}</a>
{{end}}
</section>
{{end}}
</body>
</html>
`))

type previewSection struct {
	Name string
	HTML template.HTML
}

type previewData struct {
	Title    string
	Sections []previewSection
	Sources  []models.SourceLink
}

// RenderPost builds a self-contained HTML preview page for a stored post,
// one card per non-empty platform variant.
func RenderPost(post *models.GeneratedPost) (string, error) {
	variants := []struct {
		name string
		body string
	}{
		{"LinkedIn", post.Content},
		{"X / Threads", post.ShortContent},
		{"Telegram", post.TelegramContent},
		{"Instagram", post.InstagramContent},
		{"YouTube", post.YoutubeContent},
	}

	data := previewData{
		Title:   post.Title,
		Sources: post.SourceLinks,
	}
	for _, v := range variants {
		if v.body == "" {
			continue
		}
		html, err := RenderHTML(v.body)
		if err != nil {
			return "", err
		}
		data.Sections = append(data.Sections, previewSection{
			Name: v.name,
			HTML: template.HTML(html),
		})
	}

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}
