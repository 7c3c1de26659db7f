package service

import (
	"bytes"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

var ErrContentFormatInvalid = errors.New("content format must be html or markdown")

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	contentPolicy = newContentPolicy()
)

func newContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption", "u", "s", "mark")
	policy.AllowAttrs("loading").Matching(bluemonday.SpaceSeparatedTokens).OnElements("img")
	return policy
}

// renderContent converts post content to stored HTML. Markdown is rendered
// first; both formats are sanitised so stored content is safe to embed.
func renderContent(content, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ContentFormatHTML:
		return contentPolicy.Sanitize(content), nil
	case ContentFormatMarkdown:
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
			return "", err
		}
		return string(contentPolicy.SanitizeBytes(buf.Bytes())), nil
	default:
		return "", ErrContentFormatInvalid
	}
}
