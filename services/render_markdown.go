package services

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// RenderMarkdown converts case-study Markdown source to HTML.
func RenderMarkdown(source string) (string, error) {
	text := strings.TrimSpace(source)
	if text == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
