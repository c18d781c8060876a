package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Highlighter renders code samples as highlighted HTML, one chroma style
// per theme.
type Highlighter struct {
	dark  goldmark.Markdown
	light goldmark.Markdown
}

// NewHighlighter creates a Highlighter with the given chroma style names.
func NewHighlighter(darkStyle, lightStyle string) *Highlighter {
	return &Highlighter{
		dark:  goldmark.New(goldmark.WithExtensions(highlighting.NewHighlighting(highlighting.WithStyle(darkStyle)))),
		light: goldmark.New(goldmark.WithExtensions(highlighting.NewHighlighting(highlighting.WithStyle(lightStyle)))),
	}
}

// Code highlights code written in language.
func (h *Highlighter) Code(code, language string, dark bool) (template.HTML, error) {
	md := h.light
	if dark {
		md = h.dark
	}

	// A fence longer than any backtick run inside the code keeps it intact.
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	src := fence + language + "\n" + code + "\n" + fence + "\n"

	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s: %w", language, err)
	}
	return template.HTML(buf.String()), nil
}

var inlineMD = goldmark.New()

// Inline renders a one-paragraph markdown note without its <p> wrapper.
func Inline(note string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := inlineMD.Convert([]byte(note), &buf); err != nil {
		return "", fmt.Errorf("rendering note: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out), nil
}
