package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/textflux/textflux-site/internal/content"
)

// Row is what a row template receives: the record plus its key and
// position in the collection.
type Row[T any] struct {
	Key   string
	Index int
	Item  T
}

// RenderCollection renders one row per item with tmpl, in collection
// order. Every row is keyed by key(i, item); keys must be unique.
func RenderCollection[T any](items []T, key func(int, T) string, tmpl *template.Template) (template.HTML, error) {
	var buf bytes.Buffer
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		k := key(i, item)
		if seen[k] {
			return "", fmt.Errorf("rendering %s: duplicate key %q at %d", tmpl.Name(), k, i)
		}
		seen[k] = true
		if err := tmpl.Execute(&buf, Row[T]{Key: k, Index: i, Item: item}); err != nil {
			return "", fmt.Errorf("rendering %s row %d: %w", tmpl.Name(), i, err)
		}
	}
	return template.HTML(buf.String()), nil
}

func cardKey(_ int, c content.ContentItem) string      { return c.Title }
func propKey(_ int, p content.PropSpec) string         { return p.Prop }
func shortcutKey(_ int, s content.ShortcutSpec) string { return s.Action }
func positionKey[T any](i int, _ T) string             { return strconv.Itoa(i) }

// sectionHTML is the state-independent part of the page, rendered once.
type sectionHTML struct {
	Benefits        template.HTML
	Features        template.HTML
	Props           template.HTML
	Shortcuts       template.HTML
	Changelog       template.HTML
	Customization   []template.HTML
	Troubleshooting []template.HTML
}

func renderSections(reg *content.Registry, t *template.Template, inline func(string) (template.HTML, error)) (sectionHTML, error) {
	var s sectionHTML
	var err error

	if s.Benefits, err = RenderCollection(reg.Benefits, cardKey, t.Lookup("card")); err != nil {
		return s, err
	}
	if s.Features, err = RenderCollection(reg.Features, cardKey, t.Lookup("card")); err != nil {
		return s, err
	}
	if s.Props, err = RenderCollection(reg.Props, propKey, t.Lookup("prop-row")); err != nil {
		return s, err
	}
	if s.Shortcuts, err = RenderCollection(reg.Shortcuts, shortcutKey, t.Lookup("shortcut-row")); err != nil {
		return s, err
	}
	if s.Changelog, err = RenderCollection(reg.Changelog, positionKey[string], t.Lookup("changelog-item")); err != nil {
		return s, err
	}
	for _, note := range reg.Customization {
		h, err := inline(note)
		if err != nil {
			return s, err
		}
		s.Customization = append(s.Customization, h)
	}
	for _, note := range reg.Troubleshooting {
		h, err := inline(note)
		if err != nil {
			return s, err
		}
		s.Troubleshooting = append(s.Troubleshooting, h)
	}
	return s, nil
}
