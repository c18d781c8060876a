// Package content holds the compiled-in records the Textflux page is
// rendered from: features, benefits, props, shortcuts, changelog and the
// surrounding page copy.
package content

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryYAML []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a copy of the built-in registry. The embedded data is
// decoded and validated once; a malformed registry is a build defect and
// panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Parse(registryYAML)
		if err != nil {
			panic(fmt.Sprintf("content: built-in registry is invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry.Clone()
}

// Parse decodes and validates a registry document.
func Parse(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding registry: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the uniqueness invariants every collection relies on for
// keying rendered rows.
func (r *Registry) Validate() error {
	if strings.TrimSpace(r.InstallCommand) == "" {
		return fmt.Errorf("install_command is required")
	}
	if err := uniqueKeys("features", r.Features, func(c ContentItem) string { return c.Title }); err != nil {
		return err
	}
	if err := uniqueKeys("benefits", r.Benefits, func(c ContentItem) string { return c.Title }); err != nil {
		return err
	}
	if err := uniqueKeys("props", r.Props, func(p PropSpec) string { return p.Prop }); err != nil {
		return err
	}
	if err := uniqueKeys("shortcuts", r.Shortcuts, func(s ShortcutSpec) string { return s.Action }); err != nil {
		return err
	}
	for i, l := range r.Nav {
		if !strings.HasPrefix(l.Anchor, "#") {
			return fmt.Errorf("nav[%d]: anchor %q must start with #", i, l.Anchor)
		}
	}
	return nil
}

func uniqueKeys[T any](collection string, items []T, key func(T) string) error {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		k := key(item)
		if k == "" {
			return fmt.Errorf("%s[%d]: key is empty", collection, i)
		}
		if seen[k] {
			return fmt.Errorf("%s[%d]: duplicate key %q", collection, i, k)
		}
		seen[k] = true
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared records.
func (r *Registry) Clone() *Registry {
	c := *r
	c.Nav = slices.Clone(r.Nav)
	c.Badges = slices.Clone(r.Badges)
	c.Stats = slices.Clone(r.Stats)
	c.Benefits = slices.Clone(r.Benefits)
	c.Features = slices.Clone(r.Features)
	c.Props = slices.Clone(r.Props)
	c.Shortcuts = slices.Clone(r.Shortcuts)
	c.Customization = slices.Clone(r.Customization)
	c.Troubleshooting = slices.Clone(r.Troubleshooting)
	c.Changelog = slices.Clone(r.Changelog)
	c.Footer.Links = slices.Clone(r.Footer.Links)
	return &c
}

// Prop looks up a prop by name.
func (r *Registry) Prop(name string) (PropSpec, bool) {
	for _, p := range r.Props {
		if p.Prop == name {
			return p, true
		}
	}
	return PropSpec{}, false
}

// DesktopNav returns the nav links shown in the desktop header.
func (r *Registry) DesktopNav() []NavLink {
	var links []NavLink
	for _, l := range r.Nav {
		if !l.MobileOnly {
			links = append(links, l)
		}
	}
	return links
}
