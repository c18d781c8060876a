// Package tooltip renders a feedback overlay anchored to a piece of
// already-rendered HTML.
package tooltip

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// Position says on which side of the anchor the overlay is drawn.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
)

// ErrUnknownPosition is returned for a position outside the fixed set.
var ErrUnknownPosition = errors.New("tooltip: unknown position")

// Placement is the pair of classes that put the overlay beside the anchor
// and the arrow on the overlay edge facing the anchor.
type Placement struct {
	Overlay string
	Arrow   string
}

var placements = map[Position]Placement{
	Top:    {Overlay: "tooltip tooltip-top", Arrow: "tooltip-arrow tooltip-arrow-down"},
	Bottom: {Overlay: "tooltip tooltip-bottom", Arrow: "tooltip-arrow tooltip-arrow-up"},
	Left:   {Overlay: "tooltip tooltip-left", Arrow: "tooltip-arrow tooltip-arrow-right"},
	Right:  {Overlay: "tooltip tooltip-right", Arrow: "tooltip-arrow tooltip-arrow-left"},
}

// ParsePosition maps a position name to a Position. The empty string
// selects Top.
func ParsePosition(s string) (Position, error) {
	if s == "" {
		return Top, nil
	}
	p := Position(s)
	if _, ok := placements[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return p, nil
}

// PlacementFor returns the classes used for p.
func PlacementFor(p Position) (Placement, error) {
	pl, ok := placements[p]
	if !ok {
		return Placement{}, fmt.Errorf("%w: %q", ErrUnknownPosition, string(p))
	}
	return pl, nil
}

// Tooltip describes one overlay. The zero Position means Top.
type Tooltip struct {
	Message  string
	Visible  bool
	Position Position
	// Class is appended to the anchor wrapper when the overlay is shown.
	Class string
}

var overlayTmpl = template.Must(template.New("tooltip").Parse(
	`<div class="tooltip-anchor{{with .Class}} {{.}}{{end}}">{{.Child}}` +
		`<div class="{{.Overlay}}" role="status">{{.Message}}<div class="{{.Arrow}}"></div></div></div>`))

// Render wraps child with the overlay. When the tooltip is not visible the
// child is returned unchanged and no overlay markup is produced.
func (t Tooltip) Render(child template.HTML) (template.HTML, error) {
	pos := t.Position
	if pos == "" {
		pos = Top
	}
	pl, err := PlacementFor(pos)
	if err != nil {
		return "", err
	}
	if !t.Visible {
		return child, nil
	}

	var buf bytes.Buffer
	err = overlayTmpl.Execute(&buf, struct {
		Child   template.HTML
		Message string
		Class   string
		Overlay string
		Arrow   string
	}{child, t.Message, t.Class, pl.Overlay, pl.Arrow})
	if err != nil {
		return "", fmt.Errorf("rendering tooltip: %w", err)
	}
	return template.HTML(buf.String()), nil
}
