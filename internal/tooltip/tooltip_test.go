package tooltip

import (
	"errors"
	"html/template"
	"strings"
	"testing"
)

const child = template.HTML(`<button id="copy">npm install react-textflux</button>`)

func TestRenderHiddenReturnsChildOnly(t *testing.T) {
	for _, pos := range []Position{Top, Bottom, Left, Right, ""} {
		got, err := Tooltip{Message: "Copied!", Visible: false, Position: pos}.Render(child)
		if err != nil {
			t.Fatalf("position %q: %v", pos, err)
		}
		if got != child {
			t.Errorf("position %q: got %q, want the child unchanged", pos, got)
		}
		if strings.Contains(string(got), "tooltip") {
			t.Errorf("position %q: hidden tooltip produced overlay markup", pos)
		}
	}
}

func TestRenderVisiblePlacement(t *testing.T) {
	tests := []struct {
		pos     Position
		overlay string
		arrow   string
	}{
		{Top, "tooltip-top", "tooltip-arrow-down"},
		{Bottom, "tooltip-bottom", "tooltip-arrow-up"},
		{Left, "tooltip-left", "tooltip-arrow-right"},
		{Right, "tooltip-right", "tooltip-arrow-left"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			got, err := Tooltip{Message: "Copied!", Visible: true, Position: tt.pos}.Render(child)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			html := string(got)
			if !strings.Contains(html, string(child)) {
				t.Error("overlay should keep the anchored child")
			}
			if !strings.Contains(html, `class="tooltip `+tt.overlay+`"`) {
				t.Errorf("missing overlay class %q in %s", tt.overlay, html)
			}
			if !strings.Contains(html, `class="tooltip-arrow `+tt.arrow+`"`) {
				t.Errorf("missing arrow class %q in %s", tt.arrow, html)
			}
			if !strings.Contains(html, ">Copied!<") {
				t.Error("overlay should contain the message")
			}
			// The child comes before the overlay so the overlay is positioned
			// relative to it.
			if strings.Index(html, string(child)) > strings.Index(html, `role="status"`) {
				t.Error("child should precede the overlay")
			}
		})
	}
}

func TestRenderDefaultsToTop(t *testing.T) {
	got, err := Tooltip{Message: "hi", Visible: true}.Render(child)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(got), "tooltip-top") {
		t.Errorf("default position should be top: %s", got)
	}
}

func TestRenderEscapesMessage(t *testing.T) {
	got, err := Tooltip{Message: "<b>x</b>", Visible: true}.Render(child)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(got), "<b>x</b>") {
		t.Error("message should be escaped")
	}
}

func TestRenderUnknownPositionFails(t *testing.T) {
	for _, visible := range []bool{true, false} {
		_, err := Tooltip{Message: "x", Visible: visible, Position: "center"}.Render(child)
		if !errors.Is(err, ErrUnknownPosition) {
			t.Errorf("visible=%v: err = %v, want ErrUnknownPosition", visible, err)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"", Top, false},
		{"top", Top, false},
		{"bottom", Bottom, false},
		{"left", Left, false},
		{"right", Right, false},
		{"Top", "", true},
		{"middle", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
