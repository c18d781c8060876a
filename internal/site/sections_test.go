package site

import (
	"html/template"
	"strings"
	"testing"

	"github.com/textflux/textflux-site/internal/content"
)

var rowTmpl = template.Must(template.New("row").Parse(`<li data-key="{{.Key}}">{{.Index}}:{{.Item.Title}}</li>`))

func TestRenderCollectionOrder(t *testing.T) {
	items := []content.ContentItem{
		{Title: "Alpha"},
		{Title: "Beta"},
		{Title: "Gamma"},
	}
	html, err := RenderCollection(items, cardKey, rowTmpl)
	if err != nil {
		t.Fatal(err)
	}
	want := `<li data-key="Alpha">0:Alpha</li><li data-key="Beta">1:Beta</li><li data-key="Gamma">2:Gamma</li>`
	if string(html) != want {
		t.Errorf("got %s\nwant %s", html, want)
	}
}

func TestRenderCollectionEmpty(t *testing.T) {
	html, err := RenderCollection([]content.ContentItem(nil), cardKey, rowTmpl)
	if err != nil {
		t.Fatal(err)
	}
	if html != "" {
		t.Errorf("empty collection rendered %q", html)
	}
}

func TestRenderCollectionDuplicateKey(t *testing.T) {
	items := []content.ContentItem{{Title: "Same"}, {Title: "Same"}}
	if _, err := RenderCollection(items, cardKey, rowTmpl); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestRenderCollectionPositionKey(t *testing.T) {
	tmpl := template.Must(template.New("s").Parse(`[{{.Key}}={{.Item}}]`))
	html, err := RenderCollection([]string{"same", "same"}, positionKey[string], tmpl)
	if err != nil {
		t.Fatal(err)
	}
	if string(html) != "[0=same][1=same]" {
		t.Errorf("got %s", html)
	}
}

func TestRenderCollectionEscapes(t *testing.T) {
	items := []content.ContentItem{{Title: "<script>"}}
	html, err := RenderCollection(items, cardKey, rowTmpl)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Errorf("record text must be escaped: %s", html)
	}
}

func TestRenderSections(t *testing.T) {
	tmpl, err := parseTemplates()
	if err != nil {
		t.Fatal(err)
	}
	reg := content.Default()
	s, err := renderSections(reg, tmpl, Inline)
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(string(s.Props), `class="table-row"`); got != len(reg.Props) {
		t.Errorf("prop rows = %d, want %d", got, len(reg.Props))
	}
	if got := strings.Count(string(s.Shortcuts), `class="table-row"`); got != len(reg.Shortcuts) {
		t.Errorf("shortcut rows = %d, want %d", got, len(reg.Shortcuts))
	}
	if got := strings.Count(string(s.Changelog), "<li"); got != len(reg.Changelog) {
		t.Errorf("changelog items = %d, want %d", got, len(reg.Changelog))
	}
	if len(s.Customization) != len(reg.Customization) || len(s.Troubleshooting) != len(reg.Troubleshooting) {
		t.Error("every note should be rendered")
	}

	first := strings.Index(string(s.Features), "Text Formatting")
	last := strings.Index(string(s.Features), "Media Fullscreen")
	if first < 0 || last < 0 || first > last {
		t.Error("features should render in registry order")
	}
}

func TestRenderSectionsOmitsEmptyIcon(t *testing.T) {
	tmpl, err := parseTemplates()
	if err != nil {
		t.Fatal(err)
	}
	reg := content.Default()
	reg.Benefits = []content.ContentItem{{Title: "Plain", Desc: "no icon"}}
	s, err := renderSections(reg, tmpl, Inline)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(s.Benefits), "iconify") {
		t.Errorf("card without icon should not render an icon: %s", s.Benefits)
	}
}

func TestInline(t *testing.T) {
	html, err := Inline("Use `tf-` prefixed classes")
	if err != nil {
		t.Fatal(err)
	}
	want := "Use <code>tf-</code> prefixed classes"
	if string(html) != want {
		t.Errorf("Inline = %q, want %q", html, want)
	}
}

func TestHighlighterFence(t *testing.T) {
	h := NewHighlighter("monokai", "github")
	html, err := h.Code("const s = ```inner```", "js", true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "inner") {
		t.Errorf("code containing backticks should survive highlighting: %s", html)
	}
}

func TestBuildNav(t *testing.T) {
	desktop, mobile := buildNav([]content.NavLink{
		{Label: "features", Anchor: "#features"},
		{Label: "react native", Anchor: "#react-native", MobileOnly: true},
	})
	if len(desktop) != 1 || desktop[0].Label != "Features" {
		t.Errorf("desktop = %+v", desktop)
	}
	if len(mobile) != 2 || mobile[1].Label != "React Native" {
		t.Errorf("mobile = %+v", mobile)
	}
}
