package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/textflux/textflux-site/internal/content"
	"github.com/textflux/textflux-site/internal/session"
	"github.com/textflux/textflux-site/internal/tooltip"
)

// Element ids of the page parts that can be re-rendered on their own.
const (
	FragmentHeader       = "site-header"
	FragmentInstallation = "installation"
	FragmentUsage        = "usage"
)

// CopiedMessage is shown in the tooltip after a successful copy.
const CopiedMessage = "Copied!"

// Options control how the page is rendered.
type Options struct {
	Title          string
	Description    string
	BaseURL        string
	HighlightDark  string
	HighlightLight string
	// TooltipPosition places the copy feedback; empty means top.
	TooltipPosition tooltip.Position
	// Live pages are driven by a server-side session over a websocket;
	// static pages handle gestures in the browser.
	Live bool
}

// Renderer turns the registry and a UIState into HTML.
type Renderer struct {
	reg      *content.Registry
	opts     Options
	tmpl     *template.Template
	hl       *Highlighter
	sections sectionHTML
	desktop  []navView
	mobile   []navView
}

// NewRenderer parses the templates and renders the state-independent
// sections once. A nil registry means content.Default().
func NewRenderer(reg *content.Registry, opts Options) (*Renderer, error) {
	if reg == nil {
		reg = content.Default()
	}
	if opts.TooltipPosition == "" {
		opts.TooltipPosition = tooltip.Top
	}
	if _, err := tooltip.PlacementFor(opts.TooltipPosition); err != nil {
		return nil, err
	}
	if opts.HighlightDark == "" {
		opts.HighlightDark = "monokai"
	}
	if opts.HighlightLight == "" {
		opts.HighlightLight = "github"
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		reg:  reg,
		opts: opts,
		tmpl: tmpl,
		hl:   NewHighlighter(opts.HighlightDark, opts.HighlightLight),
	}
	r.desktop, r.mobile = buildNav(reg.Nav)
	if r.sections, err = renderSections(reg, tmpl, Inline); err != nil {
		return nil, err
	}
	return r, nil
}

// Registry returns the registry the page is rendered from.
func (r *Renderer) Registry() *content.Registry { return r.reg }

func parseTemplates() (*template.Template, error) {
	t := template.New("textflux")
	for name, src := range map[string]string{
		"page":           pageTemplate,
		"header":         headerTemplate,
		"installation":   installationTemplate,
		"copy-control":   copyControlTemplate,
		"usage":          usageTemplate,
		"card":           cardTemplate,
		"prop-row":       propRowTemplate,
		"shortcut-row":   shortcutRowTemplate,
		"changelog-item": changelogItemTemplate,
	} {
		if _, err := t.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
	}
	return t, nil
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

type headerView struct {
	Product  string
	Desktop  []navView
	Mobile   []navView
	MenuOpen bool
	Live     bool
}

// Header renders the site header, including the mobile menu. Live pages
// only contain the mobile menu while it is open; static pages carry it
// hidden so the browser can reveal it.
func (r *Renderer) Header(st session.UIState) (template.HTML, error) {
	return r.exec("header", headerView{
		Product:  r.reg.Product,
		Desktop:  r.desktop,
		Mobile:   r.mobile,
		MenuOpen: st.MenuOpen,
		Live:     r.opts.Live,
	})
}

type copyControlView struct {
	Command  template.HTML
	Raw      string
	Copied   bool
	Message  string
	Position tooltip.Position
}

// Installation renders the install section with the copy control and,
// while the copied flag is set, its tooltip.
func (r *Renderer) Installation(st session.UIState) (template.HTML, error) {
	cmd, err := r.hl.Code(r.reg.InstallCommand, "bash", st.ThemeDark)
	if err != nil {
		return "", err
	}
	control, err := r.exec("copy-control", copyControlView{
		Command:  cmd,
		Raw:      r.reg.InstallCommand,
		Copied:   st.Copied,
		Message:  CopiedMessage,
		Position: r.opts.TooltipPosition,
	})
	if err != nil {
		return "", err
	}
	wrapped, err := tooltip.Tooltip{
		Message:  CopiedMessage,
		Visible:  st.Copied,
		Position: r.opts.TooltipPosition,
	}.Render(control)
	if err != nil {
		return "", err
	}
	return r.exec("installation", struct {
		Hint    string
		Control template.HTML
	}{r.reg.InstallHint, wrapped})
}

// Usage renders the highlighted usage example for the current theme.
func (r *Renderer) Usage(st session.UIState) (template.HTML, error) {
	code, err := r.hl.Code(r.reg.UsageCode, r.reg.UsageLanguage, st.ThemeDark)
	if err != nil {
		return "", err
	}
	return r.exec("usage", struct{ Code template.HTML }{code})
}

// Fragment renders one independently replaceable part of the page by
// its element id.
func (r *Renderer) Fragment(id string, st session.UIState) (template.HTML, error) {
	switch id {
	case FragmentHeader:
		return r.Header(st)
	case FragmentInstallation:
		return r.Installation(st)
	case FragmentUsage:
		return r.Usage(st)
	default:
		return "", fmt.Errorf("unknown fragment %q", id)
	}
}

type pageView struct {
	Title        string
	Description  string
	BaseURL      string
	Product      string
	Tagline      string
	Intro        string
	Badges       []content.Badge
	Stats        []content.Stat
	Dark         bool
	Live         bool
	Header       template.HTML
	Installation template.HTML
	Usage        template.HTML
	Sections     sectionHTML
	Footer       content.Footer
}

// Page renders the whole document for st.
func (r *Renderer) Page(w io.Writer, st session.UIState) error {
	header, err := r.Header(st)
	if err != nil {
		return err
	}
	install, err := r.Installation(st)
	if err != nil {
		return err
	}
	usage, err := r.Usage(st)
	if err != nil {
		return err
	}

	title := r.opts.Title
	if title == "" {
		title = r.reg.Product
	}
	return r.tmpl.ExecuteTemplate(w, "page", pageView{
		Title:        title,
		Description:  r.opts.Description,
		BaseURL:      r.opts.BaseURL,
		Product:      r.reg.Product,
		Tagline:      r.reg.Tagline,
		Intro:        r.reg.Intro,
		Badges:       r.reg.Badges,
		Stats:        r.reg.Stats,
		Dark:         st.ThemeDark,
		Live:         r.opts.Live,
		Header:       header,
		Installation: install,
		Usage:        usage,
		Sections:     r.sections,
		Footer:       r.reg.Footer,
	})
}
