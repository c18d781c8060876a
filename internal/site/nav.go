package site

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/textflux/textflux-site/internal/content"
)

// navView is a rendered navigation entry.
type navView struct {
	Label  string
	Anchor string
}

// buildNav title-cases the registry labels and splits them into the
// desktop and mobile menus. Mobile-only links appear only in the latter.
func buildNav(links []content.NavLink) (desktop, mobile []navView) {
	caser := cases.Title(language.English)
	for _, l := range links {
		v := navView{Label: caser.String(l.Label), Anchor: l.Anchor}
		mobile = append(mobile, v)
		if !l.MobileOnly {
			desktop = append(desktop, v)
		}
	}
	return desktop, mobile
}
