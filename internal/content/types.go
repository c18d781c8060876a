package content

// ContentItem is one card in the features or benefits grid.
type ContentItem struct {
	Icon  string `yaml:"icon" json:"icon,omitempty"`
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

// PropSpec documents one configuration option of the editor component.
type PropSpec struct {
	Prop    string `yaml:"prop" json:"prop"`
	Type    string `yaml:"type" json:"type"`
	Default string `yaml:"default" json:"default"`
	Desc    string `yaml:"desc" json:"desc"`
}

// ShortcutSpec documents one keyboard shortcut of the editor.
type ShortcutSpec struct {
	Action string `yaml:"action" json:"action"`
	Keys   string `yaml:"keys" json:"keys"`
}

// NavLink is a header navigation entry pointing at an in-page anchor.
type NavLink struct {
	Label      string `yaml:"label" json:"label"`
	Anchor     string `yaml:"anchor" json:"anchor"`
	MobileOnly bool   `yaml:"mobile_only" json:"mobile_only,omitempty"`
}

// Badge is a pill shown in the hero area.
type Badge struct {
	Icon  string `yaml:"icon" json:"icon,omitempty"`
	Label string `yaml:"label" json:"label"`
}

// Stat is a headline figure shown under the hero.
type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Link is an external link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Footer holds the page footer copy.
type Footer struct {
	Copyright string `yaml:"copyright" json:"copyright"`
	Links     []Link `yaml:"links" json:"links"`
}

// Registry is the full set of records the page is rendered from.
// Slice order is display order.
type Registry struct {
	Product        string `yaml:"product" json:"product"`
	Tagline        string `yaml:"tagline" json:"tagline"`
	Intro          string `yaml:"intro" json:"intro"`
	InstallCommand string `yaml:"install_command" json:"install_command"`
	InstallHint    string `yaml:"install_hint" json:"install_hint"`
	UsageCode      string `yaml:"usage_code" json:"usage_code"`
	UsageLanguage  string `yaml:"usage_language" json:"usage_language"`

	Nav             []NavLink      `yaml:"nav" json:"nav"`
	Badges          []Badge        `yaml:"badges" json:"badges"`
	Stats           []Stat         `yaml:"stats" json:"stats"`
	Benefits        []ContentItem  `yaml:"benefits" json:"benefits"`
	Features        []ContentItem  `yaml:"features" json:"features"`
	Props           []PropSpec     `yaml:"props" json:"props"`
	Shortcuts       []ShortcutSpec `yaml:"shortcuts" json:"shortcuts"`
	Customization   []string       `yaml:"customization" json:"customization"`
	Troubleshooting []string       `yaml:"troubleshooting" json:"troubleshooting"`
	Changelog       []string       `yaml:"changelog" json:"changelog"`
	Footer          Footer         `yaml:"footer" json:"footer"`
}
