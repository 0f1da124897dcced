package render

// Theme is a named palette applied during markup rendering. Primary colors
// headings, Secondary colors body text, Accent colors bullet glyphs.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
}

// DefaultThemeName resolves when the selector is absent or unrecognized.
const DefaultThemeName = "classic"

var themes = map[string]Theme{
	"classic": {
		Name:      "classic",
		Primary:   "000000",
		Secondary: "333333",
		Accent:    "555555",
	},
	"modern": {
		Name:      "modern",
		Primary:   "1F2937",
		Secondary: "374151",
		Accent:    "2563EB",
	},
	"professional": {
		Name:      "professional",
		Primary:   "1A365D",
		Secondary: "2D3748",
		Accent:    "718096",
	},
}

// ThemeByName returns the named theme, falling back to classic for unknown
// or empty selectors.
func ThemeByName(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes[DefaultThemeName]
}

// ThemeNames lists the available selectors.
func ThemeNames() []string {
	return []string{"classic", "modern", "professional"}
}
