package term

import (
	"sort"
	"strings"
)

// Style describes a terminal style as an ANSI prefix sequence. An empty
// prefix renders plain text.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used when displaying a node tree.
type Styles struct {
	Text        Style
	Heading     [6]Style
	Emphasis    Style
	Strong      Style
	Strike      Style
	CodeInline  Style
	CodeBlock   Style
	Quote       Style
	ListMarker  Style
	LinkText    Style
	LinkURL     Style
	Rule        Style
	TableHeader Style
	TableBorder Style
}

// Theme provides named styles for node tree display.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text:        style(p.Text),
		Heading:     [6]Style{style(bold, p.H1), style(bold, p.H2), style(bold, p.H3), style(p.H4), style(p.H5), style(p.H6)},
		Emphasis:    style(italic, p.Emphasis),
		Strong:      style(bold, p.Strong),
		Strike:      style(strike, p.Strike),
		CodeInline:  style(p.CodeInline),
		CodeBlock:   style(p.CodeBlock),
		Quote:       style(p.Quote),
		ListMarker:  style(p.ListMarker),
		LinkText:    style(underline, p.LinkText),
		LinkURL:     style(faint, p.LinkURL),
		Rule:        style(p.Rule),
		TableHeader: style(bold, p.TableHeader),
		TableBorder: style(p.TableBorder),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(paletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(paletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(paletteDracula)},
	"github-dark":    theme{name: "github-dark", styles: stylesFromPalette(paletteGithubDark)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(paletteSolarizedDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
