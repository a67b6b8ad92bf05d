package term

const (
	bold      = "\x1b[1m"
	italic    = "\x1b[3m"
	underline = "\x1b[4m"
	strike    = "\x1b[9m"
	faint     = "\x1b[2m"
)

// palette holds raw ANSI color prefixes for one color scheme. Attribute
// codes (bold, italic) are layered on in stylesFromPalette.
type palette struct {
	Text        string
	H1          string
	H2          string
	H3          string
	H4          string
	H5          string
	H6          string
	Emphasis    string
	Strong      string
	Strike      string
	CodeInline  string
	CodeBlock   string
	Quote       string
	ListMarker  string
	LinkText    string
	LinkURL     string
	Rule        string
	TableHeader string
	TableBorder string
}

var paletteDefault = palette{
	H1:          "\x1b[38;5;117m",
	H2:          "\x1b[38;5;117m",
	H3:          "\x1b[38;5;153m",
	H4:          "\x1b[38;5;153m",
	H5:          "\x1b[38;5;189m",
	H6:          "\x1b[38;5;189m",
	Emphasis:    "\x1b[38;5;222m",
	Strong:      "\x1b[38;5;216m",
	Strike:      "\x1b[38;5;245m",
	CodeInline:  "\x1b[38;5;156m",
	CodeBlock:   "\x1b[38;5;151m",
	Quote:       "\x1b[38;5;109m",
	ListMarker:  "\x1b[38;5;110m",
	LinkText:    "\x1b[38;5;111m",
	LinkURL:     "\x1b[38;5;245m",
	Rule:        "\x1b[38;5;240m",
	TableHeader: "\x1b[38;5;117m",
	TableBorder: "\x1b[38;5;240m",
}

var paletteGruvbox = palette{
	H1:          "\x1b[38;5;214m",
	H2:          "\x1b[38;5;214m",
	H3:          "\x1b[38;5;208m",
	H4:          "\x1b[38;5;208m",
	H5:          "\x1b[38;5;172m",
	H6:          "\x1b[38;5;172m",
	Emphasis:    "\x1b[38;5;109m",
	Strong:      "\x1b[38;5;167m",
	Strike:      "\x1b[38;5;245m",
	CodeInline:  "\x1b[38;5;142m",
	CodeBlock:   "\x1b[38;5;108m",
	Quote:       "\x1b[38;5;246m",
	ListMarker:  "\x1b[38;5;109m",
	LinkText:    "\x1b[38;5;109m",
	LinkURL:     "\x1b[38;5;245m",
	Rule:        "\x1b[38;5;241m",
	TableHeader: "\x1b[38;5;214m",
	TableBorder: "\x1b[38;5;241m",
}

var paletteDracula = palette{
	H1:          "\x1b[38;5;141m",
	H2:          "\x1b[38;5;141m",
	H3:          "\x1b[38;5;183m",
	H4:          "\x1b[38;5;183m",
	H5:          "\x1b[38;5;189m",
	H6:          "\x1b[38;5;189m",
	Emphasis:    "\x1b[38;5;228m",
	Strong:      "\x1b[38;5;212m",
	Strike:      "\x1b[38;5;245m",
	CodeInline:  "\x1b[38;5;84m",
	CodeBlock:   "\x1b[38;5;117m",
	Quote:       "\x1b[38;5;103m",
	ListMarker:  "\x1b[38;5;141m",
	LinkText:    "\x1b[38;5;117m",
	LinkURL:     "\x1b[38;5;245m",
	Rule:        "\x1b[38;5;240m",
	TableHeader: "\x1b[38;5;141m",
	TableBorder: "\x1b[38;5;240m",
}

var paletteGithubDark = palette{
	H1:          "\x1b[38;5;75m",
	H2:          "\x1b[38;5;75m",
	H3:          "\x1b[38;5;117m",
	H4:          "\x1b[38;5;117m",
	H5:          "\x1b[38;5;153m",
	H6:          "\x1b[38;5;153m",
	Emphasis:    "\x1b[38;5;252m",
	Strong:      "\x1b[38;5;255m",
	Strike:      "\x1b[38;5;244m",
	CodeInline:  "\x1b[38;5;210m",
	CodeBlock:   "\x1b[38;5;252m",
	Quote:       "\x1b[38;5;245m",
	ListMarker:  "\x1b[38;5;75m",
	LinkText:    "\x1b[38;5;75m",
	LinkURL:     "\x1b[38;5;244m",
	Rule:        "\x1b[38;5;239m",
	TableHeader: "\x1b[38;5;75m",
	TableBorder: "\x1b[38;5;239m",
}

var paletteSolarizedDark = palette{
	H1:          "\x1b[38;5;33m",
	H2:          "\x1b[38;5;33m",
	H3:          "\x1b[38;5;37m",
	H4:          "\x1b[38;5;37m",
	H5:          "\x1b[38;5;66m",
	H6:          "\x1b[38;5;66m",
	Emphasis:    "\x1b[38;5;136m",
	Strong:      "\x1b[38;5;166m",
	Strike:      "\x1b[38;5;240m",
	CodeInline:  "\x1b[38;5;64m",
	CodeBlock:   "\x1b[38;5;109m",
	Quote:       "\x1b[38;5;241m",
	ListMarker:  "\x1b[38;5;37m",
	LinkText:    "\x1b[38;5;33m",
	LinkURL:     "\x1b[38;5;240m",
	Rule:        "\x1b[38;5;240m",
	TableHeader: "\x1b[38;5;33m",
	TableBorder: "\x1b[38;5;240m",
}
