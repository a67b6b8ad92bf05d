package term

// Option configures display behavior.
type Option func(*renderConfig)

type renderConfig struct {
	osc8           bool
	highlight      bool
	highlightStyle string
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithHighlight enables or disables syntax highlighting of code blocks.
// Highlighting runs over the block's raw text before display; the node
// tree itself is never touched.
func WithHighlight(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.highlight = enabled
	}
}

// WithHighlightStyle selects the chroma style used when highlighting.
func WithHighlightStyle(name string) Option {
	return func(cfg *renderConfig) {
		cfg.highlightStyle = name
	}
}
