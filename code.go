package mdv

import "errors"

// DefaultLang labels a code block whose source declared no language.
const DefaultLang = "text"

// ErrNoClipboard reports a copy attempt without a clipboard collaborator.
var ErrNoClipboard = errors.New("no clipboard available")

// Clipboard copies text on the user's behalf. Implementations live outside
// the render core; see package clipboard for the system one.
type Clipboard interface {
	Copy(text string) error
}

// CodeView presents one code block: a language label and the verbatim
// text. The text is neither escaped nor highlighted here; display layers
// may run their own highlighting pass over Text.
type CodeView struct {
	text string
	lang string
}

// NewCodeView returns a view over a code block's raw text and language tag.
func NewCodeView(text, lang string) *CodeView {
	return &CodeView{text: text, lang: lang}
}

// Text returns the code verbatim.
func (v *CodeView) Text() string {
	return v.text
}

// Lang returns the language label, or DefaultLang when none was declared.
func (v *CodeView) Lang() string {
	if v.lang == "" {
		return DefaultLang
	}
	return v.lang
}

// CopyTo hands the raw text to a clipboard collaborator.
func (v *CodeView) CopyTo(c Clipboard) error {
	if c == nil {
		return ErrNoClipboard
	}
	return c.Copy(v.text)
}
