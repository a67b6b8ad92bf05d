// Package mdv turns a parsed document token tree into a tree of typed
// display nodes.
//
// The token tree comes from an external parser (package gfm adapts
// goldmark); mdv only transforms it. A render pass is a pure function:
// it walks the immutable input once, synchronously, and returns a fresh
// node tree that is never mutated afterward. No token shape is fatal:
// malformed payloads render empty and unknown kinds pass their source
// text through or disappear.
//
// Raw markup (HTML tokens and unknown-kind raw text) is passed through
// verbatim. Sanitizing it is the responsibility of whatever produced the
// token tree.
//
// Example:
//
//	tokens, err := gfm.Parse(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	nodes := mdv.Render(tokens)
//	err = term.New(os.Stdout, 80, term.DefaultTheme()).Render(nodes)
package mdv
