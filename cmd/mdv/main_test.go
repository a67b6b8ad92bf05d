package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/mdv"
	"pkt.systems/mdv/term"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# file\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs(file): %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read file input: %v", err)
	}
	if closer != nil {
		_ = closer.Close()
	}
	if string(data) != "# file\n" {
		t.Fatalf("file content = %q", data)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "# url\n")
	}))
	defer srv.Close()

	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs(url): %v", err)
	}
	data, err = io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read url input: %v", err)
	}
	if closer != nil {
		_ = closer.Close()
	}
	if string(data) != "# url\n" {
		t.Fatalf("url content = %q", data)
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	if err := os.WriteFile(first, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two\n"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}

	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs: %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read inputs: %v", err)
	}
	if closer != nil {
		_ = closer.Close()
	}
	if string(data) != "one\ntwo\n" {
		t.Fatalf("concatenated content = %q", data)
	}
}

func TestResolveOSC8(t *testing.T) {
	cases := map[string]bool{
		"on":    true,
		"true":  true,
		"1":     true,
		"yes":   true,
		"off":   false,
		"false": false,
		"0":     false,
		"no":    false,
	}
	for mode, want := range cases {
		got, err := resolveOSC8(mode)
		if err != nil {
			t.Fatalf("resolveOSC8(%q): %v", mode, err)
		}
		if got != want {
			t.Fatalf("resolveOSC8(%q) = %v, want %v", mode, got, want)
		}
	}
	if _, err := resolveOSC8("sometimes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := boringTheme().Styles()
	for i, s := range styles.Heading {
		if s.Prefix != "" {
			t.Fatalf("heading %d prefix = %q", i+1, s.Prefix)
		}
	}
	for name, s := range map[string]term.Style{
		"text":     styles.Text,
		"emphasis": styles.Emphasis,
		"strong":   styles.Strong,
		"code":     styles.CodeBlock,
		"quote":    styles.Quote,
	} {
		if s.Prefix != "" {
			t.Fatalf("%s prefix = %q", name, s.Prefix)
		}
	}
}

func TestNthCodeView(t *testing.T) {
	nodes := mdv.Render([]mdv.Token{
		mdv.Paragraph{Content: []mdv.Token{mdv.PlainText{Text: "intro"}}},
		mdv.Code{Text: "first\n", Lang: "sh"},
		mdv.Blockquote{Children: []mdv.Token{
			mdv.Code{Text: "second\n"},
		}},
	})

	n := 2
	view, ok := nthCodeView(nodes, &n)
	if !ok {
		t.Fatalf("expected to find second code block")
	}
	if view.Text() != "second\n" {
		t.Fatalf("second code block text = %q", view.Text())
	}

	n = 3
	if _, ok := nthCodeView(nodes, &n); ok {
		t.Fatalf("unexpected third code block")
	}
}
