package gfm

import "bytes"

// StripFrontMatter removes a leading front matter block (--- / +++ / ;;;
// delimited) from a document. The block must open on the first line and
// its first body line must look like metadata; otherwise the source is
// returned untouched. An unclosed block is also returned untouched rather
// than swallowing the document.
func StripFrontMatter(src []byte) []byte {
	line, next, ok := nextLine(src, 0)
	if !ok {
		return src
	}
	delim, isFrontMatter := openingDelimiter(line)
	if !isFrontMatter {
		return src
	}
	second, idx, ok := nextLine(src, next)
	if !ok || !metadataLikely(second) {
		return src
	}
	for idx <= len(src) {
		line, after, ok := nextLine(src, idx)
		if !ok {
			return src
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[after:]
		}
		if after == idx {
			return src
		}
		idx = after
	}
	return src
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, start, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	end := start + i
	return trimCR(src[start:end]), end + 1, true
}

func openingDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsRune(trimmed, ':') || bytes.ContainsRune(trimmed, '=')
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
