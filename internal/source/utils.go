package source

import (
	"bytes"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// normalizeNFC composes the content; reports whether anything changed.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	return norm.NFC.Bytes(content), true
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// BaseName returns the last path element.
func BaseName(p string) string {
	return filepath.Base(p)
}

// RelativePath returns p relative to base.
func RelativePath(p, base string) (string, error) {
	absP, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absP)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// lineSpans splits content into lines. LF always ends a line; a CR that
// touches an LF belongs to that break and a lone CR ends a line by itself.
func lineSpans(content []byte) []lineSpan {
	at := func(i int) byte {
		if i < 0 || i >= len(content) {
			return 0
		}
		return content[i]
	}
	spans := make([]lineSpan, 0, bytes.Count(content, []byte{'\n'})+1)
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			end := i
			if at(i-1) == '\r' && end-1 >= start {
				end--
			}
			spans = append(spans, lineSpan{start, end})
			start = i + 1
			if at(i+1) == '\r' {
				start++
				i++
			}
		case '\r':
			if at(i-1) == '\n' || at(i+1) == '\n' {
				continue
			}
			spans = append(spans, lineSpan{start, i})
			start = i + 1
		}
	}
	return append(spans, lineSpan{start, len(content)})
}
