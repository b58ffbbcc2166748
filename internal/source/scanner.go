package source

import "lexkit/internal/chars"

// Scanner is a sequential cursor over a codepoint buffer.
// Line and column always describe the state after consuming every
// character up to and including the current position.
type Scanner struct {
	content []rune
	pos     int // -1 before the first Read
	line    int
	column  int
	// lineEnd[i] is the column reached on line i+1 before its break was read
	lineEnd []int
}

// NewScanner creates a scanner positioned before the first character of text.
func NewScanner(text string) *Scanner {
	sc := &Scanner{content: []rune(text)}
	sc.Reset()
	return sc
}

// NewFileScanner scans the content of a loaded file.
func NewFileScanner(f *File) *Scanner {
	return NewScanner(f.Text())
}

// Reset moves the cursor back before the first character.
func (sc *Scanner) Reset() {
	sc.pos = -1
	sc.line = 1
	sc.column = 0
}

// Len returns the buffer length in codepoints.
func (sc *Scanner) Len() int { return len(sc.content) }

func (sc *Scanner) charAt(index int) rune {
	if index < 0 || index >= len(sc.content) {
		return chars.EOF
	}
	return sc.content[index]
}

// isLine reports whether the character at index terminates a line.
// LF always does; CR only when it is not part of a CRLF or LFCR pair.
func (sc *Scanner) isLine(index int) bool {
	switch sc.charAt(index) {
	case chars.LF:
		return true
	case chars.CR:
		return sc.charAt(index-1) != chars.LF && sc.charAt(index+1) != chars.LF
	default:
		return false
	}
}

func (sc *Scanner) isColumn(index int) bool {
	ch := sc.charAt(index)
	return ch != chars.EOF && !chars.IsEOL(ch)
}

// Read consumes the next character. Past the end it keeps returning EOF,
// but each call still moves the cursor so Unread stays symmetric.
func (sc *Scanner) Read() rune {
	sc.pos++
	if sc.pos >= len(sc.content) {
		return chars.EOF
	}
	if sc.isLine(sc.pos) {
		if sc.line <= len(sc.lineEnd) {
			sc.lineEnd[sc.line-1] = sc.column
		} else {
			sc.lineEnd = append(sc.lineEnd, sc.column)
		}
		sc.line++
		sc.column = 0
	} else if sc.isColumn(sc.pos) {
		sc.column++
	}
	return sc.content[sc.pos]
}

// Peek returns the next character without consuming it.
func (sc *Scanner) Peek() rune {
	return sc.charAt(sc.pos + 1)
}

// Line returns the line of the last consumed character.
func (sc *Scanner) Line() int { return sc.line }

// Column returns the column of the last consumed character.
func (sc *Scanner) Column() int { return sc.column }

// Position returns the current line and column.
func (sc *Scanner) Position() Position {
	return Position{Line: sc.line, Column: sc.column}
}

// Offset returns the index of the last consumed character, -1 before the first Read.
func (sc *Scanner) Offset() int { return sc.pos }

// PeekLine returns the line Read would report for the next character.
func (sc *Scanner) PeekLine() int {
	next := sc.pos + 1
	if next >= len(sc.content) {
		return sc.line
	}
	if sc.isLine(next) {
		return sc.line + 1
	}
	return sc.line
}

// PeekColumn returns the column Read would report for the next character.
func (sc *Scanner) PeekColumn() int {
	next := sc.pos + 1
	if next >= len(sc.content) {
		return sc.column
	}
	if sc.isLine(next) {
		return 0
	}
	if sc.isColumn(next) {
		return sc.column + 1
	}
	return sc.column
}

// PeekPosition combines PeekLine and PeekColumn.
func (sc *Scanner) PeekPosition() Position {
	return Position{Line: sc.PeekLine(), Column: sc.PeekColumn()}
}

// Unread pushes back one character. Unreading at the start is a no-op.
func (sc *Scanner) Unread() {
	if sc.pos <= -1 {
		return
	}
	if sc.pos >= len(sc.content) {
		// over-read EOF, nothing was counted
		sc.pos--
		return
	}
	switch {
	case sc.isColumn(sc.pos):
		sc.column--
	case sc.isLine(sc.pos):
		sc.line--
		sc.column = sc.lineEnd[sc.line-1]
	}
	sc.pos--
}

// UnreadMany pushes back count characters.
func (sc *Scanner) UnreadMany(count int) {
	for ; count > 0; count-- {
		sc.Unread()
	}
}
