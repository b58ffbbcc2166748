package lexer

import (
	"strings"

	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// GenericCommentState reads a line comment: everything from the current
// character up to, not including, the end of line.
type GenericCommentState struct{}

func NewCommentState() *GenericCommentState { return &GenericCommentState{} }

func (GenericCommentState) NextToken(sc *source.Scanner, _ *Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	return token.New(token.Comment, readToEOL(sc), line, column), nil
}

func readToEOL(sc *source.Scanner) string {
	var b strings.Builder
	ch := sc.Read()
	for ; !chars.IsEOF(ch) && !chars.IsEOL(ch); ch = sc.Read() {
		b.WriteRune(ch)
	}
	sc.Unread()
	return b.String()
}

// readBlock reads a block comment body after "/*", including the closing "*/".
func readBlock(sc *source.Scanner) (string, error) {
	var b strings.Builder
	last := chars.NIL
	for ch := sc.Read(); !chars.IsEOF(ch); ch = sc.Read() {
		b.WriteRune(ch)
		if last == '*' && ch == '/' {
			return b.String(), nil
		}
		last = ch
	}
	sc.Unread()
	return "", newTokenizeError(ErrUnterminatedComment, diag.LexUnterminatedComment, chars.EOF,
		"unterminated block comment")
}

// CppCommentState handles "//" line comments and "/* */" block comments.
// A '/' that starts neither goes to the symbol state.
type CppCommentState struct {
	// Line enables "//" comments; CCommentState leaves it off.
	Line bool
}

func NewCppCommentState() *CppCommentState { return &CppCommentState{Line: true} }

// NewCCommentState accepts block comments only.
func NewCCommentState() *CppCommentState { return &CppCommentState{} }

func (s *CppCommentState) NextToken(sc *source.Scanner, tz *Tokenizer) (token.Token, error) {
	line, column := sc.PeekLine(), sc.PeekColumn()
	first := sc.Read()
	if first != '/' {
		sc.Unread()
		return token.Token{}, misused("comment state", first)
	}

	switch second := sc.Read(); {
	case second == '*':
		body, err := readBlock(sc)
		if err != nil {
			return token.Token{}, err
		}
		return token.New(token.Comment, "/*"+body, line, column), nil
	case second == '/' && s.Line:
		return token.New(token.Comment, "//"+readToEOL(sc), line, column), nil
	default:
		sc.UnreadMany(2)
		return delegateToSymbol(sc, tz, ErrMisusedState, diag.LexMisusedState)
	}
}
