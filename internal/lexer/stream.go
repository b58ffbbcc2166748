package lexer

import (
	"errors"
	"io"

	"lexkit/internal/chars"
	"lexkit/internal/diag"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// ReadFunc produces the next raw token of a stream. ok is false at end of input.
type ReadFunc func(s *Stream) (tok token.Token, ok bool, err error)

// Stream is the per-scan iterator. It owns the scanner and the look-ahead;
// the Tokenizer stays untouched.
type Stream struct {
	tz        *Tokenizer
	sc        *source.Scanner
	read      ReadFunc
	next      *token.Token
	lastType  token.Type
	lastState State
	done      bool
	err       error
}

// Scanner exposes the underlying scanner to custom read functions.
func (s *Stream) Scanner() *source.Scanner { return s.sc }

// Tokenizer returns the tokenizer driving the stream.
func (s *Stream) Tokenizer() *Tokenizer { return s.tz }

// LastType is the type of the last token the stream produced or skipped.
func (s *Stream) LastType() token.Type { return s.lastType }

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error { return s.err }

// HasNext reports whether Next would return a token.
func (s *Stream) HasNext() bool {
	if s.next == nil && !s.done {
		if tok, err := s.readNext(); err == nil {
			s.next = &tok
		}
	}
	return s.next != nil
}

// Next returns the next token, io.EOF after the last one, or the scan error.
func (s *Stream) Next() (token.Token, error) {
	if s.next != nil {
		tok := *s.next
		s.next = nil
		return tok, nil
	}
	if s.done {
		if s.err != nil {
			return token.Token{}, s.err
		}
		return token.Token{}, io.EOF
	}
	return s.readNext()
}

// Dispatch is the default read step: peek, look up the state and delegate.
// A missing state or an empty result yields a one-character Unknown token.
func (s *Stream) Dispatch() (token.Token, bool, error) {
	line, column := s.sc.PeekLine(), s.sc.PeekColumn()
	ch := s.sc.Peek()
	if chars.IsEOF(ch) {
		return token.Token{}, false, nil
	}

	var tok token.Token
	if st := s.tz.CharacterState(ch); st != nil {
		var err error
		tok, err = st.NextToken(s.sc, s.tz)
		if err != nil {
			return token.Token{}, false, err
		}
		s.lastState = st
	}
	if tok.Value == "" {
		// ничего не съедено: отдаём символ как Unknown, чтобы цикл продвинулся
		s.lastState = nil
		tok = token.New(token.Unknown, string(s.sc.Read()), line, column)
	}
	return tok, true, nil
}

func (s *Stream) readNext() (token.Token, error) {
	opts := &s.tz.Options
	for {
		line, column := s.sc.PeekLine(), s.sc.PeekColumn()
		s.lastState = nil
		tok, ok, err := s.read(s)
		if err != nil {
			return token.Token{}, s.fail(err, line, column)
		}
		if !ok {
			s.done = true
			if s.lastType == token.Eof || opts.SkipEof {
				s.lastType = token.Eof
				return token.Token{}, io.EOF
			}
			s.lastType = token.Eof
			return token.New(token.Eof, "", line, column), nil
		}

		switch {
		case tok.Type == token.Unknown && opts.SkipUnknown,
			tok.Type == token.Comment && opts.SkipComments,
			tok.Type == token.Whitespace && opts.SkipWhitespaces:
			s.lastType = tok.Type
			continue
		}

		if opts.DecodeStrings && tok.Value != "" {
			if qs, ok := s.lastState.(QuoteState); ok {
				tok.Value = qs.DecodeString(tok.Value, []rune(tok.Value)[0])
			}
		}
		if tok.Type == token.Whitespace && opts.MergeWhitespaces {
			tok.Value = " "
		}
		if opts.UnifyNumbers && (tok.Type == token.Integer || tok.Type == token.Float) {
			tok.Type = token.Number
		}

		s.lastType = tok.Type
		return tok, nil
	}
}

func (s *Stream) fail(err error, line, column int) error {
	var te *TokenizeError
	if !errors.As(err, &te) {
		te = &TokenizeError{Code: diag.UnknownCode, Char: chars.EOF, Err: err}
	}
	te.Line, te.Column = line, column
	s.done = true
	s.err = te
	return te
}
