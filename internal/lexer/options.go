package lexer

// Options tune how raw tokens are filtered and rewritten. All default to false.
//
// SkipWhitespaces drops every whitespace token, the first of a run included;
// it never keeps one token as a separator. Use MergeWhitespaces for that.
type Options struct {
	SkipUnknown      bool
	SkipWhitespaces  bool
	SkipComments     bool
	SkipEof          bool
	MergeWhitespaces bool // whitespace tokens get the value " "
	UnifyNumbers     bool // Integer and Float become Number
	DecodeStrings    bool // quoted values pass through the producing state's DecodeString
	StrictQuotes     bool // an unterminated quote fails the scan
}
