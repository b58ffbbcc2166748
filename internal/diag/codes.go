package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                  Code = 1000
	LexUnknownChar           Code = 1001
	LexUnterminatedString    Code = 1002
	LexUnterminatedComment   Code = 1003
	LexBadNumber             Code = 1004
	LexMisusedState          Code = 1005
	LexUnexpectedEOF         Code = 1006
	LexInvalidRange          Code = 1007
	LexEmptySymbol           Code = 1008
	LexInvalidFieldSeparator Code = 1009
	LexInvalidQuoteSymbol    Code = 1010

	// Mustache directives
	MustacheInfo                 Code = 4000
	MustacheUnexpectedEnd        Code = 4001
	MustacheErrorNear            Code = 4002
	MustacheMismatchedBrackets   Code = 4003
	MustacheUnexpectedSymbol     Code = 4004
	MustacheUnexpectedSectionEnd Code = 4005
	MustacheNotClosedSection     Code = 4006
	MustachePartialsNotSupported Code = 4007
	MustacheInternal             Code = 4008

	// Ошибки I/O
	IOInfo          Code = 5000
	IOLoadFileError Code = 5001
	IOCacheError    Code = 5002
	IOConfigError   Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:                  "Unknown error",
	LexInfo:                      "Lexical information",
	LexUnknownChar:               "Unknown character",
	LexUnterminatedString:        "Unterminated string",
	LexUnterminatedComment:       "Unterminated block comment",
	LexBadNumber:                 "Bad number",
	LexMisusedState:              "Character state used on a character it does not handle",
	LexUnexpectedEOF:             "Unexpected end of input",
	LexInvalidRange:              "Invalid character range",
	LexEmptySymbol:               "Empty symbol",
	LexInvalidFieldSeparator:     "Invalid field separator",
	LexInvalidQuoteSymbol:        "Invalid quote symbol",
	MustacheInfo:                 "Template information",
	MustacheUnexpectedEnd:        "Unexpected end of template",
	MustacheErrorNear:            "Syntax error",
	MustacheMismatchedBrackets:   "Mismatched brackets",
	MustacheUnexpectedSymbol:     "Unexpected symbol",
	MustacheUnexpectedSectionEnd: "Unexpected section end",
	MustacheNotClosedSection:     "Section is not closed",
	MustachePartialsNotSupported: "Partials are not supported",
	MustacheInternal:             "Internal template error",
	IOInfo:                       "I/O information",
	IOLoadFileError:              "Failed to load file",
	IOCacheError:                 "Token cache error",
	IOConfigError:                "Invalid configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("MST%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
