package dialect

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type wordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

// wordSignals is keyed by the upper-cased word.
var wordSignals = map[string]wordSignal{
	"AND":  {Expression, 2, "logical operator AND"},
	"OR":   {Expression, 2, "logical operator OR"},
	"NOT":  {Expression, 1, "logical operator NOT"},
	"XOR":  {Expression, 3, "logical operator XOR"},
	"LIKE": {Expression, 3, "pattern operator LIKE"},
	"NULL": {Expression, 2, "NULL literal"},
	"IS":   {Expression, 1, "IS operator"},
	"IN":   {Expression, 1, "IN operator"},
}

// RecordWord collects evidence for a word token. Matching ignores case.
func RecordWord(e *Evidence, word string, line, column int) {
	if e == nil || word == "" {
		return
	}
	sig, ok := wordSignals[cases.Upper(language.Und).String(word)]
	if !ok {
		return
	}
	e.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: sig.Reason, Line: line, Column: column})
}
