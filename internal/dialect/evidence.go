package dialect

import (
	"cmp"
	"slices"
)

// Hint is one observation in favour of a dialect, located at the token
// that triggered it.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
	Line    int
	Column  int
}

// Evidence is the ordered list of hints gathered from one sample.
type Evidence struct {
	hints []Hint
}

func NewEvidence() *Evidence {
	return &Evidence{hints: make([]Hint, 0, 16)}
}

// Add records h. Hints without a positive score still count as observed
// signals but never move the classification.
func (e *Evidence) Add(h Hint) {
	if e != nil {
		e.hints = append(e.hints, h)
	}
}

// Hints returns the hints in scan order.
func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// HintGroup folds every hint with the same dialect and reason.
type HintGroup struct {
	Dialect Kind
	Reason  string
	Count   int
	Score   int  // summed
	First   Hint // earliest occurrence
}

// GroupHints folds hints by dialect and reason, strongest group first.
func GroupHints(hints []Hint) []HintGroup {
	type key struct {
		k      Kind
		reason string
	}
	index := make(map[key]int)
	var groups []HintGroup
	for _, h := range hints {
		k := key{h.Dialect, h.Reason}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, HintGroup{Dialect: h.Dialect, Reason: h.Reason, First: h})
		}
		groups[i].Count++
		groups[i].Score += h.Score
	}
	slices.SortStableFunc(groups, func(a, b HintGroup) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return groups
}
