package dialect

import (
	"cmp"
	"slices"
)

// Candidate is one dialect with the evidence score it collected.
type Candidate struct {
	Kind  Kind
	Score int
}

// Classification is the result of scoring evidence for a file.
type Classification struct {
	Kind       Kind
	Score      int
	TotalScore int
	Confidence float64
	RunnerUp   Kind
	// RunnerUpScore is zero when only one dialect left evidence.
	RunnerUpScore   int
	ObservedSignals int
	// Candidates holds every dialect with a positive score, best first.
	Candidates []Candidate
}

// Decide returns the classified kind when it clears both thresholds, and
// fallback otherwise.
func (c Classification) Decide(minScore int, minConfidence float64, fallback Kind) Kind {
	if c.Kind == Unknown || c.Score < minScore || c.Confidence < minConfidence {
		return fallback
	}
	return c.Kind
}

// Classifier sums hint scores per dialect.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	var scores [kindCount]int
	res := Classification{ObservedSignals: len(e.hints)}
	for _, h := range e.hints {
		if h.Score <= 0 || h.Dialect <= Unknown || h.Dialect >= kindCount {
			continue
		}
		scores[h.Dialect] += h.Score
		res.TotalScore += h.Score
	}

	for k := Generic; k < kindCount; k++ {
		if scores[k] > 0 {
			res.Candidates = append(res.Candidates, Candidate{Kind: k, Score: scores[k]})
		}
	}
	// ties keep declaration order
	slices.SortStableFunc(res.Candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	switch len(res.Candidates) {
	case 0:
		return res
	case 1:
	default:
		res.RunnerUp, res.RunnerUpScore = res.Candidates[1].Kind, res.Candidates[1].Score
	}
	res.Kind, res.Score = res.Candidates[0].Kind, res.Candidates[0].Score
	res.Confidence = float64(res.Score) / float64(res.TotalScore)
	return res
}
