package dialect

import (
	"lexkit/internal/lexer"
	"lexkit/internal/token"
)

const (
	// sampleLimit bounds how much content a detection scan reads.
	sampleLimit = 64 << 10
	// minScore and minConfidence gate content-based decisions.
	minScore      = 4
	minConfidence = 0.5
)

// Detection explains why a dialect was chosen.
type Detection struct {
	Kind           Kind
	ByExtension    bool
	Classification Classification
	Hints          []Hint
}

// Detect picks a dialect for a file. The extension wins when it is known;
// otherwise a generic scan of the first part of the content is scored and
// Generic is used when no dialect stands out.
func Detect(path, content string) Detection {
	if k, ok := ByExtension(path); ok {
		return Detection{Kind: k, ByExtension: true}
	}

	ev := Collect(content)
	cls := Classifier{}.Classify(ev)
	return Detection{Kind: cls.Decide(minScore, minConfidence, Generic), Classification: cls, Hints: ev.Hints()}
}

// Collect gathers evidence from a generic scan of content.
func Collect(content string) *Evidence {
	if len(content) > sampleLimit {
		content = content[:sampleLimit]
	}
	ev := NewEvidence()

	tz := lexer.NewGeneric()
	tz.Options.SkipWhitespaces = true
	tz.Options.SkipComments = true
	stream := tz.NewStream(content)

	var prev token.Token
	for stream.HasNext() {
		tok, err := stream.Next()
		if err != nil {
			break
		}
		if tok.Type == token.Word {
			RecordWord(ev, tok.Value, tok.Line, tok.Column)
		}
		ObserveTokenPair(ev, prev, tok)
		prev = tok
	}
	return ev
}
