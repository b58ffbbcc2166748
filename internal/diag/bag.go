package diag

import (
	"cmp"
	"slices"

	"fortio.org/safecast"
)

// Bag collects diagnostics up to a limit. Diagnostics past the limit are
// counted, not stored. A Bag is not safe for concurrent use; the driver
// gives every worker its own and merges them afterwards.
type Bag struct {
	items   []Diagnostic
	limit   uint16
	dropped int
}

// NewBag returns a bag holding at most maxItems entries. Limits beyond
// the uint16 range are clamped.
func NewBag(maxItems int) *Bag {
	limit, err := safecast.Conv[uint16](maxItems)
	if err != nil {
		limit = clampLimit(maxItems)
	}
	return &Bag{items: make([]Diagnostic, 0, min(int(limit), 64)), limit: limit}
}

func clampLimit(n int) uint16 {
	if n < 0 {
		return 0
	}
	return ^uint16(0)
}

// Add stores d and reports false once the limit is reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.limit) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped is the number of diagnostics rejected by the limit.
func (b *Bag) Dropped() int { return b.dropped }

func (b *Bag) Len() int { return len(b.items) }

// Items returns the stored diagnostics. The slice aliases the bag.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool { return b.worst() >= SevError }

func (b *Bag) HasWarnings() bool { return b.worst() >= SevWarning }

func (b *Bag) worst() Severity {
	var w Severity
	for i := range b.items {
		w = max(w, b.items[i].Severity)
	}
	return w
}

// Merge appends everything from other. The limit grows to fit, so the
// per-file limits of a directory run add up.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > int(b.limit) {
		limit, err := safecast.Conv[uint16](total)
		if err != nil {
			limit = clampLimit(total)
		}
		b.limit = limit
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort orders by file and position, then worst severity first, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Line, y.Primary.Line),
			cmp.Compare(x.Primary.Column, y.Primary.Column),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup keeps the first diagnostic for each code and primary location.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		loc  Location
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
