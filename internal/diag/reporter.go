package diag

// Reporter принимает диагностики от производителей (драйвер, парсер шаблонов).
type Reporter interface {
	Report(code Code, sev Severity, primary Location, msg string, notes []Note)
}

// BagReporter stores reports in Bag. A nil Bag discards them.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary Location, msg string, notes []Note) {
	if r.Bag != nil {
		r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
	}
}

// DedupReporter forwards each distinct (code, severity, location, message)
// once. It is not safe for concurrent use.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	code Code
	sev  Severity
	loc  Location
	msg  string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary Location, msg string, notes []Note) {
	k := dedupKey{code, sev, primary, msg}
	if _, dup := r.seen[k]; dup || r.next == nil {
		return
	}
	r.seen[k] = struct{}{}
	r.next.Report(code, sev, primary, msg, notes)
}

// ReportBuilder collects notes before a single Emit.
type ReportBuilder struct {
	to      Reporter
	d       Diagnostic
	emitted bool
}

func ReportError(r Reporter, code Code, primary Location, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: NewError(code, primary, msg)}
}

func ReportWarning(r Reporter, code Code, primary Location, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: New(SevWarning, code, primary, msg)}
}

func (b *ReportBuilder) WithNote(loc Location, msg string) *ReportBuilder {
	b.d = b.d.WithNote(loc, msg)
	return b
}

// Emit reports the diagnostic; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b.emitted || b.to == nil {
		return
	}
	b.emitted = true
	b.to.Report(b.d.Code, b.d.Severity, b.d.Primary, b.d.Message, b.d.Notes)
}
