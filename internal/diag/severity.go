package diag

// Severity orders diagnostics; higher is worse.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning // the run still produced tokens
	SevError   // a file produced no tokens
)

var severityNames = [...]string{SevInfo: "info", SevWarning: "warning", SevError: "error"}

// Label is the lowercase name used in single-line output.
func (s Severity) Label() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// String is the uppercase form used by the pretty and JSON renderers.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
