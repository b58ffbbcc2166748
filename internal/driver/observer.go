package driver

import "lexkit/internal/dialect"

// Status is the state of one file in a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Event reports progress for a file. Dialect is set once it is known.
type Event struct {
	File    string
	Status  Status
	Dialect dialect.Kind
	Cached  bool
	Tokens  int
}

// Observer receives events from concurrent workers and must be safe for
// concurrent calls.
type Observer func(Event)

func (o Observer) emit(ev Event) {
	if o != nil {
		o(ev)
	}
}

// ChannelObserver forwards events to ch. The caller closes ch after the run.
func ChannelObserver(ch chan<- Event) Observer {
	return func(ev Event) { ch <- ev }
}
