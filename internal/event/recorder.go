package event

import "bindrename/internal/identity"

// Recorder is a Sink that keeps every event it receives, optionally
// forwarding them to another Sink. The Sink contract does not carry alias
// ids, so recorded aliases get fresh ids above every id seen so far.
type Recorder struct {
	next   Sink
	events []Event
	maxID  identity.ItemID
}

// NewRecorder creates a Recorder forwarding to next, which may be nil.
func NewRecorder(next Sink) *Recorder {
	return &Recorder{next: next}
}

// OnCompositeFound implements Sink.
func (r *Recorder) OnCompositeFound(id identity.ItemID, kind identity.CompositeKind, originalName, hostName string) {
	r.maxID = max(r.maxID, id)
	r.events = append(r.events, CompositeFound{ID: id, Kind: kind, OriginalName: originalName, HostName: hostName})

	if r.next != nil {
		r.next.OnCompositeFound(id, kind, originalName, hostName)
	}
}

// OnAliasFound implements Sink.
func (r *Recorder) OnAliasFound(alias string, target identity.ItemID) {
	r.maxID = max(r.maxID, target) + 1
	r.events = append(r.events, AliasFound{ID: r.maxID, AliasName: alias, Target: target})

	if r.next != nil {
		r.next.OnAliasFound(alias, target)
	}
}

// Events returns the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}
