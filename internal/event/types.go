package event

import (
	"fmt"

	"bindrename/internal/identity"
)

// Sink receives discovery events one at a time.
type Sink interface {
	OnCompositeFound(id identity.ItemID, kind identity.CompositeKind, originalName, hostName string)
	OnAliasFound(alias string, target identity.ItemID)
}

// Event is a single discovery event.
type Event interface {
	// Apply delivers the event to sink.
	Apply(sink Sink)
	fmt.Stringer
}

// CompositeFound reports a struct or union declaration.
type CompositeFound struct {
	ID           identity.ItemID
	Kind         identity.CompositeKind
	OriginalName string // empty for anonymous types
	HostName     string
}

// Apply implements Event.
func (e CompositeFound) Apply(sink Sink) {
	sink.OnCompositeFound(e.ID, e.Kind, e.OriginalName, e.HostName)
}

func (e CompositeFound) String() string {
	name := e.OriginalName
	if name == "" {
		name = "<anonymous>"
	}

	return fmt.Sprintf("composite #%d %s %s -> %s", e.ID, e.Kind, name, e.HostName)
}

// AliasFound reports a typedef naming another item.
type AliasFound struct {
	ID        identity.ItemID
	AliasName string
	Target    identity.ItemID
}

// Apply implements Event.
func (e AliasFound) Apply(sink Sink) {
	sink.OnAliasFound(e.AliasName, e.Target)
}

func (e AliasFound) String() string {
	return fmt.Sprintf("alias #%d %s -> #%d", e.ID, e.AliasName, e.Target)
}

// Replay delivers events to sink in order.
func Replay(sink Sink, events ...Event) {
	for _, e := range events {
		e.Apply(sink)
	}
}

var _ Sink = (*identity.Registry)(nil)
