// Package event defines the discovery events a foreign-header parser emits
// and the Sink that consumes them.
//
// Events can be built in code or loaded from an event-stream document
// (YAML, or JSON since it is a YAML subset):
//
//	events:
//	  - {type: composite, id: 1, kind: struct, host: Anon1}
//	  - {type: alias, id: 2, alias: Foo, target: 1}
//
// Replay delivers a stream to a Sink serially, in slice order.
package event
