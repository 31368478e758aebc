package event

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bindrename/internal/identity"
)

// Record types.
const (
	TypeComposite = "composite"
	TypeAlias     = "alias"
)

var (
	// ErrUnknownEventType is returned for a record whose type is neither composite nor alias.
	ErrUnknownEventType = errors.New("unknown event type")
	// ErrUnknownKind is returned for a composite record with an invalid kind.
	ErrUnknownKind = errors.New("unknown composite kind")
	// ErrMissingHostName is returned for a composite record without a host name.
	ErrMissingHostName = errors.New("composite without host name")
	// ErrMissingAliasName is returned for an alias record without a name.
	ErrMissingAliasName = errors.New("alias without name")
)

// StreamFile is the on-disk form of a recorded discovery session.
type StreamFile struct {
	Version string   `yaml:"version,omitempty"`
	Events  []Record `yaml:"events"`
}

// Record is one event of a StreamFile.
type Record struct {
	Type   string `yaml:"type"`
	ID     uint64 `yaml:"id"`
	Kind   string `yaml:"kind,omitempty"`
	Name   string `yaml:"name,omitempty"`
	Host   string `yaml:"host,omitempty"`
	Alias  string `yaml:"alias,omitempty"`
	Target uint64 `yaml:"target,omitempty"`
}

// LoadFile reads and decodes the event stream stored at path.
func LoadFile(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event stream %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON event stream.
func Parse(data []byte) ([]Event, error) {
	var sf StreamFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event stream: %w", err)
	}

	if sf.Version == "" {
		sf.Version = "1"
	}

	return sf.Decode()
}

// Decode converts the records into events, validating each one.
func (sf *StreamFile) Decode() ([]Event, error) {
	events := make([]Event, 0, len(sf.Events))

	for i, rec := range sf.Events {
		e, err := rec.Event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		events = append(events, e)
	}

	return events, nil
}

// Event converts the record into the event it describes.
func (r Record) Event() (Event, error) {
	switch r.Type {
	case TypeComposite:
		kind, err := identity.ParseKind(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
		}

		if r.Host == "" {
			return nil, fmt.Errorf("%w (id %d)", ErrMissingHostName, r.ID)
		}

		return CompositeFound{
			ID:           identity.ItemID(r.ID),
			Kind:         kind,
			OriginalName: r.Name,
			HostName:     r.Host,
		}, nil

	case TypeAlias:
		if r.Alias == "" {
			return nil, fmt.Errorf("%w (id %d)", ErrMissingAliasName, r.ID)
		}

		return AliasFound{
			ID:        identity.ItemID(r.ID),
			AliasName: r.Alias,
			Target:    identity.ItemID(r.Target),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, r.Type)
	}
}

// Marshal encodes events as a YAML event stream.
func Marshal(events []Event) ([]byte, error) {
	sf := StreamFile{Version: "1", Events: make([]Record, 0, len(events))}

	for _, e := range events {
		switch e := e.(type) {
		case CompositeFound:
			sf.Events = append(sf.Events, Record{
				Type: TypeComposite,
				ID:   uint64(e.ID),
				Kind: e.Kind.String(),
				Name: e.OriginalName,
				Host: e.HostName,
			})
		case AliasFound:
			sf.Events = append(sf.Events, Record{
				Type:   TypeAlias,
				ID:     uint64(e.ID),
				Alias:  e.AliasName,
				Target: uint64(e.Target),
			})
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownEventType, e)
		}
	}

	return yaml.Marshal(&sf)
}

// WriteFile writes events to path as a YAML event stream.
func WriteFile(events []Event, path string) error {
	data, err := Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal event stream: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write event stream %s: %w", path, err)
	}

	return nil
}
