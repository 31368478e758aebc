package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"bindrename/internal/event"
	"bindrename/internal/export"
	"bindrename/internal/identity"
)

// errNoEvents is returned when --events is missing.
var errNoEvents = errors.New("an event stream is required (--events)")

// loadSession replays the event stream into a fresh registry, drops orphan
// aliases, and returns an exporter over the result.
func loadSession(opts *RootOptions, cmd *cobra.Command) (*export.Exporter, error) {
	if opts.Events == "" {
		return nil, errNoEvents
	}

	logger := newLogger(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())

	events, err := event.LoadFile(opts.Events)
	if err != nil {
		return nil, err
	}

	reg := identity.NewRegistry(logger)
	event.Replay(reg, events...)

	orphans := reg.ForgetUnusedAliases()

	logger.Info("discovery complete",
		slog.String("events", opts.Events),
		slog.Int("count", len(events)),
		slog.Int("types", reg.Len()),
		slog.Int("orphan_aliases", orphans),
	)

	return export.NewExporter(reg, logger), nil
}

// emit writes content to path, or to out when path is empty.
func emit(out io.Writer, path string, content []byte) error {
	if path != "" {
		return export.WriteFile(path, content)
	}

	_, err := out.Write(content)

	return err
}
