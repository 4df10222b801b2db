package slog

import (
	"io"
	"log/slog"
	"os"

	microflag "github.com/San7o/micro-flag"
	"github.com/pkg/errors"
)

// Options declares the logging flags an application can splice into its
// flag table. Level accepts the slog level names (debug, info, warn,
// error), optionally with an offset like "warn+2"; empty means info.
type Options struct {
	Level string `flag:"name=log-level,help='set log level (debug, info, warn, error)'"`
	JSON  bool   `flag:"name=log-json,help=log in JSON format"`
}

// Flags returns the declarations for opts, ready to append to an
// application's flag table.
func (opts *Options) Flags() []microflag.Flag {
	return microflag.MustBind(opts)
}

// ConfigureWithHandlerOptions installs a default slog logger writing to w,
// honoring the parsed flag values. handlerOpts may be nil.
func (opts *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) error {
	var level slog.Level
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
	}

	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = level

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// Configure is ConfigureWithHandlerOptions with stderr and default
// handler options.
func (opts *Options) Configure() error {
	return opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
