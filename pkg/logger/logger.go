// Package logger holds the process-wide zerolog logger.
//
// main calls Init exactly once; everything else either receives the logger
// by injection or calls Get.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger built by Init.
type Options struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	// Unknown or empty values fall back to info.
	Level string
	// Pretty switches from JSON to the coloured console writer. Keep it off
	// in production so log collectors get structured output.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance *zerolog.Logger
)

// Init builds the shared logger. Repeat calls return the logger from the
// first call unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return *instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "menu-api").
		Logger()
	instance = &l
	return l
}

// Get returns the shared logger. Before Init runs it returns a plain JSON
// logger on stdout so early code paths still produce output.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return *instance
}

// Reset discards the shared logger so the next Init rebuilds it. Test use only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}
