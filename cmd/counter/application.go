package main

import (
	"context"
	"os"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/stores/memory"
	"github.com/weegigs/wee-counter-go/support"
	"github.com/weegigs/wee-counter-go/we"
)

type Application struct {
	Config   support.Config
	Logger   *zerolog.Logger
	Program  counter.Program
	Settings counter.Settings
	Tracing  *sdktrace.TracerProvider
}

func NewLogger(cfg support.Config) (*zerolog.Logger, error) {
	logger, err := support.Logger(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	return &logger, nil
}

func NewTracing(ctx context.Context, cfg support.Config) (*sdktrace.TracerProvider, func(), error) {
	return support.Tracing(ctx, cfg, os.Stderr)
}

func NewJournal() *memory.Journal {
	return memory.NewJournal()
}

func NewCounterProgram(journal we.Journal, cfg support.Config, logger *zerolog.Logger) counter.Program {
	return counter.NewProgram(
		journal,
		we.WithStream[counter.Counter](we.StreamId{Type: counter.EntityType.String(), Key: cfg.Stream}),
		we.WithLogger[counter.Counter](logger),
	)
}

// NewSettings applies the configured window overrides to the defaults.
func NewSettings(cfg support.Config) counter.Settings {
	settings := counter.DefaultSettings()
	window := cfg.Window

	if window.Width != nil {
		settings.Window.Width = *window.Width
	}
	if window.Height != nil {
		settings.Window.Height = *window.Height
	}
	if window.Resizable != nil {
		settings.Window.Resizable = *window.Resizable
	}
	if window.Decorations != nil {
		settings.Window.Decorations = *window.Decorations
	}
	if window.DefaultTextSize != nil {
		settings.DefaultTextSize = *window.DefaultTextSize
	}
	if window.Antialiasing != nil {
		settings.Antialiasing = *window.Antialiasing
	}

	return settings
}

var Live = wire.NewSet(
	support.Load,
	NewLogger,
	NewTracing,
	NewJournal,
	wire.Bind(new(we.Journal), new(*memory.Journal)),
	NewCounterProgram,
	NewSettings,
	wire.Struct(new(Application), "*"),
)
