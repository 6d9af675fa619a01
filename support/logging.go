package support

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func Logger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, errors.Wrap(err, "invalid log level")
	}

	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
