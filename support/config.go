package support

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const Prefix = "COUNTER_"

// Environment is a process environment in os.Environ form.
type Environment []string

type Config struct {
	Listen        string `env:"listen"`
	Stream        string `env:"stream"`
	LogLevel      string `env:"log_level"`
	LogFormat     string `env:"log_format"`
	TraceExporter string `env:"trace_exporter"`
	OTLPEndpoint  string `env:"otlp_endpoint"`
	OTLPInsecure  bool   `env:"otlp_insecure"`
	JaegerURL     string `env:"jaeger_url"`
	Window        Window `env:",squash"`
}

// Window overrides the default window settings. Unset fields keep the
// defaults.
type Window struct {
	Width           *uint32 `env:"window_width"`
	Height          *uint32 `env:"window_height"`
	Resizable       *bool   `env:"window_resizable"`
	Decorations     *bool   `env:"window_decorations"`
	DefaultTextSize *uint16 `env:"default_text_size"`
	Antialiasing    *bool   `env:"antialiasing"`
}

func Defaults() Config {
	return Config{
		Listen:        ":9080",
		Stream:        "default",
		LogLevel:      "info",
		LogFormat:     "console",
		TraceExporter: "none",
		OTLPEndpoint:  "localhost:4317",
	}
}

// Load reads COUNTER_* variables over the defaults. COUNTER_LOG_LEVEL sets
// LogLevel, COUNTER_WINDOW_WIDTH sets Window.Width and so on.
func Load(environ Environment) (Config, error) {
	values := make(map[string]interface{})
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, Prefix) {
			continue
		}

		values[strings.ToLower(strings.TrimPrefix(key, Prefix))] = value
	}

	cfg := Defaults()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}

	if err := decoder.Decode(values); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.TraceExporter {
	case "none", "console", "otlp", "jaeger":
	default:
		return errors.Errorf("unknown trace exporter %q", cfg.TraceExporter)
	}

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf("unknown log format %q", cfg.LogFormat)
	}

	if cfg.Stream == "" {
		return errors.New("stream key must not be empty")
	}

	return nil
}
