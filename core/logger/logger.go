package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type formatter int

const (
	textFormat formatter = iota
	jsonFormat
)

type config struct {
	level   slog.Leveler
	format  formatter
	output  io.Writer
	attrs   []slog.Attr
	handler *slog.HandlerOptions
}

// Option configures the logger built by New.
type Option func(*config)

// New builds a *slog.Logger. Without options it writes text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: textFormat,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hopts := cfg.handler
	if hopts == nil {
		hopts = &slog.HandlerOptions{}
	}
	if hopts.Level == nil {
		hopts.Level = cfg.level
	}

	var h slog.Handler
	switch cfg.format {
	case jsonFormat:
		h = slog.NewJSONHandler(cfg.output, hopts)
	default:
		h = slog.NewTextHandler(cfg.output, hopts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}

	return slog.New(h)
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		if level != nil {
			c.level = level
		}
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) { c.format = jsonFormat }
}

// WithTextFormatter switches output to logfmt-style text.
func WithTextFormatter() Option {
	return func(c *config) { c.format = textFormat }
}

// WithOutput sets the destination writer. Nil keeps the default.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr attaches attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithHandlerOptions passes raw handler options through.
// A Level set here wins over WithLevel.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) { c.handler = opts }
}

// WithDevelopment configures text output at debug level tagged with the app name.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.format = textFormat
		c.attrs = append(c.attrs, slog.String("app", app), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level tagged with the app name.
func WithProduction(app string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.format = jsonFormat
		c.attrs = append(c.attrs, slog.String("app", app), slog.String("env", "production"))
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a slog level.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	if l != nil {
		slog.SetDefault(l)
	}
}
