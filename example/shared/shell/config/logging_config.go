package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Supported log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = LogFormatText
)

// ErrInvalidLogFormat is returned for a -log-format value other than text or json.
var ErrInvalidLogFormat = errors.New("invalid log format")

// ErrInvalidLogLevel is returned for a -log-level value slog cannot parse.
var ErrInvalidLogLevel = errors.New("invalid log level")

// LoggingConfig holds the logging settings of an example program.
type LoggingConfig struct {
	Level  slog.Level
	Format string
}

// DefaultLoggingConfig returns INFO level text logging.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  slog.LevelInfo,
		Format: defaultLogFormat,
	}
}

// LoggingFlags holds the raw logging flag values until they are validated.
type LoggingFlags struct {
	level  *string
	format *string
}

// RegisterLoggingFlags adds -log-level and -log-format to the flag set.
// Call Resolve on the result after the flag set was parsed.
func RegisterLoggingFlags(fs *flag.FlagSet) *LoggingFlags {
	return &LoggingFlags{
		level:  fs.String("log-level", defaultLogLevel, "Log level: debug, info, warn or error"),
		format: fs.String("log-format", defaultLogFormat, "Log format: text or json"),
	}
}

// Resolve validates the parsed flag values.
func (f *LoggingFlags) Resolve() (LoggingConfig, error) {
	cfg := DefaultLoggingConfig()

	if err := cfg.Level.UnmarshalText([]byte(*f.level)); err != nil {
		return LoggingConfig{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, *f.level)
	}

	format := strings.ToLower(strings.TrimSpace(*f.format))
	switch format {
	case LogFormatText, LogFormatJSON:
		cfg.Format = format
	default:
		return LoggingConfig{}, fmt.Errorf("%w: %q", ErrInvalidLogFormat, *f.format)
	}

	return cfg, nil
}

// ParseLoggingFlags parses only the logging flags from args.
func ParseLoggingFlags(name string, args []string) (LoggingConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	logging := RegisterLoggingFlags(fs)

	if err := fs.Parse(args); err != nil {
		return LoggingConfig{}, err
	}

	return logging.Resolve()
}

// NewLogger creates a *slog.Logger writing to w with the configured level and format.
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level}

	if c.Format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
