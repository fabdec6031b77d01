// Package config provides the command-line configuration shared by the example programs.
//
// It parses the logging flags (-log-level, -log-format) into a LoggingConfig and
// builds the *slog.Logger that the programs hand to their components.
//
// This package is part of the shell (infrastructure) layer.
package config
