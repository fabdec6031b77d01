package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oopdemos/patterns-go/example/shared/shell/config"
	"github.com/oopdemos/patterns-go/library"
)

// Config holds the command-line settings of the library example.
type Config struct {
	Logging  config.LoggingConfig
	Snapshot bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 2
	}

	logger := cfg.Logging.NewLogger(stderr)

	lib := library.NewExtendedLibrary()
	manager := library.NewManager(lib, logger)

	manager.AddBook("The Forest Song", "Lesya Ukrainka", "1912")
	manager.AddBook("Mina Mazailo", "Mykhailo Kotsiubynsky", "1910")
	manager.ShowBooks()

	manager.RemoveBook("Mina Mazailo")
	manager.ShowBooks()

	if cfg.Snapshot {
		data, err := manager.ExportBooks()
		if err != nil {
			return 1
		}
		logger.Info("Library snapshot", "books", string(data))
	}

	return 0
}

func parseFlags(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("library", flag.ContinueOnError)
	fs.SetOutput(output)

	logging := config.RegisterLoggingFlags(fs)
	snapshot := fs.Bool("snapshot", false, "Log the final catalog as JSON")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	loggingCfg, err := logging.Resolve()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Logging:  loggingCfg,
		Snapshot: *snapshot,
	}, nil
}
