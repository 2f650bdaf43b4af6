package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/CTAG07/Drosera/pkg/fragstore"
	"github.com/CTAG07/Drosera/pkg/templating"
	"github.com/natefinch/atomic"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "./drosera.json", "path to the JSON config file")
	dataPath := flag.String("data", "", "path to a JSON view model file")
	outPath := flag.String("o", "", "output file (overrides the configured output path; empty writes to stdout)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("drosera %s (%s, built %s)\n", Version, Commit, BuildDate)
		return
	}

	if flag.NArg() != 1 {
		_, _ = fmt.Fprintln(os.Stderr, "usage: drosera [flags] <template-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0), *dataPath, *outPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "drosera: %v\n", err)
		os.Exit(1)
	}
}

// run loads the configuration, renders the template, and writes the result.
func run(configPath, templatePath, dataPath, outPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var logLevel slog.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	// Logs go to stderr so a stdout render stays pipeable.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	reader := templating.OSReader()
	if config.FragmentDatabasePath != "" {
		var db *sql.DB
		db, err = initDB(config.FragmentDatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open fragment database: %w", err)
		}
		defer func(db *sql.DB) {
			_ = db.Close()
		}(db)

		if err = fragstore.SetupSchema(db); err != nil {
			return fmt.Errorf("failed to set up fragment schema: %w", err)
		}

		var store *fragstore.Store
		store, err = fragstore.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create fragment store: %w", err)
		}
		defer store.Close()

		reader = store.Reader()
		logger.Info("Serving includes from fragment database", "path", config.FragmentDatabasePath)
	}

	doc, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	vm := templating.ViewModel{}
	if dataPath != "" {
		var data []byte
		data, err = os.ReadFile(dataPath)
		if err != nil {
			return fmt.Errorf("failed to read view model: %w", err)
		}
		if err = json.Unmarshal(data, &vm); err != nil {
			return fmt.Errorf("failed to parse view model: %w", err)
		}
	}

	engine := templating.NewEngine(logger, reader)
	result := engine.Render(context.Background(), string(doc), vm, config.BaseDir)

	if outPath == "" {
		outPath = config.OutputPath
	}
	if outPath == "" {
		fmt.Println(result)
		return nil
	}

	if err = atomic.WriteFile(outPath, strings.NewReader(result)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Rendered template", "template", templatePath, "output", outPath)
	return nil
}
