package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mkaraduman/legal-calculators/internal/config"
	"github.com/mkaraduman/legal-calculators/internal/session"
	"github.com/mkaraduman/legal-calculators/pkg/constants"
	"github.com/mkaraduman/legal-calculators/pkg/output"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// readInput loads the calculator input document from a file, or from stdin
// when the path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	calculatorName := flag.String("calculator", "", "calculator to run (see -list)")
	inputLocation := flag.String("input", "-", "path to the JSON input document, or - for stdin")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	list := flag.Bool("list", false, "list the available calculators and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(session.Names(), "\n"))
		return
	}

	// Load the config file to get logging configuration; a missing default
	// config file falls back to the built-in tariff table.
	conf := &config.Configuration{}
	if _, err := os.Stat(*configLocation); err == nil || *configLocation != constants.DefaultConfigFile {
		conf, err = config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}
	switch outputFormat {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
	default:
		logger.Fatal(fmt.Sprintf("invalid output format %s, expecting pretty, csv, or json", outputFormat),
			zap.String("op", "main"),
		)
	}

	if *calculatorName == "" {
		logger.Fatal("no calculator selected, use -calculator (see -list)",
			zap.String("op", "main"),
		)
	}
	run, ok := session.Get(*calculatorName)
	if !ok {
		logger.Fatal(fmt.Sprintf("unknown calculator %s, expecting one of %s", *calculatorName, strings.Join(session.Names(), ", ")),
			zap.String("op", "main"),
		)
	}

	// Merge the configured tariff overrides over the built-in table.
	table, err := conf.Table()
	if err != nil {
		logger.Fatal("failed to build tariff table",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	raw, err := readInput(*inputLocation)
	if err != nil {
		logger.Fatal("failed to read input document",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	evaluation, err := run(raw, table, time.Now())
	if err != nil {
		logger.Fatal("failed to evaluate input",
			zap.String("op", "main"),
			zap.String("calculator", *calculatorName),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(evaluation)
	case constants.OutputFormatCSV:
		output.CsvFormat(evaluation)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(evaluation); err != nil {
			logger.Fatal("failed to encode evaluation",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if evaluation.Outcome == session.OutcomeInvalid {
		logger.Warn("input failed validation",
			zap.String("op", "main"),
			zap.String("calculator", *calculatorName),
			zap.Int("errors", len(evaluation.Errors)),
		)
		os.Exit(1)
	}
}
