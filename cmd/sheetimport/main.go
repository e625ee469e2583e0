// Package main provides the CLI entry point for sheetimport.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetimport/pkg/sheetimport"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/output"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/parser"
)

// envConfig holds defaults taken from the environment (and an optional .env).
type envConfig struct {
	Columns  string `env:"SHEETIMPORT_COLUMNS"`
	Timezone string `env:"SHEETIMPORT_TIMEZONE" envDefault:"UTC"`
	Pretty   bool   `env:"SHEETIMPORT_PRETTY"`
	Password string `env:"SHEETIMPORT_PASSWORD"`
}

var (
	outputPath  string
	pretty      bool
	columnsPath string
	timezone    string
	password    string
	verbose     bool
	raw         bool
)

func main() {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid .env: %v\n", err)
		os.Exit(1)
	}

	cfg := envConfig{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment: %v\n", err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv loads environment files, defaulting to ./.env. Missing files
// are skipped.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func newRootCmd(cfg envConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetimport [input.xlsx|-]",
		Short: "Convert spreadsheet rows into typed JSON records",
		Long: `sheetimport reads the first sheet of an xlsx workbook, checks its header
row against a column configuration and outputs one JSON record per non-blank row.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", cfg.Pretty, "Pretty-print JSON output")
	rootCmd.Flags().StringVarP(&columnsPath, "columns", "c", cfg.Columns, "Column configuration file (YAML or JSON)")
	rootCmd.Flags().StringVar(&timezone, "timezone", cfg.Timezone, "Reference time zone for date columns")
	rootCmd.Flags().StringVar(&password, "password", cfg.Password, "Workbook password")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to stderr")
	rootCmd.Flags().BoolVar(&raw, "raw", false, "Dump the first sheet's cells instead of records")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	input, err := openInput(cmd, inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	var jsonData []byte
	if raw {
		sheet, err := parser.ReadFirstSheet(input, parser.ReadOptions{Password: password})
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		if jsonData, err = output.SheetToJSON(sheet, pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	} else {
		records, err := extract(input, logger)
		if err != nil {
			return err
		}
		if jsonData, err = output.ToJSON(records, pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func extract(input io.Reader, logger *slog.Logger) ([]models.Record, error) {
	if columnsPath == "" {
		return nil, fmt.Errorf("no column configuration: use --columns or SHEETIMPORT_COLUMNS")
	}
	columns, err := sheetimport.LoadColumns(columnsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid column configuration: %w", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	extractor := sheetimport.New(columns,
		sheetimport.WithLocation(loc),
		sheetimport.WithPassword(password),
		sheetimport.WithLogger(logger),
	)
	logger.Debug("column configuration loaded", "path", columnsPath, "columns", extractor.Columns())

	records, err := extractor.ExtractReader(input)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	return records, nil
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return os.Open(path)
}
