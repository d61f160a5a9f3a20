// Package main provides the CLI entry point for emcraw.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Elietshi1004/emcraw/pkg/emcraw"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/config"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/observe"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/output"
)

var (
	cfgFile   string
	outputDir string
	formats   []string
	mode      string
	prefix    string
	pretty    bool
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emcraw [input.docx ...]",
		Short: "Extract EMC measurement data from RAW Word documents",
		Long: `emcraw extracts test configurations and their measurement tables
from RAW .docx reports, applies the conformity rules (margin and
verdict per row) and exports the result as CSV, XLSX or JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Path to YAML configuration file")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (overrides config)")
	rootCmd.Flags().StringSliceVar(&formats, "formats", nil, "Export formats: csv, xlsx, json (overrides config)")
	rootCmd.Flags().StringVar(&mode, "mode", "", "Extraction mode: light, standard, verbose (overrides config)")
	rootCmd.Flags().StringVar(&prefix, "sample-prefix", "", "Sample identifier prefix (overrides config)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log extraction events")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if len(formats) > 0 {
		cfg.Output.Formats = formats
	}
	if mode != "" {
		cfg.Extraction.Mode = mode
	}
	if prefix != "" {
		cfg.Extraction.SampleIDPrefix = prefix
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts, err := extractionOptions(cfg, logger)
	if err != nil {
		return err
	}
	fmtOpts := formatOptions(cfg)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, input := range args {
		if err := processFile(input, cfg, opts, fmtOpts, logger); err != nil {
			return err
		}
	}
	return nil
}

func processFile(input string, cfg *config.Config, opts emcraw.Options, fmtOpts output.Options, logger *zap.Logger) error {
	logger.Info("processing RAW document", zap.String("input", input))

	report, err := emcraw.Extract(input, opts)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", input, err)
	}
	logger.Info("extraction complete",
		zap.String("run_id", report.RunID),
		zap.Int("samples", len(report.Samples)))

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	base := filepath.Join(cfg.Output.Dir, "Processed_"+stem)

	for _, format := range cfg.Output.Formats {
		switch format {
		case "json":
			data, err := output.ToJSON(report, pretty)
			if err != nil {
				return fmt.Errorf("serializing %s: %w", input, err)
			}
			if err := os.WriteFile(base+".json", data, 0644); err != nil {
				return err
			}
		case "csv":
			f, err := os.Create(base + ".csv")
			if err != nil {
				return err
			}
			if err := output.WriteCSV(f, report, fmtOpts); err != nil {
				f.Close()
				return fmt.Errorf("writing CSV for %s: %w", input, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
		case "xlsx":
			if err := output.WriteXLSX(base+".xlsx", report, fmtOpts); err != nil {
				return fmt.Errorf("writing XLSX for %s: %w", input, err)
			}
		default:
			return fmt.Errorf("unknown output format: %s", format)
		}
		logger.Info("export written",
			zap.String("format", format),
			zap.String("path", base+"."+format))
	}
	return nil
}

func extractionOptions(cfg *config.Config, logger *zap.Logger) (emcraw.Options, error) {
	opts := emcraw.DefaultOptions()
	opts.SampleIDPrefix = cfg.Extraction.SampleIDPrefix
	opts.Workers = cfg.Extraction.Workers
	if verbose {
		opts.Observer = observe.NewZap(logger)
	}

	switch cfg.Extraction.Mode {
	case "light":
		opts.Mode = emcraw.ModeLight
	case "standard", "":
		opts.Mode = emcraw.ModeStandard
	case "verbose":
		opts.Mode = emcraw.ModeVerbose
	default:
		return opts, fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", cfg.Extraction.Mode)
	}
	return opts, nil
}

func formatOptions(cfg *config.Config) output.Options {
	opts := output.DefaultOptions()
	if cfg.Format.FreqDigitsBelow10 > 0 {
		opts.FreqDigitsBelow10 = cfg.Format.FreqDigitsBelow10
	}
	if cfg.Format.FreqDigitsFrom10 > 0 {
		opts.FreqDigitsFrom10 = cfg.Format.FreqDigitsFrom10
	}
	if cfg.Format.DBDigits > 0 {
		opts.DBDigits = cfg.Format.DBDigits
	}
	if cfg.Format.PassColor != "" {
		opts.PassColor = cfg.Format.PassColor
	}
	if cfg.Format.FailColor != "" {
		opts.FailColor = cfg.Format.FailColor
	}
	if cfg.Format.HeaderColor != "" {
		opts.HeaderColor = cfg.Format.HeaderColor
	}
	return opts
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
