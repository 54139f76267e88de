package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ethpandaops/gas-reporter/pkg/gasreport"
	"github.com/ethpandaops/gas-reporter/pkg/trace"
)

var (
	log        = logrus.New()
	configFile string
	reportFor  []string
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gas-reporter [trace file...]",
	Short: "Aggregates contract gas usage from recorded call traces.",
	Long:  `Aggregates contract gas usage from recorded call traces.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initCommon()

		return runReport(cmd.Context(), args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (optional)")
	rootCmd.Flags().StringSliceVar(&reportFor, "report-for", nil, "contract names to report on (default: all)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON instead of a table")
}

func initCommon() {

}

func runReport(ctx context.Context, files []string) error {
	config, err := loadConfigFromFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(reportFor) > 0 {
		config.ReportFor = reportFor
	}

	if jsonOutput {
		config.Format = gasreport.FormatJSON
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := logrus.ParseLevel(config.LoggingLevel)
	if err != nil {
		log.WithError(err).Warn("Invalid logging level, using info")

		level = logrus.InfoLevel
	}

	log.SetLevel(level)

	arenas, err := loadArenas(ctx, files)
	if err != nil {
		return err
	}

	report := gasreport.New(config.ReportFor, trace.DefaultClassifier{})
	report.Analyze(arenas...)
	report = report.Finalize()

	switch config.Format {
	case gasreport.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		report.WriteTable(os.Stdout)
	}

	log.WithFields(logrus.Fields{
		"trees":     len(arenas),
		"contracts": len(report.Contracts),
	}).Info("Gas report complete")

	return nil
}

// loadArenas decodes the trace files concurrently. Analysis itself stays
// serial: the report is mutated by a single owner.
func loadArenas(ctx context.Context, files []string) ([]*trace.Arena, error) {
	arenas := make([]*trace.Arena, len(files))

	g, _ := errgroup.WithContext(ctx)

	for i, file := range files {
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read trace file %s: %w", file, err)
			}

			arena := &trace.Arena{}
			if err := json.Unmarshal(data, arena); err != nil {
				return fmt.Errorf("failed to decode trace file %s: %w", file, err)
			}

			if err := arena.Validate(); err != nil {
				return fmt.Errorf("invalid trace file %s: %w", file, err)
			}

			arenas[i] = arena

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return arenas, nil
}

func loadConfigFromFile(file string) (*gasreport.Config, error) {
	config := &gasreport.Config{}

	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	if file == "" {
		return config, nil
	}

	yamlFile, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	type plain gasreport.Config

	if err := yaml.Unmarshal(yamlFile, (*plain)(config)); err != nil {
		return nil, err
	}

	return config, nil
}
