package gasreport

import "fmt"

// Output formats for the rendered report.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config selects which contracts are reported and how the result is
// rendered.
type Config struct {
	// ReportFor limits the report to the named contracts. Empty, or
	// containing "*", reports every contract.
	ReportFor []string `yaml:"reportFor"`
	// Format is the output format, "table" or "json".
	Format string `yaml:"format" default:"table"`
	// LoggingLevel is the logging level to use.
	LoggingLevel string `yaml:"logging" default:"info"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q", c.Format)
	}

	return nil
}
