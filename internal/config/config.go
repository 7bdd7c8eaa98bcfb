// =============================================================================
// Artifact Engine - Configuration Module
// =============================================================================
//
// This module is responsible for loading and validating the generation
// configuration. Configuration comes from a single YAML file; the generate
// command may override individual fields from CLI flags before validation.
//
// VALIDATION CONTRACT:
//   Validation runs once, before any document is generated. Every violation
//   wraps ErrInvalidConfiguration and is fatal to the whole batch: a bad page
//   capacity or tax-rate set must never surface as a per-document failure.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is wrapped by every preflight validation failure.
// Callers test for it with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// EntryBounds gives the inclusive entry-count range for one document type.
type EntryBounds struct {
	// Min is the minimum number of body entries, inclusive.
	Min int `yaml:"min"`

	// Max is the maximum number of body entries, inclusive.
	Max int `yaml:"max"`
}

// Config holds the full generation configuration.
type Config struct {
	// =========================================================================
	// BATCH COMPOSITION
	// =========================================================================

	// Invoices is the number of invoices to generate.
	// Default: 0
	Invoices int `yaml:"invoices"`

	// Receipts is the number of receipts to generate.
	// Default: 0
	Receipts int `yaml:"receipts"`

	// Statements is the number of bank statements to generate.
	// Default: 0
	Statements int `yaml:"statements"`

	// =========================================================================
	// ENTRY BOUNDS
	// =========================================================================

	// InvoiceItems bounds the line items per invoice.
	// Default: 1-8
	InvoiceItems EntryBounds `yaml:"invoice_items"`

	// ReceiptItems bounds the line items per receipt.
	// Default: 1-12
	ReceiptItems EntryBounds `yaml:"receipt_items"`

	// StatementTransactions bounds the transactions per bank statement.
	// Default: 10-300
	StatementTransactions EntryBounds `yaml:"statement_transactions"`

	// =========================================================================
	// CONSISTENCY SETTINGS
	// =========================================================================

	// TaxRates is the discrete set of tax rates drawn from for tax-bearing
	// documents. Every rate must lie in [0, 1].
	// Default: [0, 0.05, 0.20] (the UK VAT bands)
	TaxRates []float64 `yaml:"tax_rates"`

	// EntriesPerPage is the page capacity: the maximum number of body entries
	// rendered on one page. Maps to "transactions per page" for statements.
	// Must be positive.
	// Default: 50
	EntriesPerPage int `yaml:"entries_per_page"`

	// =========================================================================
	// REPRODUCIBILITY
	// =========================================================================

	// Seed is the optional batch seed. When set, each document's random draw
	// is seeded deterministically from this value and the document's ordinal,
	// so re-running the same batch reproduces identical documents regardless
	// of worker count. When unset, draws are non-deterministic.
	Seed *int64 `yaml:"seed"`

	// ReferenceDate anchors all generated dates ("issue date within the past
	// year" is relative to this date), format "2006-01-02". Seeded runs only
	// reproduce bit-identical documents when this is pinned too.
	// Default: today.
	ReferenceDate string `yaml:"reference_date"`

	// =========================================================================
	// LOCALE SETTINGS
	// =========================================================================

	// Currency is the ISO 4217 currency code for all documents.
	// Default: "GBP"
	Currency string `yaml:"currency"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// Workers is the number of documents fabricated concurrently.
	// Set to 1 for sequential generation.
	// Default: 4
	Workers int `yaml:"workers"`

	// OutputDir is the directory where ground-truth workbooks and error logs
	// are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults and returns
// it unvalidated (the generate command overlays CLI flags before calling
// Validate). A missing file is not an error: the defaults are returned, so
// the tool runs flag-only without a config.yaml present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InvoiceItems == (EntryBounds{}) {
		cfg.InvoiceItems = EntryBounds{Min: 1, Max: 8}
	}
	if cfg.ReceiptItems == (EntryBounds{}) {
		cfg.ReceiptItems = EntryBounds{Min: 1, Max: 12}
	}
	if cfg.StatementTransactions == (EntryBounds{}) {
		cfg.StatementTransactions = EntryBounds{Min: 10, Max: 300}
	}
	if cfg.TaxRates == nil {
		cfg.TaxRates = []float64{0, 0.05, 0.20}
	}
	if cfg.EntriesPerPage == 0 {
		cfg.EntriesPerPage = 50
	}
	if cfg.ReferenceDate == "" {
		cfg.ReferenceDate = time.Now().Format("2006-01-02")
	}
	if cfg.Currency == "" {
		cfg.Currency = "GBP"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration before any generation begins. Every
// returned error wraps ErrInvalidConfiguration and aborts the whole batch.
func (cfg *Config) Validate() error {
	if cfg.Invoices < 0 || cfg.Receipts < 0 || cfg.Statements < 0 {
		return fmt.Errorf("%w: document counts must not be negative", ErrInvalidConfiguration)
	}
	if cfg.Invoices+cfg.Receipts+cfg.Statements == 0 {
		return fmt.Errorf("%w: no documents requested (set at least one of invoices, receipts, statements)", ErrInvalidConfiguration)
	}

	if cfg.EntriesPerPage <= 0 {
		return fmt.Errorf("%w: entries_per_page must be positive (got %d)", ErrInvalidConfiguration, cfg.EntriesPerPage)
	}

	if len(cfg.TaxRates) == 0 {
		return fmt.Errorf("%w: tax_rates must not be empty", ErrInvalidConfiguration)
	}
	for _, rate := range cfg.TaxRates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%w: tax rate %v outside [0, 1]", ErrInvalidConfiguration, rate)
		}
	}

	bounds := []struct {
		name string
		b    EntryBounds
	}{
		{"invoice_items", cfg.InvoiceItems},
		{"receipt_items", cfg.ReceiptItems},
		{"statement_transactions", cfg.StatementTransactions},
	}
	for _, entry := range bounds {
		if entry.b.Min < 0 {
			return fmt.Errorf("%w: %s.min must not be negative (got %d)", ErrInvalidConfiguration, entry.name, entry.b.Min)
		}
		if entry.b.Max < entry.b.Min {
			return fmt.Errorf("%w: %s.max (%d) must not be below %s.min (%d)",
				ErrInvalidConfiguration, entry.name, entry.b.Max, entry.name, entry.b.Min)
		}
	}

	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1 (got %d)", ErrInvalidConfiguration, cfg.Workers)
	}

	if _, err := cfg.ReferenceTime(); err != nil {
		return fmt.Errorf("%w: reference_date: %v", ErrInvalidConfiguration, err)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (valid: debug, info, warn, error)", ErrInvalidConfiguration, cfg.LogLevel)
	}

	return nil
}

// ReferenceTime parses ReferenceDate into a time.Time at midnight UTC.
func (cfg *Config) ReferenceTime() (time.Time, error) {
	return time.Parse("2006-01-02", cfg.ReferenceDate)
}
