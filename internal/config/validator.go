// Package config - Validator handles configuration validation
package config

import (
	"fmt"

	validation "github.com/jellydator/validation"
)

// validLogLevels are the levels understood by the slog setup in commands
var validLogLevels = []interface{}{"debug", "info", "warn", "error"}

// Validate checks if the configuration is valid and usable
//
// Validation checks:
//   - BIN database path is set
//   - Log level is one of debug/info/warn/error
//   - Batch sizes are positive and the default fits under the maximum
//   - Expiry window is between 1 and 20 years
//
// Returns:
//   - error: Descriptive error if validation fails, nil if valid
func Validate(cfg *Config) error {
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.BinDBPath, validation.Required),
		validation.Field(&cfg.LogLevel, validation.Required, validation.In(validLogLevels...)),
		validation.Field(&cfg.MaxBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&cfg.DefaultBatchSize,
			validation.Required,
			validation.Min(1),
			validation.Max(cfg.MaxBatchSize),
		),
		validation.Field(&cfg.ExpiryYearsAhead, validation.Required, validation.Min(1), validation.Max(20)),
	)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
