// Package commands contains CLI command implementations for cardtools.
package commands

import (
	"errors"
	"io"
	"log/slog"
)

// Errors returned to main, which prints them and exits non-zero.
var (
	// ErrInvalidCard is returned when a cc|mm|yyyy|cvv string fails parsing.
	ErrInvalidCard = errors.New("card number invalid: must be 13-19 digits and Luhn-valid")

	// ErrInvalidBIN is returned for a BIN the generator cannot use.
	ErrInvalidBIN = errors.New("BIN must be at least 6 digits and shorter than the card length")

	// ErrBINNotFound is returned when a BIN is missing from the database.
	ErrBINNotFound = errors.New("BIN not found")

	// ErrNoBINsForBrand is returned when the database holds no BIN of a brand.
	ErrNoBINsForBrand = errors.New("no matching BINs found in the database")
)

// NewLogger builds the JSON slog logger used by every command.
// Unknown levels fall back to info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
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

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
