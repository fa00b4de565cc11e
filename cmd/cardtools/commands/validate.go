package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/keraattin/cardtools/internal/card"
)

// RunValidate parses a cc|mm|yyyy|cvv string and prints the normalized record.
// Only the card number is checked; month, year and CVV are echoed as given.
func RunValidate(logger *slog.Logger, w io.Writer, input string) error {
	rec, ok := card.ParseCardInput(input)
	if !ok {
		logger.Info("card rejected")
		return ErrInvalidCard
	}

	brand := card.BrandFor(rec.CC)
	logger.Info("card accepted",
		slog.String("card", card.MaskCardNumber(rec.CC)),
		slog.String("brand", brand.Name),
	)

	_, err := fmt.Fprintf(w, "Card valid: %s\nBrand: %s\n", rec.String(), brand.DisplayName)
	return err
}
