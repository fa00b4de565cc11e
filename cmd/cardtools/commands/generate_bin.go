package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/keraattin/cardtools/internal/bindb"
	"github.com/keraattin/cardtools/internal/card"
)

// BIN sources accepted by generate-bin.
const (
	SourceRandom   = "random"
	SourceDatabase = "database"
)

// RunGenerateBIN prints a BIN for brand, either synthesized from the brand's
// IIN ranges or picked from the BIN database.
func RunGenerateBIN(
	gen *card.Generator,
	db *bindb.Database,
	logger *slog.Logger,
	w io.Writer,
	brand string,
	source string,
) error {
	brand = strings.ToLower(strings.TrimSpace(brand))

	switch strings.ToLower(strings.TrimSpace(source)) {
	case SourceRandom:
		bin, ok := gen.BIN(brand)
		if !ok {
			return fmt.Errorf("unknown brand: %s (valid options: %s)", brand, strings.Join(card.Brands(), ", "))
		}
		logger.Debug("bin generated", slog.String("brand", brand), slog.String("source", SourceRandom))
		_, err := fmt.Fprintf(w, "Generated BIN: %s\n", bin)
		return err

	case SourceDatabase:
		if db == nil {
			return bindb.ErrNotInitialized
		}
		entry, ok := db.Random(brand)
		if !ok {
			return fmt.Errorf("%w for brand %q", ErrNoBINsForBrand, brand)
		}
		logger.Debug("bin picked", slog.String("brand", brand), slog.String("source", SourceDatabase))
		_, err := fmt.Fprintf(w, "BIN from database:\n%s", formatEntry(entry))
		return err

	default:
		return fmt.Errorf("invalid source: %s (valid options: %s, %s)", source, SourceRandom, SourceDatabase)
	}
}

// formatEntry renders a BIN database entry one field per line.
func formatEntry(e bindb.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BIN: %s\n", e.BIN)
	fmt.Fprintf(&b, "Brand: %s\n", e.Brand)
	fmt.Fprintf(&b, "Type: %s\n", e.Type)
	fmt.Fprintf(&b, "Category: %s\n", e.Category)
	fmt.Fprintf(&b, "Issuer: %s\n", e.Issuer)
	fmt.Fprintf(&b, "Country: %s\n", e.Country)
	return b.String()
}
