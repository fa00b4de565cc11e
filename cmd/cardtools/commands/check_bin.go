package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/keraattin/cardtools/internal/bindb"
)

// RunCheckBIN looks up a 6-digit BIN and prints its details.
func RunCheckBIN(db *bindb.Database, logger *slog.Logger, w io.Writer, bin string) error {
	bin = strings.TrimSpace(bin)
	if len(bin) != bindb.BINLength || strings.Trim(bin, "0123456789") != "" {
		return fmt.Errorf("BIN must be %d digits, got %q", bindb.BINLength, bin)
	}

	entry, ok := db.Lookup(bin)
	if !ok {
		logger.Info("bin lookup miss", slog.String("bin", bin))
		return fmt.Errorf("%w: database contains %d entries", ErrBINNotFound, db.Count())
	}

	logger.Info("bin lookup hit", slog.String("bin", bin), slog.String("brand", entry.Brand))
	_, err := fmt.Fprintf(w, "BIN details:\n%sDatabase size: %d\n", formatEntry(entry), db.Count())
	return err
}
