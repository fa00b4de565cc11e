package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/keraattin/cardtools/internal/bindb"
	"github.com/keraattin/cardtools/internal/card"
	"github.com/keraattin/cardtools/internal/report"
)

// GenerateOptions carries the flags of the generate command.
type GenerateOptions struct {
	BIN    string
	Month  string
	Year   string
	CVV    string
	Count  int
	Format string
}

// RunGenerate generates opts.Count cards from opts.BIN and writes them to w.
// Empty month, year or CVV are randomized per card. db may be nil, in which
// case the batch header falls back to the built-in brand table.
func RunGenerate(
	gen *card.Generator,
	db *bindb.Database,
	logger *slog.Logger,
	w io.Writer,
	opts GenerateOptions,
	maxBatch int,
) error {
	if opts.Count < 1 || opts.Count > maxBatch {
		return fmt.Errorf("count must be between 1 and %d, got %d", maxBatch, opts.Count)
	}

	exporter, err := report.ExporterFor(opts.Format)
	if err != nil {
		return err
	}

	cards := make([]card.Record, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		rec, ok := gen.Card(opts.BIN, opts.Month, opts.Year, opts.CVV)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidBIN, opts.BIN)
		}
		cards = append(cards, rec)
	}

	var entry *bindb.Entry
	if db != nil {
		if e, ok := db.Lookup(opts.BIN); ok {
			entry = &e
		}
	}

	batch := report.NewBatch(opts.BIN, entry, cards)
	logger.Info("cards generated",
		slog.String("batch_id", batch.ID.String()),
		slog.String("bin", opts.BIN),
		slog.Int("count", len(cards)),
		slog.Bool("bin_in_database", entry != nil),
	)

	return exporter.Export(batch, w)
}
