// Package report handles output of generated card batches
// A Batch is built once by the generate command and then handed to an Exporter
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/keraattin/cardtools/internal/bindb"
	"github.com/keraattin/cardtools/internal/card"
)

// Batch is one run of the generate command
type Batch struct {
	// Metadata
	ID          uuid.UUID // Unique batch ID, printed so a run can be referenced later
	GeneratedAt time.Time // When the batch was built (UTC)

	// Source BIN and what the database knows about it
	BIN     string // BIN the cards were generated from
	Brand   string // Brand display name ("Visa", "American Express", ...)
	Type    string // From the BIN database, empty if unknown
	Issuer  string // From the BIN database, empty if unknown
	Country string // From the BIN database, "Unknown" if not found

	// Results
	Cards []card.Record
}

// NewBatch creates a Batch for cards generated from bin
//
// Parameters:
//   - bin: the BIN passed to the generator
//   - entry: BIN database entry, nil if the BIN is not in the database
//   - cards: generated cards
//
// Brand falls back to the built-in brand table when entry is nil
func NewBatch(bin string, entry *bindb.Entry, cards []card.Record) *Batch {
	b := &Batch{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		BIN:         bin,
		Brand:       card.BrandFor(bin).DisplayName,
		Country:     "Unknown",
		Cards:       cards,
	}

	if entry != nil {
		b.Brand = entry.Brand
		b.Type = entry.Type
		b.Issuer = entry.Issuer
		b.Country = entry.Country
	}

	return b
}
