// Package report - JSON exporter
// Machine-readable output
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/keraattin/cardtools/internal/card"
)

// JSONExporter exports batches as indented JSON
type JSONExporter struct{}

// jsonBatch is the wire shape of a Batch
type jsonBatch struct {
	ID          string        `json:"id"`
	GeneratedAt string        `json:"generated_at"`
	BIN         string        `json:"bin"`
	Brand       string        `json:"brand"`
	Type        string        `json:"type,omitempty"`
	Issuer      string        `json:"issuer,omitempty"`
	Country     string        `json:"country"`
	Count       int           `json:"count"`
	Cards       []card.Record `json:"cards"`
}

// Export implements the Exporter interface for JSON format
//
// Example output:
//
//	{
//	  "id": "2b6c...",
//	  "generated_at": "2026-10-19T12:00:00Z",
//	  "bin": "424242",
//	  "brand": "VISA",
//	  "country": "UNITED STATES",
//	  "count": 1,
//	  "cards": [{"cc": "...", "month": "03", "year": "2029", "cvv": "482"}]
//	}
func (e *JSONExporter) Export(batch *Batch, w io.Writer) error {
	out := jsonBatch{
		ID:          batch.ID.String(),
		GeneratedAt: batch.GeneratedAt.Format(time.RFC3339),
		BIN:         batch.BIN,
		Brand:       batch.Brand,
		Type:        batch.Type,
		Issuer:      batch.Issuer,
		Country:     batch.Country,
		Count:       len(batch.Cards),
		Cards:       batch.Cards,
	}
	if out.Cards == nil {
		out.Cards = []card.Record{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
