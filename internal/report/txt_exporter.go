// Package report - Plain text exporter
// Human-readable output for the terminal
package report

import (
	"fmt"
	"io"
	"strings"
)

// TXTExporter writes a short header followed by numbered cc|mm|yyyy|cvv lines
type TXTExporter struct{}

// Export implements the Exporter interface for plain text format
//
// Example output:
//
//	Generated cards
//	BIN: 424242
//	Brand: VISA
//	Country: UNITED STATES
//
//	1. 4242421234567897|03|2029|482
//	2. ...
func (e *TXTExporter) Export(batch *Batch, w io.Writer) error {
	var content strings.Builder

	content.WriteString("Generated cards\n")
	content.WriteString(fmt.Sprintf("BIN: %s\n", batch.BIN))
	content.WriteString(fmt.Sprintf("Brand: %s\n", batch.Brand))
	if batch.Issuer != "" {
		content.WriteString(fmt.Sprintf("Issuer: %s\n", batch.Issuer))
	}
	content.WriteString(fmt.Sprintf("Country: %s\n", batch.Country))
	content.WriteString(fmt.Sprintf("Batch: %s\n", batch.ID))
	content.WriteString("\n")

	for i, c := range batch.Cards {
		content.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.String()))
	}

	_, err := io.WriteString(w, content.String())
	return err
}
