// Package report - CSV exporter
// Spreadsheet-friendly output, one card per row
package report

import (
	"encoding/csv"
	"io"
)

// CSVExporter exports batches in CSV format
type CSVExporter struct{}

// Export implements the Exporter interface for CSV format
//
// CSV Structure:
//
//	cc,month,year,cvv,bin,brand,country
//	4242421234567897,03,2029,482,424242,VISA,UNITED STATES
func (e *CSVExporter) Export(batch *Batch, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"cc", "month", "year", "cvv", "bin", "brand", "country"}); err != nil {
		return err
	}

	for _, c := range batch.Cards {
		row := []string{c.CC, c.Month, c.Year, c.CVV, batch.BIN, batch.Brand, batch.Country}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
