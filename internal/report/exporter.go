// Package report - Exporter interface
// This file defines the interface for all batch exporters
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Exporter defines the interface that all output formats implement
type Exporter interface {
	// Export writes the batch to w in the specific format
	Export(batch *Batch, w io.Writer) error
}

// exporters maps a --format value to its Exporter
var exporters = map[string]Exporter{
	"text": &TXTExporter{},
	"json": &JSONExporter{},
	"csv":  &CSVExporter{},
}

// ExporterFor returns the Exporter for a format name
//
// Example:
//
//	exp, err := report.ExporterFor("json")
//	if err != nil {
//	    return err
//	}
//	return exp.Export(batch, os.Stdout)
func ExporterFor(format string) (Exporter, error) {
	exp, ok := exporters[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("invalid format: %s (valid options: %s)", format, strings.Join(Formats(), ", "))
	}
	return exp, nil
}

// Formats returns the supported format names, sorted
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
