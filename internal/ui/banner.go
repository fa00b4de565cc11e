// Package ui handles user interface elements
// This file provides the status banner
package ui

import (
	"fmt"
	"io"
	"strings"
)

// ShowBanner writes the application banner to w
//
// Parameters:
//   - w: Destination, usually os.Stdout
//   - version: Application version (e.g., "1.0.0")
//
// Example:
//
//	ui.ShowBanner(os.Stdout, "1.0.0")
func ShowBanner(w io.Writer, version string) {
	fmt.Fprintln(w, `
    ╔══════════════════════════════════════════════════════════╗
    ║     cardtools - test card data toolkit                   ║
    ║     Version: `+padRight(version, 44)+`║
    ║     Purpose: Luhn checks, BIN lookup, test card numbers  ║
    ╚══════════════════════════════════════════════════════════╝`)
}

// ShowStatus writes the live status block shown by the status command
//
// Example output:
//
//	Status
//	• BIN Database: 11 entries
//	• Brands: amex, discover, mastercard, visa
func ShowStatus(w io.Writer, binCount int, brands []string) {
	fmt.Fprintln(w, "Status")
	fmt.Fprintf(w, "• BIN Database: %d entries\n", binCount)
	if len(brands) > 0 {
		fmt.Fprintf(w, "• Brands: %s\n", strings.Join(brands, ", "))
	}
}

// padRight pads s with spaces to width so the banner border lines up
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
