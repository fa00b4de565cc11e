package card

import (
	"strconv"
	"strings"
)

// DefaultLength and DefaultCVVLength apply to any BIN outside the brand table
const (
	DefaultLength    = 16
	DefaultCVVLength = 3
)

// prefixRange is an inclusive IIN range of a fixed width
// Example: {2221, 2720, 4} covers Mastercard's 2-series
type prefixRange struct {
	Low   int
	High  int
	Width int
}

// contains reports whether the first Width digits of bin fall in the range
func (r prefixRange) contains(bin string) bool {
	if len(bin) < r.Width {
		return false
	}
	n, err := strconv.Atoi(bin[:r.Width])
	if err != nil {
		return false
	}
	return n >= r.Low && n <= r.High
}

// Brand describes the card layout of a network
type Brand struct {
	// Name is the lower-case name used on the command line
	// Example: "visa", "amex"
	Name string

	// DisplayName is shown to the user
	DisplayName string

	// Length is the total card number length including the check digit
	Length int

	// CVVLength is the number of digits printed as the security code
	CVVLength int

	ranges []prefixRange
}

// brandTable lists the supported networks
// Order matters: the first matching range wins in BrandFor
var brandTable = []Brand{
	{
		Name:        "amex",
		DisplayName: "American Express",
		Length:      15,
		CVVLength:   4,
		ranges:      []prefixRange{{34, 34, 2}, {37, 37, 2}},
	},
	{
		Name:        "visa",
		DisplayName: "Visa",
		Length:      16,
		CVVLength:   3,
		ranges:      []prefixRange{{4, 4, 1}},
	},
	{
		Name:        "mastercard",
		DisplayName: "Mastercard",
		Length:      16,
		CVVLength:   3,
		// Legacy 51-55 and the 2-series introduced in 2014
		ranges: []prefixRange{{51, 55, 2}, {2221, 2720, 4}},
	},
	{
		Name:        "discover",
		DisplayName: "Discover",
		Length:      16,
		CVVLength:   3,
		ranges:      []prefixRange{{6011, 6011, 4}, {644, 649, 3}, {65, 65, 2}},
	},
}

// unknownBrand is returned by BrandFor when no range matches
var unknownBrand = Brand{
	Name:        "unknown",
	DisplayName: "Unknown",
	Length:      DefaultLength,
	CVVLength:   DefaultCVVLength,
}

// BrandFor returns the brand whose IIN ranges contain bin
// A BIN outside every range gets the 16-digit, 3-digit CVV default
//
// Example:
//
//	BrandFor("378282").Length // 15
//	BrandFor("424242").Length // 16
func BrandFor(bin string) Brand {
	for _, b := range brandTable {
		for _, r := range b.ranges {
			if r.contains(bin) {
				return b
			}
		}
	}
	return unknownBrand
}

// BrandByName looks up a brand by its command-line name, case-insensitive
func BrandByName(name string) (Brand, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range brandTable {
		if b.Name == name {
			return b, true
		}
	}
	return Brand{}, false
}

// Brands returns the names of all supported brands in table order
func Brands() []string {
	names := make([]string, 0, len(brandTable))
	for _, b := range brandTable {
		names = append(names, b.Name)
	}
	return names
}
