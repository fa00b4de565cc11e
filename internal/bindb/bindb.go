// Package bindb - BIN reference dataset
//
// This package loads the bundled BIN database (CSV) and answers lookups
// by the first six digits of a card number.
//
// The database is loaded once at startup and never modified afterwards,
// so a *Database can be shared by any number of goroutines.
//
// USAGE:
//
//	db, err := bindb.Load("internal/bindb/bindata/bins.csv")
//	if err != nil {
//	    return err
//	}
//
//	entry, ok := db.Lookup("424242")
//	if ok {
//	    fmt.Printf("Issuer: %s (%s)\n", entry.Issuer, entry.Country)
//	}
package bindb

import (
	"crypto/rand"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"
)

// DefaultPath is where the bundled database lives relative to the repo root
const DefaultPath = "internal/bindb/bindata/bins.csv"

// BINLength is the number of leading digits used as the lookup key
const BINLength = 6

// header is the expected first CSV row
var header = []string{"bin", "brand", "type", "category", "issuer", "country"}

// Entry is one row of the BIN database
type Entry struct {
	BIN      string `json:"bin"`
	Brand    string `json:"brand"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Issuer   string `json:"issuer"`
	Country  string `json:"country"`
}

// Database holds all entries indexed by BIN and by brand
type Database struct {
	byBIN   map[string]Entry
	byBrand map[string][]Entry
}

// Load reads the CSV database at path
//
// Returns:
//   - *Database: the loaded database
//   - error: if the file cannot be opened or any row is malformed
func Load(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open BIN database '%s': %w", path, err)
	}
	defer f.Close()

	db, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse BIN database '%s': %w", path, err)
	}
	return db, nil
}

// Parse reads a CSV BIN database from r
//
// Format:
//
//	bin,brand,type,category,issuer,country
//	424242,VISA,CREDIT,CLASSIC,TEST BANK,UNITED STATES
//
// Rules:
//   - the header row is required and must match exactly (case-insensitive)
//   - every BIN must be exactly 6 ASCII digits
//   - duplicate BINs keep the first row
func Parse(r io.Reader) (*Database, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty BIN database")
		}
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(first[i]), col) {
			return nil, fmt.Errorf("invalid header column %d: got %q, want %q", i+1, first[i], col)
		}
	}

	db := &Database{
		byBIN:   make(map[string]Entry),
		byBrand: make(map[string][]Entry),
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		entry := Entry{
			BIN:      strings.TrimSpace(row[0]),
			Brand:    strings.TrimSpace(row[1]),
			Type:     strings.TrimSpace(row[2]),
			Category: strings.TrimSpace(row[3]),
			Issuer:   strings.TrimSpace(row[4]),
			Country:  strings.TrimSpace(row[5]),
		}

		if !validBIN(entry.BIN) {
			return nil, fmt.Errorf("line %d: BIN %q must be %d digits", line, entry.BIN, BINLength)
		}

		if _, exists := db.byBIN[entry.BIN]; exists {
			continue
		}

		db.byBIN[entry.BIN] = entry
		brand := strings.ToLower(entry.Brand)
		db.byBrand[brand] = append(db.byBrand[brand], entry)
	}

	// Keep per-brand slices ordered so Random is reproducible with a fixed source
	for brand := range db.byBrand {
		entries := db.byBrand[brand]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].BIN < entries[j].BIN
		})
	}

	return db, nil
}

// Lookup returns the entry for the first six digits of bin
//
// Accepts a bare BIN or a full card number.
func (db *Database) Lookup(bin string) (Entry, bool) {
	bin = strings.TrimSpace(bin)
	if len(bin) < BINLength {
		return Entry{}, false
	}

	entry, ok := db.byBIN[bin[:BINLength]]
	return entry, ok
}

// Random returns a random entry of the given brand (case-insensitive)
//
// Returns false when the brand has no entries.
func (db *Database) Random(brand string) (Entry, bool) {
	return db.random(rand.Reader, brand)
}

func (db *Database) random(source io.Reader, brand string) (Entry, bool) {
	entries := db.byBrand[strings.ToLower(strings.TrimSpace(brand))]
	if len(entries) == 0 {
		return Entry{}, false
	}

	n, err := rand.Int(source, big.NewInt(int64(len(entries))))
	if err != nil {
		return Entry{}, false
	}
	return entries[n.Int64()], true
}

// Count returns the number of distinct BINs loaded
func (db *Database) Count() int {
	return len(db.byBIN)
}

// Brands returns the lower-case brand names present, sorted
func (db *Database) Brands() []string {
	brands := make([]string, 0, len(db.byBrand))
	for b := range db.byBrand {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

func validBIN(bin string) bool {
	if len(bin) != BINLength {
		return false
	}
	for i := 0; i < len(bin); i++ {
		if bin[i] < '0' || bin[i] > '9' {
			return false
		}
	}
	return true
}
