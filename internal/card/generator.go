package card

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"
)

const (
	// MinBINLength is the shortest prefix accepted by the Generator
	MinBINLength = 6

	// DefaultYearsAhead bounds the random expiry year: current+1 .. current+N
	DefaultYearsAhead = 5
)

// Generator builds Luhn-valid card numbers from a BIN
//
// The zero value is not usable, create one with NewGenerator.
// A Generator holds no mutable state and is safe for concurrent use:
// digits are drawn from crypto/rand, which serializes access internally.
type Generator struct {
	random     io.Reader
	now        func() time.Time
	yearsAhead int
}

// Option configures a Generator
type Option func(*Generator)

// WithRandom replaces the randomness source
// The reader must itself be safe for concurrent use if the Generator is shared
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// WithClock sets the clock used to pick default expiry years
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithYearsAhead sets the width of the default expiry window
// Values below 1 are ignored
func WithYearsAhead(years int) Option {
	return func(g *Generator) {
		if years >= 1 {
			g.yearsAhead = years
		}
	}
}

// NewGenerator creates a Generator backed by crypto/rand
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		random:     rand.Reader,
		now:        time.Now,
		yearsAhead: DefaultYearsAhead,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Number returns a card number that starts with bin and passes ValidateLuhn
//
// Process:
//  1. Check the BIN: at least 6 ASCII digits, shorter than the brand length
//  2. Append random digits up to brand length - 1 (none if already there)
//  3. Append the Luhn check digit
//
// Returns:
//   - string: the card number
//   - bool: false if bin breaks the preconditions above
//
// Example:
//
//	n, ok := g.Number("424242")   // 16 digits, "424242..."
//	n, ok := g.Number("378282")   // 15 digits (American Express)
func (g *Generator) Number(bin string) (string, bool) {
	bin = strings.TrimSpace(bin)
	if len(bin) < MinBINLength || !isDigits(bin) {
		return "", false
	}

	target := BrandFor(bin).Length
	if len(bin) > target-1 {
		return "", false
	}

	var b strings.Builder
	b.Grow(target)
	b.WriteString(bin)

	for b.Len() < target-1 {
		d, err := g.intn(10)
		if err != nil {
			return "", false
		}
		b.WriteByte(byte('0' + d))
	}

	payload := b.String()
	return payload + string(CheckDigit(payload)), true
}

// Card returns a full Record for bin
// Empty month, year or cvv are filled with random values:
//   - month: 01..12
//   - year: current year + 1 .. current year + yearsAhead
//   - cvv: 3 digits, 4 for brands that print a 4-digit code
//
// Supplied values are copied unchanged.
func (g *Generator) Card(bin, month, year, cvv string) (Record, bool) {
	number, ok := g.Number(bin)
	if !ok {
		return Record{}, false
	}

	month = strings.TrimSpace(month)
	if month == "" {
		m, err := g.intn(12)
		if err != nil {
			return Record{}, false
		}
		month = fmt.Sprintf("%02d", m+1)
	}

	year = strings.TrimSpace(year)
	if year == "" {
		offset, err := g.intn(g.yearsAhead)
		if err != nil {
			return Record{}, false
		}
		year = fmt.Sprintf("%04d", g.now().Year()+1+offset)
	}

	cvv = strings.TrimSpace(cvv)
	if cvv == "" {
		code, err := g.code(BrandFor(number).CVVLength)
		if err != nil {
			return Record{}, false
		}
		cvv = code
	}

	return Record{CC: number, Month: month, Year: year, CVV: cvv}, true
}

// Batch returns count cards for bin with random month, year and CVV
func (g *Generator) Batch(bin string, count int) ([]Record, bool) {
	if count < 1 {
		return nil, false
	}

	cards := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		rec, ok := g.Card(bin, "", "", "")
		if !ok {
			return nil, false
		}
		cards = append(cards, rec)
	}
	return cards, true
}

// BIN returns a random 6-digit BIN inside one of the brand's IIN ranges
//
// Example:
//
//	bin, ok := g.BIN("mastercard") // "5[1-5]xxxx" or "2221xx".."2720xx"
func (g *Generator) BIN(brandName string) (string, bool) {
	brand, ok := BrandByName(brandName)
	if !ok || len(brand.ranges) == 0 {
		return "", false
	}

	i, err := g.intn(len(brand.ranges))
	if err != nil {
		return "", false
	}
	r := brand.ranges[i]

	offset, err := g.intn(r.High - r.Low + 1)
	if err != nil {
		return "", false
	}

	var b strings.Builder
	b.Grow(MinBINLength)
	fmt.Fprintf(&b, "%0*d", r.Width, r.Low+offset)

	for b.Len() < MinBINLength {
		d, err := g.intn(10)
		if err != nil {
			return "", false
		}
		b.WriteByte(byte('0' + d))
	}

	return b.String(), true
}

// code returns a random number of exactly n digits without a leading zero
func (g *Generator) code(n int) (string, error) {
	low := 1
	for i := 1; i < n; i++ {
		low *= 10
	}
	v, err := g.intn(low*10 - low)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", low+v), nil
}

// intn returns a uniform int in [0, n)
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random digit: %w", err)
	}
	return int(v.Int64()), nil
}
