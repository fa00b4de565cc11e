package card

import "strings"

const (
	// MinCardLength and MaxCardLength bound the card number field
	// Shorter numbers are not issued, 19 digits is the ISO/IEC 7812 maximum
	MinCardLength = 13
	MaxCardLength = 19

	fieldSeparator = "|"
	fieldCount     = 4
)

// Record is a parsed or generated card
// All four fields are always present, a Record is never partially filled
type Record struct {
	CC    string `json:"cc"`
	Month string `json:"month"`
	Year  string `json:"year"`
	CVV   string `json:"cvv"`
}

// String joins the fields as cc|mm|yyyy|cvv
func (r Record) String() string {
	return strings.Join([]string{r.CC, r.Month, r.Year, r.CVV}, fieldSeparator)
}

// ParseCardInput validates and normalizes a cc|mm|yyyy|cvv string
//
// Rules (all must hold):
//   - exactly four fields after splitting on "|"
//   - every field is non-empty after trimming whitespace
//   - the card number is 13-19 ASCII digits and passes ValidateLuhn
//
// Month, year and CVV are copied as given (trimmed). They are range-checked
// only when the Generator synthesizes them.
//
// Returns:
//   - Record: the parsed card, zero value on failure
//   - bool: false if any rule fails
//
// Example:
//
//	rec, ok := ParseCardInput("4242424242424242|12|2028|123")
//	// rec = {CC: "4242424242424242", Month: "12", Year: "2028", CVV: "123"}, ok = true
func ParseCardInput(text string) (Record, bool) {
	parts := strings.Split(text, fieldSeparator)
	if len(parts) != fieldCount {
		return Record{}, false
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Record{}, false
		}
	}

	cc := parts[0]
	if len(cc) < MinCardLength || len(cc) > MaxCardLength {
		return Record{}, false
	}
	if !ValidateLuhn(cc) {
		return Record{}, false
	}

	return Record{
		CC:    cc,
		Month: parts[1],
		Year:  parts[2],
		CVV:   parts[3],
	}, true
}
