package card

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func fixedClock() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func TestGenerator_Number(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		name       string
		bin        string
		wantLength int
	}{
		{name: "Visa_SixDigitBIN", bin: "424242", wantLength: 16},
		{name: "Visa_EightDigitBIN", bin: "42424242", wantLength: 16},
		{name: "Mastercard_2Series", bin: "222300", wantLength: 16},
		{name: "Discover", bin: "601100", wantLength: 16},
		{name: "Amex", bin: "378282", wantLength: 15},
		{name: "Unknown_DefaultsTo16", bin: "999999", wantLength: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, ok := gen.Number(tt.bin)

			require.True(t, ok)
			assert.Len(t, number, tt.wantLength)
			assert.True(t, strings.HasPrefix(number, tt.bin))
			assert.True(t, ValidateLuhn(number), "number %s should pass Luhn", number)
		})
	}
}

func TestGenerator_Number_AllBINLengths(t *testing.T) {
	gen := NewGenerator()

	for _, base := range []string{"4111111111111111", "3714496353984312"} {
		target := BrandFor(base).Length
		for n := MinBINLength; n <= target-1; n++ {
			bin := base[:n]
			t.Run(bin, func(t *testing.T) {
				number, ok := gen.Number(bin)

				require.True(t, ok)
				assert.Len(t, number, target)
				assert.True(t, strings.HasPrefix(number, bin))
				assert.True(t, ValidateLuhn(number))
			})
		}
	}
}

func TestGenerator_Number_BINAtTargetMinusOne(t *testing.T) {
	gen := NewGenerator(WithRandom(failingReader{}))

	// No filler is drawn, so a broken randomness source is never touched
	number, ok := gen.Number("424242424242424")
	require.True(t, ok)
	assert.Equal(t, "4242424242424242", number)

	number, ok = gen.Number("37828224631000")
	require.True(t, ok)
	assert.Equal(t, "378282246310005", number)
}

func TestGenerator_Number_RejectsBadBIN(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		name string
		bin  string
	}{
		{name: "Empty", bin: ""},
		{name: "FiveDigits", bin: "42424"},
		{name: "Letters", bin: "42x424"},
		{name: "AlreadyFullLength", bin: "4242424242424242"},
		{name: "AmexAlreadyFullLength", bin: "378282246310005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, ok := gen.Number(tt.bin)
			assert.False(t, ok)
			assert.Empty(t, number)
		})
	}
}

func TestGenerator_Number_Varies(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		number, ok := gen.Number("424242")
		require.True(t, ok)
		require.True(t, ValidateLuhn(number))
		seen[number] = struct{}{}
	}

	// 9 random filler digits: 50 draws colliding down to a handful is not plausible
	assert.Greater(t, len(seen), 40)
}

func TestGenerator_Number_Concurrent(t *testing.T) {
	gen := NewGenerator()

	var wg sync.WaitGroup
	results := make(chan string, 400)

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				number, ok := gen.Number("510510")
				if ok {
					results <- number
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for number := range results {
		count++
		assert.True(t, ValidateLuhn(number))
		assert.Len(t, number, 16)
	}
	assert.Equal(t, 400, count)
}

func TestGenerator_Number_RandomFailure(t *testing.T) {
	gen := NewGenerator(WithRandom(failingReader{}))

	number, ok := gen.Number("424242")
	assert.False(t, ok)
	assert.Empty(t, number)
}

func TestGenerator_Card_Defaults(t *testing.T) {
	gen := NewGenerator(WithClock(fixedClock))

	for i := 0; i < 100; i++ {
		rec, ok := gen.Card("424242", "", "", "")
		require.True(t, ok)

		assert.True(t, ValidateLuhn(rec.CC))

		require.Len(t, rec.Month, 2)
		month, err := strconv.Atoi(rec.Month)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, month, 1)
		assert.LessOrEqual(t, month, 12)

		require.Len(t, rec.Year, 4)
		year, err := strconv.Atoi(rec.Year)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, 2027)
		assert.LessOrEqual(t, year, 2031)

		assert.Len(t, rec.CVV, 3)
		assert.True(t, isDigits(rec.CVV))
	}
}

func TestGenerator_Card_AmexCVV(t *testing.T) {
	gen := NewGenerator()

	rec, ok := gen.Card("371449", "", "", "")
	require.True(t, ok)
	assert.Len(t, rec.CC, 15)
	assert.Len(t, rec.CVV, 4)
	assert.NotEqual(t, byte('0'), rec.CVV[0])
}

func TestGenerator_Card_SuppliedFieldsKept(t *testing.T) {
	gen := NewGenerator()

	rec, ok := gen.Card("424242", "07", "2029", "999")
	require.True(t, ok)
	assert.Equal(t, "07", rec.Month)
	assert.Equal(t, "2029", rec.Year)
	assert.Equal(t, "999", rec.CVV)

	// The result round-trips through the parser
	parsed, ok := ParseCardInput(rec.String())
	require.True(t, ok)
	assert.Equal(t, rec, parsed)
}

func TestGenerator_Card_YearsAhead(t *testing.T) {
	gen := NewGenerator(WithClock(fixedClock), WithYearsAhead(1))

	for i := 0; i < 20; i++ {
		rec, ok := gen.Card("424242", "", "", "")
		require.True(t, ok)
		assert.Equal(t, "2027", rec.Year)
	}
}

func TestGenerator_Card_BadBIN(t *testing.T) {
	gen := NewGenerator()

	rec, ok := gen.Card("4242", "12", "2028", "123")
	assert.False(t, ok)
	assert.Equal(t, Record{}, rec)
}

func TestGenerator_Batch(t *testing.T) {
	gen := NewGenerator()

	cards, ok := gen.Batch("555555", 10)
	require.True(t, ok)
	require.Len(t, cards, 10)
	for _, c := range cards {
		assert.True(t, strings.HasPrefix(c.CC, "555555"))
		assert.True(t, ValidateLuhn(c.CC))
	}

	_, ok = gen.Batch("555555", 0)
	assert.False(t, ok)

	_, ok = gen.Batch("55", 3)
	assert.False(t, ok)
}

func TestGenerator_BIN(t *testing.T) {
	gen := NewGenerator()

	for _, name := range Brands() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				bin, ok := gen.BIN(name)
				require.True(t, ok)
				assert.Len(t, bin, MinBINLength)
				assert.True(t, isDigits(bin))
				assert.Equal(t, name, BrandFor(bin).Name, "bin %s", bin)
			}
		})
	}

	_, ok := gen.BIN("jcb")
	assert.False(t, ok)
}
