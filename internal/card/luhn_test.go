package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLuhn(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{name: "Valid_Visa", digits: "4242424242424242", want: true},
		{name: "Valid_VisaDebit", digits: "4000056655665556", want: true},
		{name: "Valid_Mastercard", digits: "5555555555554444", want: true},
		{name: "Valid_Mastercard2Series", digits: "2223003122003222", want: true},
		{name: "Valid_Amex", digits: "378282246310005", want: true},
		{name: "Valid_Discover", digits: "6011111111111117", want: true},
		{name: "Valid_ShortClassic", digits: "79927398713", want: true},
		{name: "Invalid_LastDigitChanged", digits: "4242424242424241", want: false},
		{name: "Invalid_TransposedDigits", digits: "4242424242424224", want: false},
		{name: "Invalid_Letters", digits: "4242abcd42424242", want: false},
		{name: "Invalid_Spaces", digits: "4242 4242 4242 4242", want: false},
		{name: "Invalid_Empty", digits: "", want: false},
		{name: "Invalid_NonASCIIDigit", digits: "424242424242424٢", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLuhn(tt.digits))
		})
	}
}

func TestValidateLuhn_Deterministic(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 200; i++ {
		number, ok := gen.Number("411111")
		require.True(t, ok)
		require.True(t, ValidateLuhn(number))

		// A valid number must stay valid on every re-check
		for j := 0; j < 3; j++ {
			assert.True(t, ValidateLuhn(number), "number %s changed verdict", number)
		}
	}
}

func TestValidateLuhn_SingleDigitChangeBreaksChecksum(t *testing.T) {
	valid := "4242424242424242"

	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[i] == d {
				continue
			}
			mutated := valid[:i] + string(d) + valid[i+1:]
			assert.False(t, ValidateLuhn(mutated), "mutation %s should fail", mutated)
		}
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		payload string
		want    byte
	}{
		{payload: "424242424242424", want: '2'},
		{payload: "37828224631000", want: '5'},
		{payload: "555555555555444", want: '4'},
		{payload: "601111111111111", want: '7'},
		{payload: "7992739871", want: '3'},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			got := CheckDigit(tt.payload)
			assert.Equal(t, string(tt.want), string(got))
			assert.True(t, ValidateLuhn(tt.payload+string(got)))
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "424242******4242", MaskCardNumber("4242424242424242"))
	assert.Equal(t, "378282*****0005", MaskCardNumber("378282246310005"))
	assert.Equal(t, "4242424242", MaskCardNumber("4242424242"))
	assert.Equal(t, "", MaskCardNumber(""))
}
