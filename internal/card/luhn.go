// Package card handles card number parsing, validation and synthesis
// This file implements the Luhn algorithm for card number validation
package card

import "strings"

// ValidateLuhn checks if a digit string passes the Luhn algorithm
// The Luhn algorithm (also known as Luhn formula or modulus 10 algorithm)
// is a checksum formula used to catch transcription errors in card numbers
//
// How it works:
//  1. Start from the rightmost digit
//  2. Double every second digit (from right to left)
//  3. If doubled value > 9, subtract 9
//  4. Sum all digits
//  5. Valid if sum is divisible by 10
//
// Parameters:
//   - digits: String containing only ASCII digits (no spaces or dashes)
//
// Returns:
//   - bool: true if valid, false if invalid or if a non-digit is present
//
// Example:
//
//	ValidateLuhn("4242424242424242") => true
//	ValidateLuhn("4242424242424241") => false (wrong check digit)
//
// Length is NOT checked here, ParseCardInput enforces 13-19 digits
func ValidateLuhn(digits string) bool {
	if !isDigits(digits) {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}

// CheckDigit returns the digit that makes payload+digit pass ValidateLuhn
//
// The check digit position is the rightmost one, so the doubling starts
// on the last digit of the payload instead of skipping it
//
// Example:
//
//	CheckDigit("424242424242424") => '2'
func CheckDigit(payload string) byte {
	sum := luhnSum(payload, true)
	return byte('0' + (10-sum%10)%10)
}

// luhnSum walks digits from right to left and returns the Luhn sum
// doubleFirst is true when the caller is about to append a check digit
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst

	for i := len(digits) - 1; i >= 0; i-- {
		// '0' has ASCII value 48, so '7'-'0'=7
		digit := int(digits[i] - '0')

		if double {
			digit *= 2
			// Same as summing the two digits: 14 -> 1+4=5, 14-9=5
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum
}

// isDigits reports whether s is non-empty and holds only ASCII digits
// unicode.IsDigit would accept Arabic-Indic and other digit runes, which
// must not reach the arithmetic above
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskCardNumber returns a masked version of a card number
// Only the first 6 digits (BIN) and the last 4 digits are kept
//
// Examples:
//
//	MaskCardNumber("4242424242424242") => "424242******4242"
//	MaskCardNumber("378282246310005")  => "378282*****0005"
//
// Used for every card number that reaches a log line
func MaskCardNumber(cardNumber string) string {
	length := len(cardNumber)

	// Too short to leave anything hidden, return as-is
	if length <= 10 {
		return cardNumber
	}

	var masked strings.Builder
	masked.Grow(length)

	masked.WriteString(cardNumber[:6])
	masked.WriteString(strings.Repeat("*", length-10))
	masked.WriteString(cardNumber[length-4:])

	return masked.String()
}
