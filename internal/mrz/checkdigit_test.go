package mrz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestComputeCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "date fragment", data: "900101", want: "1"},
		{name: "birth date", data: "040315", want: "1"},
		{name: "expiration date", data: "320319", want: "0"},
		{name: "icao passport number", data: "L898902C3", want: "6"},
		{name: "icao birth date", data: "740812", want: "2"},
		{name: "icao expiry date", data: "120415", want: "9"},
		{name: "zero padded document number", data: "000000012", want: "5"},
		{name: "fillers only", data: "<<<<<<", want: "0"},
		{name: "empty", data: "", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCheckDigit(tt.data))
		})
	}

	t.Run("unexpected characters contribute zero but keep their weight slot", func(t *testing.T) {
		assert.Equal(t, ComputeCheckDigit("9<0101"), ComputeCheckDigit("9#0101"))
		assert.Equal(t, ComputeCheckDigit("9<0101"), ComputeCheckDigit("9a0101"))
	})
}

var mrzAlphabet = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ<")

func mrzString(minLen, maxLen int) *rapid.Generator[string] {
	return rapid.StringOfN(rapid.SampledFrom(mrzAlphabet), minLen, maxLen, -1)
}

func TestComputeCheckDigitProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := mrzString(0, 40).Draw(t, "data")
		digit := ComputeCheckDigit(data)

		if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
			t.Fatalf("check digit %q is not a single decimal digit", digit)
		}
		if again := ComputeCheckDigit(data); again != digit {
			t.Fatalf("check digit is not deterministic: %q then %q", digit, again)
		}
		padded := data + strings.Repeat(string(Filler), rapid.IntRange(0, 10).Draw(t, "fillers"))
		if got := ComputeCheckDigit(padded); got != digit {
			t.Fatalf("trailing fillers changed the check digit: %q vs %q", got, digit)
		}
	})
}
