package mrz

import "strconv"

// Filler is the MRZ padding character.
const Filler = '<'

var checkDigitWeights = [3]int{7, 3, 1}

// ComputeCheckDigit returns the ICAO 9303 check digit of data as a single
// decimal character. Digits count at face value, A-Z count 10-35 and the
// filler counts 0. Any other character also contributes 0 while still
// advancing the weight cycle.
func ComputeCheckDigit(data string) string {
	sum := 0
	for i := 0; i < len(data); i++ {
		sum += charValue(data[i]) * checkDigitWeights[i%3]
	}
	return strconv.Itoa(sum % 10)
}

func charValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c) - 55
	default:
		return 0
	}
}
