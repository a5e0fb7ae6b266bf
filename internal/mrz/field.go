package mrz

import "strings"

// slice returns line[from:to] clipped to the line length, so a short line
// yields a short or empty field instead of panicking.
func slice(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}

func charAt(line string, i int) string {
	return slice(line, i, i+1)
}

// isNumeric reports whether s is a non-empty run of ASCII digits.
func isNumeric(s string) bool {
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

func stripLeadingZeros(s string) string {
	return strings.TrimLeft(s, "0")
}

// normalizeTerritory upper-cases a territory code and undoes the common OCR
// confusion of the digit 0 for the letter O.
func normalizeTerritory(raw string) string {
	return strings.ReplaceAll(strings.ToUpper(raw), "0", "O")
}
