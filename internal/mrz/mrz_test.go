package mrz

import (
	"time"
)

// Fixture of a Colombian identity card issued in Cartagena.
const (
	fixtureLine1 = "ICCOL000000012505001<<<<<<<<<<"
	fixtureLine2 = "0403151F3203190COL1234567890"
	fixtureLine3 = "WALTEROS<<LAURA<<<<<<<<<<<<<<<"
	fixtureMRZ   = fixtureLine1 + "\n" + fixtureLine2 + "\n" + fixtureLine3
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// withLine1 replaces the characters of fixtureLine1 starting at offset.
func withLine1(offset int, s string) string {
	return fixtureLine1[:offset] + s + fixtureLine1[offset+len(s):]
}

func withLine2(offset int, s string) string {
	return fixtureLine2[:offset] + s + fixtureLine2[offset+len(s):]
}

func kinds(errs []*FieldError) []ErrorKind {
	out := make([]ErrorKind, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Kind)
	}
	return out
}
