package mrz

import (
	"strings"

	"github.com/biter777/countries"
)

// Territory is an ISO 3166 territory resolved from an MRZ code.
type Territory struct {
	Code string `json:"code"` // canonical alpha-3
	Name string `json:"name"`
}

// ResolveTerritory maps a three-letter MRZ territory code to its canonical
// alpha-3 code and display name. The code is upper-cased and every 0 is read
// as the letter O before lookup. Codes that are not three letters or are
// not in the registry fail with KindUnresolvedTerritory.
func ResolveTerritory(raw string) (Territory, error) {
	code := normalizeTerritory(raw)
	if !isAlpha3(code) {
		return Territory{}, newFieldError(KindUnresolvedTerritory, "", "territory %q is not a three letter code", code)
	}
	// ByName also accepts names and informal aliases (UAE, ENG); only the
	// ISO alpha-3 code itself counts as a match.
	c := countries.ByName(code)
	if c == countries.Unknown || c.Alpha3() != code {
		return Territory{}, newFieldError(KindUnresolvedTerritory, "", "territory %q is not registered", code)
	}
	return Territory{Code: c.Alpha3(), Name: c.String()}, nil
}

func isAlpha3(s string) bool {
	if len(s) != 3 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < 'A' || r > 'Z' }) == -1
}
