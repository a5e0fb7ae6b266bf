package mrz

import "strings"

const nameDelimiter = "<<"

// lineThree holds the holder's names. It carries no confidence signal.
type lineThree struct {
	lastNames   string
	firstNames  string
	isTruncated bool
}

// parseLineThree strips trailing fillers and splits last names from first
// names on the first double filler. Without a delimiter the name was cut off
// by the zone width: first names are empty and the result is truncated.
func parseLineThree(l3 string) lineThree {
	trimmed := strings.TrimRight(l3, string(Filler))
	parts := strings.SplitN(trimmed, nameDelimiter, 2)

	res := lineThree{lastNames: fillersToSpaces(parts[0])}
	if len(parts) < 2 {
		res.isTruncated = true
		return res
	}
	res.firstNames = fillersToSpaces(parts[1])
	return res
}

func fillersToSpaces(s string) string {
	return strings.ReplaceAll(s, string(Filler), " ")
}
