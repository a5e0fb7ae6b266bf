package mrz

import "time"

// lineTwo holds the personal fields of the second MRZ line.
type lineTwo struct {
	birthDate      *Date
	sex            Sex
	expirationDate *Date
	nationality    Territory
	nuip           string
	scorecard
}

// parseLineTwo decodes line 2. Every failure is soft.
func parseLineTwo(l2 string, now time.Time) lineTwo {
	res := lineTwo{scorecard: newScorecard()}

	if d, err := ParseDate(slice(l2, 0, 6), charAt(l2, 6), true, "birth_date", now); err != nil {
		res.penalize(minorPenalty, asFieldError(err, "birth_date", KindMalformedDate))
	} else {
		res.birthDate = &Date{Time: d}
	}

	res.sex = ParseSex(charAt(l2, 7))

	// The expiration check digit is validated once, inside ParseDate.
	if d, err := ParseDate(slice(l2, 8, 14), charAt(l2, 14), false, "expiration_date", now); err != nil {
		res.penalize(minorPenalty, asFieldError(err, "expiration_date", KindMalformedDate))
	} else {
		res.expirationDate = &Date{Time: d}
	}

	rawNationality := slice(l2, 15, 18)
	nationality, err := ResolveTerritory(rawNationality)
	if err != nil {
		res.penalize(minorPenalty, asFieldError(err, "nationality_country_code", KindUnresolvedTerritory))
		nationality = Territory{Code: normalizeTerritory(rawNationality)}
	}
	res.nationality = nationality

	rawNUIP := slice(l2, 18, 28)
	res.nuip = stripLeadingZeros(rawNUIP)
	if !isNumeric(res.nuip) {
		res.penalize(majorPenalty, newFieldError(KindNonNumericField, "nuip", "nuip %q is not numeric", rawNUIP))
	}
	return res
}
