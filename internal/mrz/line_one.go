package mrz

import "strings"

// lineOne holds the document-level fields of the first MRZ line.
type lineOne struct {
	docType             DocType
	country             Territory
	docNumber           string
	docNumberCheckDigit string
	munCode             string
	munName             string
	depCode             string
	depName             string
	localityResolved    bool
	scorecard
}

// parseLineOne decodes line 1. It only fails when strict is set and the
// municipality/department pair cannot be resolved, either because a code is
// not numeric or because the pair is not in localities.
func parseLineOne(l1 string, localities *LocalityTable, strict bool) (lineOne, error) {
	res := lineOne{scorecard: newScorecard()}

	res.docType = normalizeDocType(charAt(l1, 0))
	if !res.docType.IsValid() {
		res.record(newFieldError(KindInvalidDocumentType, "doc_type", "document type %q is not one of A, C, I", res.docType))
	}

	if hint := charAt(l1, 1); hint == "C" || hint == string(Filler) {
		res.bonus(hintBonus)
	}

	rawCountry := slice(l1, 2, 5)
	country, err := ResolveTerritory(rawCountry)
	if err != nil {
		res.penalize(minorPenalty, asFieldError(err, "country_code", KindUnresolvedTerritory))
		country = Territory{Code: normalizeTerritory(rawCountry)}
	}
	res.country = country

	rawNumber := slice(l1, 5, 14)
	res.docNumber = stripLeadingZeros(rawNumber)
	if !isNumeric(res.docNumber) {
		res.penalize(majorPenalty, newFieldError(KindNonNumericField, "doc_number", "document number %q is not numeric", rawNumber))
	}

	res.docNumberCheckDigit = charAt(l1, 14)
	if !isNumeric(res.docNumberCheckDigit) {
		res.penalize(minorPenalty, newFieldError(KindNonNumericField, "doc_number_check_digit", "check digit %q is not numeric", res.docNumberCheckDigit))
	}
	if expected := ComputeCheckDigit(rawNumber); res.docNumberCheckDigit != expected {
		res.penalize(minorPenalty, newFieldError(KindChecksumMismatch, "doc_number_check_digit", "check digit %s expected %s", res.docNumberCheckDigit, expected))
	}

	res.munCode = slice(l1, 15, 17)
	res.depCode = slice(l1, 17, 20)
	codesValid := true
	if !isNumeric(res.munCode) {
		res.penalize(minorPenalty, newFieldError(KindNonNumericField, "mun_code", "municipality %q is not numeric", res.munCode))
		codesValid = false
	}
	if !isNumeric(res.depCode) {
		res.penalize(minorPenalty, newFieldError(KindNonNumericField, "dep_code", "department %q is not numeric", res.depCode))
		codesValid = false
	}
	if !codesValid {
		if strict {
			return res, newFieldError(KindUnresolvedLocality, "mun_code", "municipality %q and department %q cannot be looked up", res.munCode, res.depCode)
		}
		return res, nil
	}

	loc, ok := localities.Lookup(res.munCode, res.depCode)
	if !ok {
		unresolved := newFieldError(KindUnresolvedLocality, "mun_code", "municipality %s and department %s are not registered", res.munCode, res.depCode)
		if strict {
			return res, unresolved
		}
		res.penalize(minorPenalty, unresolved)
		return res, nil
	}
	res.munName = loc.MunicipalityName
	res.depName = loc.DepartmentName
	res.localityResolved = true
	return res, nil
}

// normalizeDocType reads the OCR confusions of I (L, 1, |) as I.
func normalizeDocType(c string) DocType {
	c = strings.ToUpper(c)
	switch c {
	case "L", "1", "|":
		return DocTypeIdentity
	}
	return DocType(c)
}
