package mrz

import (
	"strings"
	"time"
)

// Parser decodes Colombian identity card MRZ text. The zero value is not
// usable; construct with NewParser. A Parser holds only read-only state and
// is safe for concurrent use.
type Parser struct {
	now            func() time.Time
	localities     *LocalityTable
	strictLocality bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the source of the current time used to resolve two-digit
// years. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocalities replaces the embedded locality table.
func WithLocalities(t *LocalityTable) Option {
	return func(p *Parser) {
		if t != nil {
			p.localities = t
		}
	}
}

// WithStrictLocality makes an unknown municipality/department pair abort the
// parse with KindUnresolvedLocality instead of being recorded as a soft error.
func WithStrictLocality() Option {
	return func(p *Parser) {
		p.strictLocality = true
	}
}

// NewParser builds a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		now:        time.Now,
		localities: DefaultLocalities(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// At returns a copy of p whose clock is frozen at now. The locality table is
// shared with p.
func (p *Parser) At(now time.Time) *Parser {
	cp := *p
	cp.now = func() time.Time { return now }
	return &cp
}

// Parse splits mrz into its three lines and decodes them. Spaces and
// surrounding whitespace are removed first. Input that does not have exactly
// three lines fails with KindInvalidLineCount.
func (p *Parser) Parse(mrz string) (Document, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(mrz), " ", "")
	lines := strings.Split(cleaned, "\n")
	if len(lines) != 3 {
		return Document{}, newFieldError(KindInvalidLineCount, "", "expected 3 lines, got %d", len(lines))
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return p.ParseLines(lines[0], lines[1], lines[2])
}

// ParseLines decodes three pre-split lines.
func (p *Parser) ParseLines(l1, l2, l3 string) (Document, error) {
	one, err := parseLineOne(l1, p.localities, p.strictLocality)
	if err != nil {
		return Document{}, err
	}
	two := parseLineTwo(l2, p.now())
	three := parseLineThree(l3)
	return assemble([]string{l1, l2, l3}, one, two, three), nil
}

// assemble merges the per-line results. Line 3 contributes neither
// confidence nor errors.
func assemble(lines []string, one lineOne, two lineTwo, three lineThree) Document {
	errs := make([]*FieldError, 0, len(one.errors)+len(two.errors))
	errs = append(errs, one.errors...)
	errs = append(errs, two.errors...)

	return Document{
		Fields: DocumentFields{
			BirthDate:              two.birthDate,
			Sex:                    two.sex,
			ExpirationDate:         two.expirationDate,
			NationalityCountryCode: two.nationality.Code,
			NationalityCountryName: strings.ToUpper(two.nationality.Name),
			NUIP:                   two.nuip,

			FirstNames:  three.firstNames,
			LastNames:   three.lastNames,
			IsTruncated: three.isTruncated,

			DocType:             one.docType,
			CountryCode:         one.country.Code,
			CountryName:         strings.ToUpper(one.country.Name),
			DocNumber:           one.docNumber,
			DocNumberCheckDigit: one.docNumberCheckDigit,
			MunicipalityCode:    one.munCode,
			MunicipalityName:    one.munName,
			DepartmentCode:      one.depCode,
			DepartmentName:      one.depName,
			LocalityResolved:    one.localityResolved,

			Errors: errs,
		},
		Metadata: DocumentMetadata{
			Lines:      lines,
			Confidence: min(one.confidence, two.confidence),
		},
	}
}
