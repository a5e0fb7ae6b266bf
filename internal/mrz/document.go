package mrz

// DocType is the single-letter document type on line 1.
type DocType string

const (
	DocTypeForeigner DocType = "A"
	DocTypeCitizen   DocType = "C"
	DocTypeIdentity  DocType = "I"
)

// IsValid reports whether d is one of the known document types.
func (d DocType) IsValid() bool {
	switch d {
	case DocTypeForeigner, DocTypeCitizen, DocTypeIdentity:
		return true
	}
	return false
}

// Sex is the holder's sex as encoded on line 2.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
	SexOther  Sex = "O"
)

// ParseSex maps M and F to their values; anything else is SexOther.
func ParseSex(s string) Sex {
	switch s {
	case "M":
		return SexMale
	case "F":
		return SexFemale
	}
	return SexOther
}

// DocumentFields is the union of every decoded field.
type DocumentFields struct {
	BirthDate              *Date  `json:"birth_date"`
	Sex                    Sex    `json:"sex"`
	ExpirationDate         *Date  `json:"expiration_date"`
	NationalityCountryCode string `json:"nationality_country_code"`
	NationalityCountryName string `json:"nationality_country_name"`
	NUIP                   string `json:"nuip"`

	FirstNames  string `json:"first_names"`
	LastNames   string `json:"last_names"`
	IsTruncated bool   `json:"is_truncated"`

	DocType             DocType `json:"doc_type"`
	CountryCode         string  `json:"country_code"`
	CountryName         string  `json:"country_name"`
	DocNumber           string  `json:"doc_number"`
	DocNumberCheckDigit string  `json:"doc_number_check_digit"`
	MunicipalityCode    string  `json:"mun_code"`
	MunicipalityName    string  `json:"mun_name"`
	DepartmentCode      string  `json:"dep_code"`
	DepartmentName      string  `json:"dep_name"`
	LocalityResolved    bool    `json:"locality_resolved"`

	Errors []*FieldError `json:"errors"`
}

// DocumentMetadata carries the raw lines and the overall confidence.
type DocumentMetadata struct {
	Lines      []string `json:"lines"`
	Confidence float64  `json:"confidence"`
}

// Document is the result of a parse.
type Document struct {
	Fields   DocumentFields   `json:"fields"`
	Metadata DocumentMetadata `json:"metadata"`
}

// HasErrors reports whether any soft validation error was recorded.
func (d Document) HasErrors() bool {
	return len(d.Fields.Errors) > 0
}
