package mrz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Date is a calendar date. It is encoded in JSON as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// ParseDate reconstructs a calendar date from a YYMMDD fragment and its check
// digit. now anchors century resolution: with pastBiased set, a two-digit
// year greater than now's two-digit year resolves to the 1900s and any other
// to the 2000s; without it the year always resolves to the 2000s. field names
// the MRZ field in returned errors.
//
// Failures are *FieldError values of kind KindMalformedDate,
// KindNonNumericField or KindChecksumMismatch.
func ParseDate(fragment, checkDigit string, pastBiased bool, field string, now time.Time) (time.Time, error) {
	yearStr := slice(fragment, 0, 2)
	if !isNumeric(yearStr) {
		return time.Time{}, newFieldError(KindMalformedDate, field, "year %q is not numeric", yearStr)
	}
	monthStr := slice(fragment, 2, 4)
	if !isNumeric(monthStr) {
		return time.Time{}, newFieldError(KindMalformedDate, field, "month %q is not numeric", monthStr)
	}
	dayStr := slice(fragment, 4, 6)
	if !isNumeric(dayStr) {
		return time.Time{}, newFieldError(KindMalformedDate, field, "day %q is not numeric", dayStr)
	}

	yy, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	year := resolveCentury(yy, pastBiased, now)

	date, ok := calendarDate(year, month, day)
	if !ok {
		return time.Time{}, newFieldError(KindMalformedDate, field, "%04d-%02d-%02d is not a calendar date", year, month, day)
	}

	if !isNumeric(checkDigit) {
		return time.Time{}, newFieldError(KindNonNumericField, field, "check digit %q is not numeric", checkDigit)
	}
	expected := ComputeCheckDigit(yearStr + monthStr + dayStr)
	if checkDigit != expected {
		return time.Time{}, newFieldError(KindChecksumMismatch, field, "check digit %s expected %s", checkDigit, expected)
	}
	return date, nil
}

func resolveCentury(yy int, pastBiased bool, now time.Time) int {
	pivot := now.Year() % 100
	if pastBiased && yy > pivot {
		return 1900 + yy
	}
	return 2000 + yy
}

// calendarDate builds a UTC date and rejects values time.Date would
// normalize, such as month 13 or February 30.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
