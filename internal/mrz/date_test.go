package mrz

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("past biased recent year resolves to the 2000s", func(t *testing.T) {
		got, err := ParseDate("040315", "1", true, "birth_date", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, date(2004, time.March, 15), got)
	})

	t.Run("past biased year after the pivot resolves to the 1900s", func(t *testing.T) {
		got, err := ParseDate("990101", "8", true, "birth_date", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, date(1999, time.January, 1), got)
	})

	t.Run("future biased year always resolves to the 2000s", func(t *testing.T) {
		got, err := ParseDate("990101", "8", false, "expiration_date", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, date(2099, time.January, 1), got)
	})

	t.Run("pivot year itself stays in the 2000s", func(t *testing.T) {
		fragment := "260101"
		got, err := ParseDate(fragment, ComputeCheckDigit(fragment), true, "birth_date", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())

		fragment = "270101"
		got, err = ParseDate(fragment, ComputeCheckDigit(fragment), true, "birth_date", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, 1927, got.Year())
	})

	t.Run("pivot follows the supplied time", func(t *testing.T) {
		fragment := "300101"
		later := time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)
		got, err := ParseDate(fragment, ComputeCheckDigit(fragment), true, "birth_date", later)
		require.NoError(t, err)
		assert.Equal(t, 2030, got.Year())
	})

	t.Run("leap day", func(t *testing.T) {
		fragment := "000229"
		got, err := ParseDate(fragment, ComputeCheckDigit(fragment), true, "birth_date", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, date(2000, time.February, 29), got)
	})
}

func TestParseDateFailures(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		checkDigit string
		kind       ErrorKind
	}{
		{name: "wrong check digit", fragment: "040315", checkDigit: "2", kind: KindChecksumMismatch},
		{name: "non numeric check digit", fragment: "040315", checkDigit: "<", kind: KindNonNumericField},
		{name: "missing check digit", fragment: "040315", checkDigit: "", kind: KindNonNumericField},
		{name: "non numeric year", fragment: "0A0315", checkDigit: "1", kind: KindMalformedDate},
		{name: "non numeric month", fragment: "04O315", checkDigit: "1", kind: KindMalformedDate},
		{name: "non numeric day", fragment: "0403<5", checkDigit: "1", kind: KindMalformedDate},
		{name: "month thirteen", fragment: "041315", checkDigit: "1", kind: KindMalformedDate},
		{name: "month zero", fragment: "040015", checkDigit: "1", kind: KindMalformedDate},
		{name: "day zero", fragment: "040300", checkDigit: "1", kind: KindMalformedDate},
		{name: "february thirtieth", fragment: "040230", checkDigit: "1", kind: KindMalformedDate},
		{name: "non leap february twenty ninth", fragment: "010229", checkDigit: "1", kind: KindMalformedDate},
		{name: "truncated fragment", fragment: "0403", checkDigit: "1", kind: KindMalformedDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.fragment, tt.checkDigit, true, "birth_date", fixedNow)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "expected %s, got %v", tt.kind, err)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "birth_date", fe.Field)
		})
	}
}

func TestDateJSON(t *testing.T) {
	t.Run("encodes a calendar date", func(t *testing.T) {
		doc, err := NewParser(WithClock(fixedClock)).Parse(fixtureMRZ)
		require.NoError(t, err)

		raw, err := json.Marshal(doc.Fields)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"birth_date":"2004-03-15"`)
		assert.Contains(t, string(raw), `"expiration_date":"2032-03-19"`)
	})

	t.Run("missing dates are null", func(t *testing.T) {
		raw, err := json.Marshal(DocumentFields{})
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"birth_date":null`)
	})

	t.Run("decodes what it encodes", func(t *testing.T) {
		var got DocumentFields
		require.NoError(t, json.Unmarshal([]byte(`{"birth_date":"2004-03-15"}`), &got))
		require.NotNil(t, got.BirthDate)
		assert.Equal(t, date(2004, time.March, 15), got.BirthDate.Time)
		assert.Nil(t, got.ExpirationDate)
	})

	t.Run("rejects timestamps", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"2004-03-15T00:00:00Z"`), &d))
	})
}
