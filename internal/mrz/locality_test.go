package mrz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLocalities(t *testing.T) {
	table := DefaultLocalities()
	require.NotNil(t, table)
	assert.Greater(t, table.Len(), 0)
	assert.Same(t, table, DefaultLocalities(), "embedded table is built once")

	loc, ok := table.Lookup("05", "001")
	require.True(t, ok)
	assert.Equal(t, "BOLIVAR", loc.MunicipalityName)
	assert.Equal(t, "CARTAGENA", loc.DepartmentName)

	loc, ok = table.Lookup("03", "058")
	require.True(t, ok, "places other than the capital are registered")
	assert.Equal(t, "ATLANTICO", loc.MunicipalityName)
	assert.Equal(t, "SOLEDAD", loc.DepartmentName)

	_, ok = table.Lookup("001", "05")
	assert.False(t, ok, "code order matters")

	_, ok = table.Lookup("5", "001")
	assert.False(t, ok, "no partial matching")
}

func TestLoadLocalities(t *testing.T) {
	t.Run("loads a custom table", func(t *testing.T) {
		table, err := LoadLocalities(strings.NewReader(`
localities:
  - {mun_code: "99", dep_code: "123", mun_name: "TEST", dep_name: "VILLA"}
`))
		require.NoError(t, err)
		loc, ok := table.Lookup("99", "123")
		require.True(t, ok)
		assert.Equal(t, "VILLA", loc.DepartmentName)
	})

	t.Run("rejects duplicate code pairs", func(t *testing.T) {
		_, err := LoadLocalities(strings.NewReader(`
localities:
  - {mun_code: "99", dep_code: "123", mun_name: "A", dep_name: "B"}
  - {mun_code: "99", dep_code: "123", mun_name: "C", dep_name: "D"}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects rows without names", func(t *testing.T) {
		_, err := LoadLocalities(strings.NewReader(`
localities:
  - {mun_code: "99", dep_code: "123", mun_name: "A"}
`))
		require.Error(t, err)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := LoadLocalities(strings.NewReader(`
localities:
  - {mun_code: "99", dep_code: "123", mun_name: "A", dep_name: "B", zip: "1"}
`))
		require.Error(t, err)
	})
}
