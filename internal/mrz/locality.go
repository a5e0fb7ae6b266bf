package mrz

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed localities.yaml
var embeddedLocalities []byte

// Locality is one row of the municipality/department reference table.
type Locality struct {
	MunicipalityCode string `yaml:"mun_code"`
	DepartmentCode   string `yaml:"dep_code"`
	MunicipalityName string `yaml:"mun_name"`
	DepartmentName   string `yaml:"dep_name"`
}

type localityKey struct {
	mun string
	dep string
}

// LocalityTable is an immutable lookup from an exact (municipality code,
// department code) pair to display names.
type LocalityTable struct {
	byKey map[localityKey]Locality
}

type localityFile struct {
	Localities []Locality `yaml:"localities"`
}

// LoadLocalities reads a YAML locality table. Every row needs both codes
// and both names, and a code pair may appear only once.
func LoadLocalities(r io.Reader) (*LocalityTable, error) {
	var f localityFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode localities: %w", err)
	}
	t := &LocalityTable{byKey: make(map[localityKey]Locality, len(f.Localities))}
	for i, loc := range f.Localities {
		if loc.MunicipalityCode == "" || loc.DepartmentCode == "" || loc.MunicipalityName == "" || loc.DepartmentName == "" {
			return nil, fmt.Errorf("locality %d: codes and names are required", i)
		}
		key := localityKey{mun: loc.MunicipalityCode, dep: loc.DepartmentCode}
		if _, dup := t.byKey[key]; dup {
			return nil, fmt.Errorf("locality %d: duplicate code pair %s/%s", i, key.mun, key.dep)
		}
		t.byKey[key] = loc
	}
	return t, nil
}

var defaultLocalities = sync.OnceValue(func() *LocalityTable {
	t, err := LoadLocalities(bytes.NewReader(embeddedLocalities))
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultLocalities returns the table compiled into the binary.
func DefaultLocalities() *LocalityTable {
	return defaultLocalities()
}

// Lookup returns the locality for an exact code pair.
func (t *LocalityTable) Lookup(munCode, depCode string) (Locality, bool) {
	loc, ok := t.byKey[localityKey{mun: munCode, dep: depCode}]
	return loc, ok
}

// Len returns the number of rows.
func (t *LocalityTable) Len() int {
	return len(t.byKey)
}
