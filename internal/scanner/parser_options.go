package scanner

import (
	"fmt"
	"os"

	"cedula/internal/mrz"
)

// ParserOptions translates deployment settings into parser options.
// localitiesFile, when set, replaces the embedded locality table.
func ParserOptions(strictLocality bool, localitiesFile string) ([]mrz.Option, error) {
	var opts []mrz.Option
	if strictLocality {
		opts = append(opts, mrz.WithStrictLocality())
	}
	if localitiesFile == "" {
		return opts, nil
	}

	f, err := os.Open(localitiesFile)
	if err != nil {
		return nil, fmt.Errorf("open localities: %w", err)
	}
	defer f.Close()

	table, err := mrz.LoadLocalities(f)
	if err != nil {
		return nil, fmt.Errorf("load localities %s: %w", localitiesFile, err)
	}
	return append(opts, mrz.WithLocalities(table)), nil
}
