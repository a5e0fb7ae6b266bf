// Package mrz decodes the three-line machine readable zone printed on the back
// of Colombian identity cards (a national-ID variant of the ICAO 9303 TD1
// layout) into a validated Document.
//
// # Layout
//
//	line 1  I C COL 000000012 5 05 001 <<<<<<<<<<
//	        | | |   |         | |  |
//	        | | |   |         | |  department code   [17:20]
//	        | | |   |         | municipality code    [15:17]
//	        | | |   |         check digit            [14]
//	        | | |   document number                  [5:14]
//	        | | issuing territory                    [2:5]
//	        | hint character                         [1]
//	        document type                            [0]
//
//	line 2  040315 1 F 320319 0 COL 1234567890
//	        birth date + check [0:7], sex [7], expiration + check [8:15],
//	        nationality [15:18], national identity number (NUIP) [18:28]
//
//	line 3  WALTEROS<<LAURA<<<<<<<<<<<<<<<
//	        last names << first names
//
// # Soft and hard errors
//
// Most validation failures are soft: they are recorded on the Document and
// lower its confidence, and parsing continues with a best-effort value. Only
// a wrong line count (and, in strict locality mode, an unknown
// municipality/department pair) aborts the parse.
//
// Confidence starts at 100 per line and moves by fixed deltas (+10, -10,
// -30). It is a heuristic score, not a probability, and may exceed 100.
//
// # Domain Purity
//
// This package performs no I/O and never reads the wall clock on its own.
// The parse time that anchors two-digit year resolution is supplied by the
// caller through WithClock. Lookup tables are read-only once built and a
// Parser is safe for concurrent use.
package mrz
