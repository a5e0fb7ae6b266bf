package handler

import "cedula/internal/mrz"

// ParseResponse is returned by POST /mrz/parse.
type ParseResponse struct {
	Result mrz.Document `json:"result"`
}

// AnalyzeResponse is returned by POST /analyze.
type AnalyzeResponse struct {
	Filename string       `json:"filename"`
	Result   mrz.Document `json:"result"`
}
