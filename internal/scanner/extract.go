package scanner

import (
	"strings"
)

const (
	hintCountry   = ".CO"
	hintRegistrar = "REGISTRADORNACIONAL"
	hintMRZ       = "ICCOL"
	hintScore     = 10
)

// Extraction is the MRZ text found in an analysis response.
type Extraction struct {
	Lines [3]string
	// HintScore grows by 10 with every printed marker of a Colombian card:
	// the .CO and REGISTRADOR NACIONAL lines and each cleanly read ICCOL
	// MRZ line.
	HintScore int
}

// Text joins the three lines the way Parser.Parse expects them.
func (e Extraction) Text() string {
	return strings.Join(e.Lines[:], "\n")
}

// ExtractMRZText locates the three MRZ lines in the first identity document
// of resp. The first LINE block starting with ICCOL anchors the zone and the
// two blocks that follow it are lines 2 and 3.
func ExtractMRZText(resp *AnalyzeIDResponse) (Extraction, error) {
	if resp == nil || len(resp.IdentityDocuments) == 0 {
		return Extraction{}, NewAnalysisError(ErrorNoDocument, StageExtract, "no identity document detected", nil)
	}
	blocks := resp.IdentityDocuments[0].Blocks
	if len(blocks) == 0 {
		return Extraction{}, NewAnalysisError(ErrorNoDocument, StageExtract, "identity document has no blocks", nil)
	}

	var ext Extraction
	anchored := false
	for i, b := range blocks {
		if b.BlockType != BlockTypeLine {
			continue
		}
		content := compact(b.Text)
		switch {
		case content == hintCountry, content == hintRegistrar, strings.HasPrefix(content, hintMRZ):
			ext.HintScore += hintScore
		}
		if anchored || !isAnchor(content) {
			continue
		}
		if i+2 < len(blocks) {
			ext.Lines = [3]string{blocks[i].Text, blocks[i+1].Text, blocks[i+2].Text}
			anchored = true
		}
	}

	for _, l := range ext.Lines {
		if strings.TrimSpace(l) == "" {
			return Extraction{}, NewAnalysisError(ErrorNoDocument, StageExtract, "MRZ lines not found", nil)
		}
	}
	return ext, nil
}

// isAnchor tolerates the common OCR confusion of O with 0 in the territory.
func isAnchor(content string) bool {
	return strings.HasPrefix(content, hintMRZ) || strings.HasPrefix(content, "ICC0L")
}

func compact(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}
