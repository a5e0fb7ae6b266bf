// Package scanner turns identity card images and raw MRZ text into parsed
// documents. Remote OCR and object storage sit behind the ports declared
// here; adapters live in awsclient.
package scanner

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks TextractClient,ObjectStore

import (
	"context"

	"cedula/internal/mrz"
)

// DocumentAnalyzer extracts and parses the MRZ of an identity card image.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (mrz.Document, error)
}

// TextractClient runs identity document analysis on an object that was
// already uploaded to bucket under key.
type TextractClient interface {
	AnalyzeID(ctx context.Context, bucket, key string) (*AnalyzeIDResponse, error)
}

// ObjectStore stores uploaded images so the OCR service can read them.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, body []byte) error
}

// AnalyzeIDResponse is the subset of an identity analysis response the
// scanner reads. Field names follow the Textract JSON document so recorded
// responses decode directly.
type AnalyzeIDResponse struct {
	IdentityDocuments []IdentityDocument `json:"IdentityDocuments"`
}

type IdentityDocument struct {
	Blocks []Block `json:"Blocks"`
}

// Block is one OCR element. Only LINE blocks are inspected.
type Block struct {
	BlockType string `json:"BlockType"`
	Text      string `json:"Text"`
}

const BlockTypeLine = "LINE"
