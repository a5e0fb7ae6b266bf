package awsclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"cedula/internal/scanner"
	"cedula/pkg/platform/sentinel"
)

// AnalyzeIDAPI is the part of *textract.Client the adapter calls.
type AnalyzeIDAPI interface {
	AnalyzeID(ctx context.Context, in *textract.AnalyzeIDInput, optFns ...func(*textract.Options)) (*textract.AnalyzeIDOutput, error)
}

// TextractClient implements scanner.TextractClient.
type TextractClient struct {
	api AnalyzeIDAPI
}

func NewTextractClient(api AnalyzeIDAPI) *TextractClient {
	return &TextractClient{api: api}
}

// AnalyzeID analyzes the single page stored at bucket/key.
func (c *TextractClient) AnalyzeID(ctx context.Context, bucket, key string) (*scanner.AnalyzeIDResponse, error) {
	out, err := c.api.AnalyzeID(ctx, &textract.AnalyzeIDInput{
		DocumentPages: []types.Document{{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		}},
	})
	if err != nil {
		if isRejectedDocument(err) {
			return nil, fmt.Errorf("textract analyze id: %w: %w", sentinel.ErrInvalidResponse, err)
		}
		return nil, wrapCallError("textract analyze id", err)
	}
	return toResponse(out), nil
}

// isRejectedDocument reports errors caused by the image itself, which no
// retry can fix.
func isRejectedDocument(err error) bool {
	var (
		badDoc      *types.BadDocumentException
		tooLarge    *types.DocumentTooLargeException
		unsupported *types.UnsupportedDocumentException
		badObject   *types.InvalidS3ObjectException
	)
	return errors.As(err, &badDoc) ||
		errors.As(err, &tooLarge) ||
		errors.As(err, &unsupported) ||
		errors.As(err, &badObject)
}

func toResponse(out *textract.AnalyzeIDOutput) *scanner.AnalyzeIDResponse {
	resp := &scanner.AnalyzeIDResponse{}
	if out == nil {
		return resp
	}
	for _, d := range out.IdentityDocuments {
		doc := scanner.IdentityDocument{Blocks: make([]scanner.Block, 0, len(d.Blocks))}
		for _, b := range d.Blocks {
			doc.Blocks = append(doc.Blocks, scanner.Block{
				BlockType: string(b.BlockType),
				Text:      aws.ToString(b.Text),
			})
		}
		resp.IdentityDocuments = append(resp.IdentityDocuments, doc)
	}
	return resp
}
