package awsclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedula/internal/scanner"
	"cedula/pkg/platform/sentinel"
)

type stubTextract struct {
	in  *textract.AnalyzeIDInput
	out *textract.AnalyzeIDOutput
	err error
}

func (s *stubTextract) AnalyzeID(_ context.Context, in *textract.AnalyzeIDInput, _ ...func(*textract.Options)) (*textract.AnalyzeIDOutput, error) {
	s.in = in
	return s.out, s.err
}

type stubS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (s *stubS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.in = in
	s.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, s.err
}

var (
	_ scanner.TextractClient = (*TextractClient)(nil)
	_ scanner.ObjectStore    = (*S3Store)(nil)
)

func TestTextractClientAnalyzeID(t *testing.T) {
	t.Run("targets the stored object and maps blocks", func(t *testing.T) {
		api := &stubTextract{out: &textract.AnalyzeIDOutput{
			IdentityDocuments: []types.IdentityDocument{{
				Blocks: []types.Block{
					{BlockType: types.BlockTypeLine, Text: aws.String("ICCOL000000012505001<<<<<<<<<<")},
					{BlockType: types.BlockTypeWord},
				},
			}},
		}}

		resp, err := NewTextractClient(api).AnalyzeID(context.Background(), "bucket", "key-1")
		require.NoError(t, err)

		require.Len(t, api.in.DocumentPages, 1)
		assert.Equal(t, "bucket", aws.ToString(api.in.DocumentPages[0].S3Object.Bucket))
		assert.Equal(t, "key-1", aws.ToString(api.in.DocumentPages[0].S3Object.Name))

		require.Len(t, resp.IdentityDocuments, 1)
		assert.Equal(t, []scanner.Block{
			{BlockType: scanner.BlockTypeLine, Text: "ICCOL000000012505001<<<<<<<<<<"},
			{BlockType: "WORD", Text: ""},
		}, resp.IdentityDocuments[0].Blocks)
	})

	t.Run("rejected image is invalid response", func(t *testing.T) {
		api := &stubTextract{err: &types.UnsupportedDocumentException{Message: aws.String("not an image")}}
		_, err := NewTextractClient(api).AnalyzeID(context.Background(), "bucket", "key")
		assert.ErrorIs(t, err, sentinel.ErrInvalidResponse)
	})

	t.Run("throttling is unavailable", func(t *testing.T) {
		api := &stubTextract{err: &types.ThrottlingException{Message: aws.String("slow down")}}
		_, err := NewTextractClient(api).AnalyzeID(context.Background(), "bucket", "key")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("deadline is timeout", func(t *testing.T) {
		api := &stubTextract{err: context.DeadlineExceeded}
		_, err := NewTextractClient(api).AnalyzeID(context.Background(), "bucket", "key")
		assert.ErrorIs(t, err, sentinel.ErrTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("cancellation is not an outage", func(t *testing.T) {
		api := &stubTextract{err: fmt.Errorf("operation error Textract: AnalyzeID: %w", context.Canceled)}
		_, err := NewTextractClient(api).AnalyzeID(context.Background(), "bucket", "key")
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, sentinel.ErrUnavailable)
		assert.NotErrorIs(t, err, sentinel.ErrTimeout)
	})
}

func TestS3StorePutObject(t *testing.T) {
	t.Run("uploads the body", func(t *testing.T) {
		api := &stubS3{}
		png := []byte("\x89PNG\r\n\x1a\n0000")

		require.NoError(t, NewS3Store(api).PutObject(context.Background(), "bucket", "key", png))
		assert.Equal(t, "bucket", aws.ToString(api.in.Bucket))
		assert.Equal(t, "key", aws.ToString(api.in.Key))
		assert.Equal(t, int64(len(png)), aws.ToInt64(api.in.ContentLength))
		assert.Equal(t, "image/png", aws.ToString(api.in.ContentType))
		assert.Equal(t, png, api.body)
	})

	t.Run("failures are unavailable", func(t *testing.T) {
		api := &stubS3{err: errors.New("no route to host")}
		err := NewS3Store(api).PutObject(context.Background(), "bucket", "key", []byte("x"))
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}
