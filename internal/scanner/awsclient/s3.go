package awsclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of *s3.Client the adapter calls.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store implements scanner.ObjectStore.
type S3Store struct {
	api PutObjectAPI
}

func NewS3Store(api PutObjectAPI) *S3Store {
	return &S3Store{api: api}
}

// PutObject uploads body with a sniffed content type.
func (s *S3Store) PutObject(ctx context.Context, bucket, key string, body []byte) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(http.DetectContentType(body)),
	})
	if err != nil {
		return wrapCallError("s3 put object", err)
	}
	return nil
}
