// Package awsclient adapts AWS SDK v2 clients to the scanner ports.
package awsclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"

	"cedula/pkg/platform/sentinel"
)

// Clients bundles the adapters built from one AWS configuration.
type Clients struct {
	Textract *TextractClient
	Store    *S3Store
}

// New loads the default AWS credential chain for region and builds both
// adapters.
func New(ctx context.Context, region string) (*Clients, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return FromConfig(cfg), nil
}

// FromConfig builds the adapters from an existing SDK configuration.
func FromConfig(cfg aws.Config) *Clients {
	return &Clients{
		Textract: NewTextractClient(textract.NewFromConfig(cfg)),
		Store:    NewS3Store(s3.NewFromConfig(cfg)),
	}
}

// wrapCallError keeps deadline errors recognizable and reports everything
// else as the remote being unavailable. Cancellation comes from our side and
// is passed through as is.
func wrapCallError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, sentinel.ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", op, sentinel.ErrUnavailable, err)
}
