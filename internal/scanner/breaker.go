package scanner

import (
	"context"
	"fmt"

	"cedula/pkg/platform/circuit"
	"cedula/pkg/platform/sentinel"
)

// breakerClient fails fast while the OCR service keeps failing.
type breakerClient struct {
	next    TextractClient
	breaker *circuit.Breaker
}

// WithBreaker guards client with b. Outages and timeouts count as failures;
// a rejected image does not, since the service answered. A canceled call
// counts as neither.
func WithBreaker(client TextractClient, b *circuit.Breaker) TextractClient {
	if b == nil {
		return client
	}
	return &breakerClient{next: client, breaker: b}
}

func (c *breakerClient) AnalyzeID(ctx context.Context, bucket, key string) (*AnalyzeIDResponse, error) {
	if !c.breaker.Allow() {
		return nil, fmt.Errorf("%s circuit open: %w", c.breaker.Name(), sentinel.ErrUnavailable)
	}
	resp, err := c.next.AnalyzeID(ctx, bucket, key)
	switch classify(err) {
	case ErrorProviderOutage, ErrorTimeout:
		c.breaker.RecordFailure()
	case ErrorCanceled:
	default:
		c.breaker.RecordSuccess()
	}
	return resp, err
}
