package scanner_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cedula/internal/mrz"
	"cedula/internal/scanner"
	"cedula/internal/scanner/metrics"
	"cedula/internal/scanner/mocks"
	dErrors "cedula/pkg/domain-errors"
	"cedula/pkg/platform/sentinel"
	"cedula/pkg/requestcontext"
)

const bucket = "cedulas-test"

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type AnalyzerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *mocks.MockObjectStore
	textract *mocks.MockTextractClient
	metrics  *metrics.Metrics
	analyzer *scanner.TextractAnalyzer
	ctx      context.Context
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func (s *AnalyzerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockObjectStore(s.ctrl)
	s.textract = mocks.NewMockTextractClient(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.analyzer = s.newAnalyzer(mrz.NewParser())
	s.ctx = requestcontext.WithTime(context.Background(), fixedNow)
}

func (s *AnalyzerSuite) newAnalyzer(parser *mrz.Parser, opts ...scanner.Option) *scanner.TextractAnalyzer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := scanner.NewService(parser, scanner.WithLogger(logger))
	s.Require().NoError(err)
	opts = append([]scanner.Option{scanner.WithLogger(logger), scanner.WithMetrics(s.metrics)}, opts...)
	a, err := scanner.NewTextractAnalyzer(s.store, s.textract, svc, bucket, opts...)
	s.Require().NoError(err)
	return a
}

func (s *AnalyzerSuite) recordedResponse() *scanner.AnalyzeIDResponse {
	raw, err := os.ReadFile("testdata/analyze_id_response.json")
	s.Require().NoError(err)
	var resp scanner.AnalyzeIDResponse
	s.Require().NoError(json.Unmarshal(raw, &resp))
	return &resp
}

func (s *AnalyzerSuite) expectUpload() *string {
	var key string
	s.store.EXPECT().
		PutObject(gomock.Any(), bucket, gomock.Any(), []byte("image")).
		DoAndReturn(func(_ context.Context, _, k string, _ []byte) error {
			key = k
			return nil
		})
	return &key
}

func (s *AnalyzerSuite) TestAnalyze() {
	s.Run("uploads, analyzes and parses the card", func() {
		key := s.expectUpload()
		s.textract.EXPECT().
			AnalyzeID(gomock.Any(), bucket, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, k string) (*scanner.AnalyzeIDResponse, error) {
				s.Equal(*key, k, "analysis must target the uploaded object")
				return s.recordedResponse(), nil
			})

		doc, err := s.analyzer.Analyze(s.ctx, []byte("image"))
		s.Require().NoError(err)

		_, parseErr := uuid.Parse(*key)
		s.NoError(parseErr, "object key should be a UUID")

		f := doc.Fields
		s.Equal("12", f.DocNumber)
		s.Require().NotNil(f.BirthDate)
		s.Equal(time.Date(2004, 3, 15, 0, 0, 0, 0, time.UTC), f.BirthDate.Time)
		s.Equal(mrz.SexFemale, f.Sex)
		s.Require().NotNil(f.ExpirationDate)
		s.Equal(time.Date(2032, 3, 19, 0, 0, 0, 0, time.UTC), f.ExpirationDate.Time)
		s.Equal("COL", f.NationalityCountryCode)
		s.Equal("COLOMBIA", f.NationalityCountryName)
		s.Equal("1234567890", f.NUIP)
		s.Equal("LAURA", f.FirstNames)
		s.Equal("WALTEROS", f.LastNames)
		s.False(f.IsTruncated)
		s.Equal("05", f.MunicipalityCode)
		s.Equal("BOLIVAR", f.MunicipalityName)
		s.Equal("001", f.DepartmentCode)
		s.Equal("CARTAGENA", f.DepartmentName)
		s.Empty(f.Errors)
		s.Equal(100.0, doc.Metadata.Confidence)
	})
}

func (s *AnalyzerSuite) TestAnalyzeFailures() {
	s.Run("storage outage stops before analysis", func() {
		s.store.EXPECT().
			PutObject(gomock.Any(), bucket, gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("put object: %w", sentinel.ErrUnavailable))

		_, err := s.analyzer.Analyze(s.ctx, []byte("image"))
		s.Require().Error(err)

		var ae *scanner.AnalysisError
		s.Require().ErrorAs(err, &ae)
		s.Equal(scanner.ErrorProviderOutage, ae.Category)
		s.Equal(scanner.StageUpload, ae.Stage)
		s.True(scanner.IsRetryable(err))
		s.ErrorIs(err, sentinel.ErrUnavailable)
	})

	s.Run("analysis deadline is a timeout", func() {
		s.expectUpload()
		s.textract.EXPECT().
			AnalyzeID(gomock.Any(), bucket, gomock.Any()).
			Return(nil, context.DeadlineExceeded)

		_, err := s.analyzer.Analyze(s.ctx, []byte("image"))
		s.Equal(scanner.ErrorTimeout, scanner.GetCategory(err))
		s.True(scanner.IsRetryable(err))
	})

	s.Run("unreadable response is bad data", func() {
		s.expectUpload()
		s.textract.EXPECT().
			AnalyzeID(gomock.Any(), bucket, gomock.Any()).
			Return(nil, fmt.Errorf("decode: %w", sentinel.ErrInvalidResponse))

		_, err := s.analyzer.Analyze(s.ctx, []byte("image"))
		s.Equal(scanner.ErrorBadData, scanner.GetCategory(err))
		s.False(scanner.IsRetryable(err))
	})

	s.Run("image without a card", func() {
		s.expectUpload()
		s.textract.EXPECT().
			AnalyzeID(gomock.Any(), bucket, gomock.Any()).
			Return(&scanner.AnalyzeIDResponse{}, nil)

		_, err := s.analyzer.Analyze(s.ctx, []byte("image"))
		s.Equal(scanner.ErrorNoDocument, scanner.GetCategory(err))
		s.Equal(1.0, promtest.ToFloat64(s.metrics.AnalysisFailures.WithLabelValues("no_document")))
	})

	s.Run("strict parser rejects unknown locality", func() {
		strict := s.newAnalyzer(mrz.NewParser(mrz.WithStrictLocality()))
		resp := s.recordedResponse()
		resp.IdentityDocuments[0].Blocks[5].Text = "ICCOL000000012599001<<<<<<<<<<"

		s.expectUpload()
		s.textract.EXPECT().AnalyzeID(gomock.Any(), bucket, gomock.Any()).Return(resp, nil)

		_, err := strict.Analyze(s.ctx, []byte("image"))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnprocessable))
		s.True(errors.Is(err, mrz.KindUnresolvedLocality))
	})

	s.Run("overall timeout bounds the remote call", func() {
		bounded := s.newAnalyzer(mrz.NewParser(), scanner.WithTimeout(10*time.Millisecond))

		s.expectUpload()
		s.textract.EXPECT().
			AnalyzeID(gomock.Any(), bucket, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string) (*scanner.AnalyzeIDResponse, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err := bounded.Analyze(s.ctx, []byte("image"))
		s.Equal(scanner.ErrorTimeout, scanner.GetCategory(err))
	})
}

func (s *AnalyzerSuite) TestNewTextractAnalyzer() {
	svc, err := scanner.NewService(mrz.NewParser())
	s.Require().NoError(err)

	_, err = scanner.NewTextractAnalyzer(nil, s.textract, svc, bucket)
	s.Error(err)
	_, err = scanner.NewTextractAnalyzer(s.store, nil, svc, bucket)
	s.Error(err)
	_, err = scanner.NewTextractAnalyzer(s.store, s.textract, nil, bucket)
	s.Error(err)
	_, err = scanner.NewTextractAnalyzer(s.store, s.textract, svc, "")
	s.Error(err)
}
