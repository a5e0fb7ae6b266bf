package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cedula/internal/mrz"
	"cedula/internal/platform/config"
	"cedula/internal/scanner"
	dErrors "cedula/pkg/domain-errors"
	"cedula/pkg/platform/httputil"
	"cedula/pkg/requestcontext"
)

// uploadField is the multipart field carrying the card image.
const uploadField = "file"

// multipartOverhead leaves room for boundaries and part headers on top of
// the image itself.
const multipartOverhead = 64 << 10

// Parser defines the text parsing operations the handler needs.
type Parser interface {
	ParseText(ctx context.Context, text string) (mrz.Document, error)
	ParseLines(ctx context.Context, l1, l2, l3 string) (mrz.Document, error)
}

// Handler wires the scanner endpoints to the parse service and, when
// configured, the document analyzer.
type Handler struct {
	parser         Parser
	analyzer       scanner.DocumentAnalyzer
	logger         *slog.Logger
	maxUploadBytes int64
}

// New constructs a scanner handler. analyzer may be nil, in which case
// /analyze is not registered.
func New(parser Parser, analyzer scanner.DocumentAnalyzer, logger *slog.Logger, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = config.DefaultMaxUploadBytes
	}
	return &Handler{
		parser:         parser,
		analyzer:       analyzer,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register mounts scanner endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/mrz/parse", h.HandleParse)
	if h.analyzer != nil {
		r.Post("/analyze", h.HandleAnalyze)
	}
}

// HandleParse handles POST /mrz/parse requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var (
		doc mrz.Document
		err error
	)
	if lines := req.Lines; len(lines) > 0 {
		doc, err = h.parser.ParseLines(ctx, lines[0], lines[1], lines[2])
	} else {
		doc, err = h.parser.ParseText(ctx, req.MRZ)
	}
	if err != nil {
		h.logger.InfoContext(ctx, "mrz parse rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "mrz parsed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"confidence", doc.Metadata.Confidence,
		"error_count", len(doc.Fields.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, ParseResponse{Result: doc})
}

// HandleAnalyze handles POST /analyze multipart uploads.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	filename, image, err := h.readUpload(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "rejected upload",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	doc, err := h.analyzer.Analyze(ctx, image)
	if err != nil {
		h.logger.ErrorContext(ctx, "document analysis failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"filename", filename,
			"error", err,
		)
		httputil.WriteError(w, analysisToDomainError(err))
		return
	}

	h.logger.InfoContext(ctx, "document analyzed",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"filename", filename,
		"confidence", doc.Metadata.Confidence,
		"error_count", len(doc.Fields.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, AnalyzeResponse{Filename: filename, Result: doc})
}

// readUpload returns the name and bytes of the uploaded file, enforcing the
// size limit on the image itself.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return "", nil, dErrors.New(dErrors.CodePayloadTooLarge, "file too big")
		}
		return "", nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "multipart field \"file\" is required")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return "", nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read upload")
	}
	switch {
	case len(image) == 0:
		return header.Filename, nil, dErrors.New(dErrors.CodeBadRequest, "empty file")
	case int64(len(image)) > h.maxUploadBytes:
		return header.Filename, nil, dErrors.New(dErrors.CodePayloadTooLarge, "file too big")
	}
	return header.Filename, image, nil
}

// analysisToDomainError translates the analysis taxonomy into client-facing
// codes. Errors that already carry a code pass through.
func analysisToDomainError(err error) error {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	var ae *scanner.AnalysisError
	if !errors.As(err, &ae) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "document analysis failed")
	}
	switch ae.Category {
	case scanner.ErrorNoDocument:
		return dErrors.Wrap(err, dErrors.CodeUnprocessable, "no identity document detected")
	case scanner.ErrorBadData:
		return dErrors.Wrap(err, dErrors.CodeUnprocessable, "document could not be read")
	case scanner.ErrorProviderOutage:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "document analysis is unavailable")
	case scanner.ErrorTimeout:
		return dErrors.Wrap(err, dErrors.CodeTimeout, "document analysis timed out")
	case scanner.ErrorCanceled:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "request canceled")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "document analysis failed")
	}
}
