// Package recognize turns stored scans into raw text. PDFs with a
// native text layer are read directly; everything else, including
// scanned PDFs, goes through OCR. When OCR is unavailable a simulation
// result keeps the pipeline flowing for local development.
package recognize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/sigortech/docuscan/internal/core/domain"
	"github.com/sigortech/docuscan/internal/infrastructure/ocr/ocrspace"
)

// defaultMinTextLayerChars is the threshold below which a PDF text
// layer is treated as absent. Scanned PDFs typically yield a handful of
// stray glyphs rather than nothing at all.
const defaultMinTextLayerChars = 100

type ocrClient interface {
	ParseImage(ctx context.Context, filename, mimeType string, data []byte) (ocrspace.Result, error)
}

type Service struct {
	ocr               ocrClient
	minTextChars      int
	simulationEnabled bool
	logger            *slog.Logger
}

func New(ocr ocrClient, minTextChars int, simulationEnabled bool, logger *slog.Logger) *Service {
	if minTextChars <= 0 {
		minTextChars = defaultMinTextLayerChars
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ocr: ocr, minTextChars: minTextChars, simulationEnabled: simulationEnabled, logger: logger}
}

func (s *Service) Recognize(ctx context.Context, doc *domain.Document, data []byte) (domain.RecognizedText, error) {
	if isPDF(doc, data) {
		text, err := pdfTextLayer(data)
		if err != nil {
			s.logger.Debug("pdf_text_layer_unreadable", "document_id", doc.ID, "error", err)
		} else if meaningfulChars(text) >= s.minTextChars {
			return domain.RecognizedText{
				Text:       text,
				Method:     domain.MethodPDFText,
				Confidence: 95.0,
			}, nil
		}
	}

	result, err := s.ocr.ParseImage(ctx, doc.Filename, doc.MimeType, data)
	if err == nil {
		return domain.RecognizedText{
			Text:       result.Text,
			Method:     domain.MethodOCRSpace,
			Confidence: result.Confidence,
		}, nil
	}

	if ctx.Err() != nil {
		return domain.RecognizedText{}, ctx.Err()
	}
	if !s.simulationEnabled {
		return domain.RecognizedText{}, fmt.Errorf("ocr parse: %w", err)
	}

	s.logger.Warn("ocr_unavailable_using_simulation", "document_id", doc.ID, "error", err)
	return domain.RecognizedText{
		Text:       simulationText(doc.Filename),
		Method:     domain.MethodSimulation,
		Confidence: simulationConfidence,
	}, nil
}

func isPDF(doc *domain.Document, data []byte) bool {
	if doc.MimeType == "application/pdf" {
		return true
	}
	if strings.HasSuffix(strings.ToLower(doc.Filename), ".pdf") {
		return true
	}
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

func meaningfulChars(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
