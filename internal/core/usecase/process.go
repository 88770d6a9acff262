package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sigortech/docuscan/internal/core/domain"
	"github.com/sigortech/docuscan/internal/core/ports"
)

type ProcessDocumentUseCase struct {
	repo       ports.DocumentRepository
	storage    ports.ObjectStorage
	recognizer ports.TextRecognizer
	classifier ports.DocumentClassifier
	extractor  ports.FieldExtractor
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	recognizer ports.TextRecognizer,
	classifier ports.DocumentClassifier,
	extractor ports.FieldExtractor,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:       repo,
		storage:    storage,
		recognizer: recognizer,
		classifier: classifier,
		extractor:  extractor,
	}
}

// ProcessByID runs the full pipeline for one stored document. Any stage
// error lands the document in failed with the error text preserved; the
// pipeline itself never partially persists a result.
func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.markStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	result, err := uc.processPipeline(ctx, documentID)
	if err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveExtraction(ctx, documentID, result); err != nil {
		saveErr := fmt.Errorf("save extraction: %w", err)
		if failErr := uc.markFailed(ctx, documentID, saveErr); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", saveErr, failErr)
		}
		return saveErr
	}

	if err := uc.markStatus(ctx, documentID, domain.StatusCompleted, ""); err != nil {
		return fmt.Errorf("set status=completed: %w", err)
	}

	return nil
}

func (uc *ProcessDocumentUseCase) processPipeline(ctx context.Context, documentID string) (domain.Extraction, error) {
	doc, err := uc.loadDocument(ctx, documentID)
	if err != nil {
		return domain.Extraction{}, err
	}

	data, err := uc.loadContent(ctx, doc)
	if err != nil {
		return domain.Extraction{}, err
	}

	recognized, err := uc.recognize(ctx, doc, data)
	if err != nil {
		return domain.Extraction{}, err
	}

	docType := uc.classifier.Classify(recognized.Text)
	fields := uc.extractor.Extract(docType, recognized.Text)

	return domain.Extraction{
		RawText:      recognized.Text,
		DocumentType: docType,
		Method:       recognized.Method,
		Confidence:   recognized.Confidence,
		Fields:       fields,
	}, nil
}

func (uc *ProcessDocumentUseCase) loadDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	return doc, nil
}

func (uc *ProcessDocumentUseCase) loadContent(ctx context.Context, doc *domain.Document) ([]byte, error) {
	rc, err := uc.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open stored scan: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read stored scan: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read stored scan", errors.New("empty document"))
	}
	return data, nil
}

func (uc *ProcessDocumentUseCase) recognize(ctx context.Context, doc *domain.Document, data []byte) (domain.RecognizedText, error) {
	recognized, err := uc.recognizer.Recognize(ctx, doc, data)
	if err != nil {
		return domain.RecognizedText{}, fmt.Errorf("recognize text: %w", err)
	}
	if recognized.Text == "" {
		return domain.RecognizedText{}, domain.WrapError(domain.ErrUnrecognizedText, "recognize text", errors.New("empty recognition result"))
	}
	return recognized, nil
}

func (uc *ProcessDocumentUseCase) markStatus(ctx context.Context, documentID string, status domain.DocumentStatus, errMessage string) error {
	return uc.repo.UpdateStatus(ctx, documentID, status, errMessage)
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.markStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
