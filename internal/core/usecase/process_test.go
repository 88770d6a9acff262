package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sigortech/docuscan/internal/core/domain"
)

type statusCall struct {
	status domain.DocumentStatus
	errMsg string
}

type processRepoFake struct {
	doc         *domain.Document
	getErr      error
	saveErr     error
	statusCalls []statusCall
	saved       *domain.Extraction
	savedID     string
}

func (f *processRepoFake) Create(context.Context, *domain.Document) error { return nil }

func (f *processRepoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyDoc := *f.doc
	return &copyDoc, nil
}

func (f *processRepoFake) List(context.Context, domain.ListFilter) ([]domain.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *processRepoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	return nil
}

func (f *processRepoFake) SaveExtraction(_ context.Context, id string, result domain.Extraction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedID = id
	f.saved = &result
	return nil
}

type processStorageFake struct {
	content string
	err     error
}

func (f *processStorageFake) Save(context.Context, string, io.Reader) error {
	return errors.New("not implemented")
}

func (f *processStorageFake) Open(context.Context, string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.content)), nil
}

type recognizerFake struct {
	result domain.RecognizedText
	err    error
}

func (f *recognizerFake) Recognize(context.Context, *domain.Document, []byte) (domain.RecognizedText, error) {
	if f.err != nil {
		return domain.RecognizedText{}, f.err
	}
	return f.result, nil
}

type classifierFake struct {
	docType domain.DocumentType
}

func (f *classifierFake) Classify(string) domain.DocumentType { return f.docType }

type fieldExtractorFake struct {
	fields domain.FieldSet
}

func (f *fieldExtractorFake) Extract(domain.DocumentType, string) domain.FieldSet {
	return f.fields
}

func newProcessUC(repo *processRepoFake, storage *processStorageFake, rec *recognizerFake) *ProcessDocumentUseCase {
	policy := "P-1"
	return NewProcessDocumentUseCase(
		repo,
		storage,
		rec,
		&classifierFake{docType: domain.TypeTrafikSigortasi},
		&fieldExtractorFake{fields: domain.FieldSet{PolicyNumber: &policy}},
	)
}

func TestProcessByIDSuccess(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1", StoragePath: "doc-1_scan.pdf"}}
	rec := &recognizerFake{result: domain.RecognizedText{
		Text:       "ZORUNLU TRAFİK SİGORTASI",
		Method:     domain.MethodOCRSpace,
		Confidence: 87.5,
	}}
	uc := newProcessUC(repo, &processStorageFake{content: "pdf-bytes"}, rec)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected 2 status calls, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[0].status != domain.StatusProcessing || repo.statusCalls[1].status != domain.StatusCompleted {
		t.Fatalf("unexpected status sequence: %+v", repo.statusCalls)
	}
	if repo.savedID != "doc-1" || repo.saved == nil {
		t.Fatalf("expected extraction saved for doc-1")
	}
	if repo.saved.DocumentType != domain.TypeTrafikSigortasi {
		t.Fatalf("document type = %s", repo.saved.DocumentType)
	}
	if repo.saved.Method != domain.MethodOCRSpace || repo.saved.Confidence != 87.5 {
		t.Fatalf("recognition metadata lost: %+v", repo.saved)
	}
	if repo.saved.Fields.PolicyNumber == nil || *repo.saved.Fields.PolicyNumber != "P-1" {
		t.Fatalf("fields not persisted: %+v", repo.saved.Fields)
	}
}

func TestProcessByIDMarksFailedOnRecognitionError(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1"}}
	rec := &recognizerFake{err: errors.New("ocr down")}
	uc := newProcessUC(repo, &processStorageFake{content: "bytes"}, rec)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.statusCalls) != 2 || repo.statusCalls[1].status != domain.StatusFailed {
		t.Fatalf("expected processing + failed, got %+v", repo.statusCalls)
	}
	if !strings.Contains(repo.statusCalls[1].errMsg, "ocr down") {
		t.Fatalf("expected error text preserved, got %q", repo.statusCalls[1].errMsg)
	}
}

func TestProcessByIDMarksFailedOnEmptyDocument(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1"}}
	uc := newProcessUC(repo, &processStorageFake{content: ""}, &recognizerFake{})

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}

func TestProcessByIDMarksFailedOnSaveError(t *testing.T) {
	repo := &processRepoFake{
		doc:     &domain.Document{ID: "doc-1"},
		saveErr: errors.New("insert blew up"),
	}
	rec := &recognizerFake{result: domain.RecognizedText{Text: "text", Method: domain.MethodPDFText}}
	uc := newProcessUC(repo, &processStorageFake{content: "bytes"}, rec)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}
