package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sigortech/docuscan/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*DocumentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &DocumentRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, filename, mime_type, size_bytes").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDUnmarshalsExtraction(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	extraction := []byte(`{"raw_text":"t","document_type":"trafik","extraction_method":"ocr_space","confidence":88.5,"extracted_fields":{"policy_number":"TR-1"}}`)
	rows := sqlmock.NewRows([]string{
		"id", "filename", "mime_type", "size_bytes", "storage_path", "status",
		"document_type", "extraction_method", "confidence", "extraction",
		"error_message", "created_at", "updated_at",
	}).AddRow("doc-1", "scan.pdf", "application/pdf", 10, "doc-1_scan.pdf", "completed",
		"trafik", "ocr_space", 88.5, extraction, "", now, now)

	mock.ExpectQuery("SELECT id, filename, mime_type, size_bytes").
		WithArgs("doc-1").
		WillReturnRows(rows)

	doc, err := repo.GetByID(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if doc.Status != domain.StatusCompleted || doc.DocumentType != domain.TypeTrafikSigortasi {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Extraction == nil || doc.Extraction.Fields.PolicyNumber == nil || *doc.Extraction.Fields.PolicyNumber != "TR-1" {
		t.Fatalf("extraction payload not decoded: %+v", doc.Extraction)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WithArgs("missing", string(domain.StatusProcessing), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusProcessing, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveExtractionReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WithArgs("missing", "kasko", "ocr_space", 70.0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveExtraction(context.Background(), "missing", domain.Extraction{
		RawText:      "text",
		DocumentType: domain.TypeKaskoSigortasi,
		Method:       domain.MethodOCRSpace,
		Confidence:   70.0,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListAppliesFilters(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "filename", "mime_type", "size_bytes", "storage_path", "status",
		"document_type", "extraction_method", "confidence", "extraction",
		"error_message", "created_at", "updated_at",
	}).AddRow("doc-1", "a.pdf", "application/pdf", 1, "k", "completed", "trafik", "ocr_space", 90.0, nil, "", now, now)

	mock.ExpectQuery("SELECT id, filename, mime_type, size_bytes").
		WithArgs("completed", "trafik", 50).
		WillReturnRows(rows)

	docs, err := repo.List(context.Background(), domain.ListFilter{
		Status:       domain.StatusCompleted,
		DocumentType: domain.TypeTrafikSigortasi,
		Limit:        50,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "doc-1" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
