package ports

import (
	"context"
	"io"

	"github.com/sigortech/docuscan/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveExtraction(ctx context.Context, id string, result domain.Extraction) error
}

// ObjectStorage stores the uploaded scans.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue carries processing work from the api to the workers.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextRecognizer turns a stored scan into raw text, reporting how the
// text was obtained and with what confidence.
type TextRecognizer interface {
	Recognize(ctx context.Context, doc *domain.Document, data []byte) (domain.RecognizedText, error)
}

// DocumentClassifier detects the insurance document class.
type DocumentClassifier interface {
	Classify(text string) domain.DocumentType
}

// FieldExtractor runs the rule cascade for a document type.
type FieldExtractor interface {
	Extract(docType domain.DocumentType, text string) domain.FieldSet
}
