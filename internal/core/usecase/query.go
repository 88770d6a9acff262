package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sigortech/docuscan/internal/core/domain"
	"github.com/sigortech/docuscan/internal/core/ports"
)

type QueryUseCase struct {
	repo  ports.DocumentRepository
	queue ports.MessageQueue
}

func NewQueryUseCase(repo ports.DocumentRepository, queue ports.MessageQueue) *QueryUseCase {
	return &QueryUseCase{repo: repo, queue: queue}
}

func (uc *QueryUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	return doc, nil
}

func (uc *QueryUseCase) List(ctx context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	docs, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Reprocess re-queues a document that already finished or got stuck. A
// document currently in flight is refused so two workers never race on
// the same record.
func (uc *QueryUseCase) Reprocess(ctx context.Context, id string) error {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}
	if doc.Status == domain.StatusProcessing {
		return domain.WrapError(domain.ErrInvalidInput, "reprocess document", errors.New("document is currently processing"))
	}

	if err := uc.repo.UpdateStatus(ctx, id, domain.StatusUploaded, ""); err != nil {
		return fmt.Errorf("reset document status: %w", err)
	}
	if err := uc.queue.PublishDocumentUploaded(ctx, id); err != nil {
		return fmt.Errorf("publish reprocess event: %w", err)
	}
	return nil
}
