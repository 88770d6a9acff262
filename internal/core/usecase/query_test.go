package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sigortech/docuscan/internal/core/domain"
)

type queryRepoFake struct {
	doc         *domain.Document
	getErr      error
	listFilter  domain.ListFilter
	statusCalls []statusCall
}

func (f *queryRepoFake) Create(context.Context, *domain.Document) error { return nil }

func (f *queryRepoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyDoc := *f.doc
	return &copyDoc, nil
}

func (f *queryRepoFake) List(_ context.Context, filter domain.ListFilter) ([]domain.Document, error) {
	f.listFilter = filter
	return []domain.Document{*f.doc}, nil
}

func (f *queryRepoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	return nil
}

func (f *queryRepoFake) SaveExtraction(context.Context, string, domain.Extraction) error {
	return errors.New("not implemented")
}

func TestListClampsLimit(t *testing.T) {
	repo := &queryRepoFake{doc: &domain.Document{ID: "doc-1"}}
	uc := NewQueryUseCase(repo, &ingestQueueFake{})

	if _, err := uc.List(context.Background(), domain.ListFilter{Limit: 0}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if repo.listFilter.Limit != 50 {
		t.Fatalf("expected default limit 50, got %d", repo.listFilter.Limit)
	}

	if _, err := uc.List(context.Background(), domain.ListFilter{Limit: 10_000}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if repo.listFilter.Limit != 50 {
		t.Fatalf("expected oversized limit clamped, got %d", repo.listFilter.Limit)
	}
}

func TestReprocessRequeuesFailedDocument(t *testing.T) {
	repo := &queryRepoFake{doc: &domain.Document{ID: "doc-1", Status: domain.StatusFailed}}
	queue := &ingestQueueFake{}
	uc := NewQueryUseCase(repo, queue)

	if err := uc.Reprocess(context.Background(), "doc-1"); err != nil {
		t.Fatalf("Reprocess() error = %v", err)
	}
	if len(repo.statusCalls) != 1 || repo.statusCalls[0].status != domain.StatusUploaded {
		t.Fatalf("expected status reset to uploaded, got %+v", repo.statusCalls)
	}
	if len(queue.documentIDs) != 1 || queue.documentIDs[0] != "doc-1" {
		t.Fatalf("expected requeued doc-1, got %v", queue.documentIDs)
	}
}

func TestReprocessRefusesInFlightDocument(t *testing.T) {
	repo := &queryRepoFake{doc: &domain.Document{ID: "doc-1", Status: domain.StatusProcessing}}
	uc := NewQueryUseCase(repo, &ingestQueueFake{})

	err := uc.Reprocess(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.statusCalls) != 0 {
		t.Fatalf("expected no status change, got %+v", repo.statusCalls)
	}
}
