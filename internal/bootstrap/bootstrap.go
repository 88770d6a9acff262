package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sigortech/docuscan/internal/config"
	"github.com/sigortech/docuscan/internal/core/docproc/classify"
	"github.com/sigortech/docuscan/internal/core/docproc/extract"
	"github.com/sigortech/docuscan/internal/core/docproc/rules"
	"github.com/sigortech/docuscan/internal/core/ports"
	"github.com/sigortech/docuscan/internal/core/usecase"
	"github.com/sigortech/docuscan/internal/infrastructure/ocr/ocrspace"
	"github.com/sigortech/docuscan/internal/infrastructure/queue/nats"
	"github.com/sigortech/docuscan/internal/infrastructure/recognize"
	"github.com/sigortech/docuscan/internal/infrastructure/repository/postgres"
	"github.com/sigortech/docuscan/internal/infrastructure/resilience"
	"github.com/sigortech/docuscan/internal/infrastructure/storage/localfs"
	"github.com/sigortech/docuscan/internal/observability/logging"
)

type App struct {
	Config config.Config

	Queue     ports.MessageQueue
	Repo      ports.DocumentRepository
	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor
	QueryUC   ports.DocumentQueryService

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	library, err := rules.Load()
	if err != nil {
		return nil, fmt.Errorf("load field rules: %w", err)
	}

	ocrClient := ocrspace.New(ocrspace.Config{
		BaseURL:           cfg.OCRSpaceURL,
		APIKey:            cfg.OCRSpaceAPIKey,
		Language:          cfg.OCRLanguage,
		Engine:            cfg.OCREngine,
		RequestsPerSecond: cfg.OCRRequestsPerSecond,
		Executor:          executor,
	})
	recognizer := recognize.New(ocrClient, cfg.MinPDFTextChars, cfg.SimulationEnabled, logging.Component(logger, "recognize"))

	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(repo, storage, recognizer, classify.NewClassifier(), extract.New(library))
	queryUC := usecase.NewQueryUseCase(repo, queue)

	return &App{
		Config: cfg,
		Queue:  queue,
		Repo:   repo,

		IngestUC:  ingestUC,
		ProcessUC: processUC,
		QueryUC:   queryUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
