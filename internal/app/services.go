package app

import (
	"fmt"

	"github.com/yungbote/edubot-backend/internal/docgen"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime"
	"github.com/yungbote/edubot-backend/internal/services"
)

type Services struct {
	Documents services.DocumentService
	Content   services.ContentService
}

func wireServices(log *logger.Logger, cfg Config, clients *Clients, reposet Repos, hub *realtime.SSEHub) (Services, error) {
	log.Info("Wiring services...")

	renderer, err := docgen.NewPDFRenderer(log, docgen.PDFConfig{
		Directory: cfg.PDFDirectory,
		MaxBytes:  cfg.MaxPDFSizeMB << 20,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init pdf renderer: %w", err)
	}
	publisher, bucket, err := resolveDocumentPublisher(log, cfg)
	if err != nil {
		return Services{}, err
	}
	clients.Bucket = bucket
	documents := services.NewDocumentService(log, renderer, publisher)

	// A nil bus must not reach the notifier as a typed-nil interface.
	var pub realtime.Publisher
	if clients.ProgressBus != nil {
		pub = clients.ProgressBus
	}
	notifier := realtime.NewNotifier(log, hub, pub)

	content := services.NewContentService(
		log,
		clients.Gemini,
		reposet.Topics,
		notifier,
		documents,
		services.ContentConfig{ModuleConcurrency: cfg.CourseModuleConcurrency},
	)

	return Services{
		Documents: documents,
		Content:   content,
	}, nil
}
