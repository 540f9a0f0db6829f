package services

import (
	"context"
	"fmt"

	"github.com/yungbote/edubot-backend/internal/docgen"
	"github.com/yungbote/edubot-backend/internal/domain"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

// DocumentService turns a finished course into a downloadable document reference.
type DocumentService interface {
	Export(ctx context.Context, course *domain.CourseResult) (string, error)
}

type documentService struct {
	log       *logger.Logger
	renderer  docgen.Renderer
	publisher docgen.Publisher
}

func NewDocumentService(baseLog *logger.Logger, renderer docgen.Renderer, publisher docgen.Publisher) DocumentService {
	return &documentService{
		log:       baseLog.With("service", "DocumentService"),
		renderer:  renderer,
		publisher: publisher,
	}
}

func (ds *documentService) Export(ctx context.Context, course *domain.CourseResult) (string, error) {
	path, err := ds.renderer.Render(ctx, course)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	ref, err := ds.publisher.Publish(ctx, path)
	if err != nil {
		return "", fmt.Errorf("publish: %w", err)
	}
	ds.log.Debug("Document exported", "topic", course.Topic, "ref", ref)
	return ref, nil
}
