package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/graph"
	"github.com/yungbote/edubot-backend/internal/http"
	httpH "github.com/yungbote/edubot-backend/internal/http/handlers"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Content  *httpH.ContentHandler
	Topic    *httpH.TopicHandler
	Document *httpH.DocumentHandler
	Realtime *httpH.RealtimeHandler
	GraphQL  *httpH.GraphQLHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, hub *realtime.SSEHub) (Handlers, error) {
	log.Info("Wiring handlers...")
	schema, err := graph.NewSchema(graph.Deps{Log: log, Content: services.Content})
	if err != nil {
		return Handlers{}, fmt.Errorf("build graphql schema: %w", err)
	}
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Content:  httpH.NewContentHandlerWithDeps(httpH.ContentHandlerDeps{Log: log, Content: services.Content}),
		Topic:    httpH.NewTopicHandler(services.Content),
		Document: httpH.NewDocumentHandler(cfg.PDFDirectory),
		Realtime: httpH.NewRealtimeHandler(log, hub),
		GraphQL:  httpH.NewGraphQLHandler(schema),
	}, nil
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = serviceNameDefault
	}
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		ServiceName:     serviceName,
		CORSOrigins:     cfg.CORSOrigins,
		RequestTimeout:  cfg.RequestTimeout(),
		HealthHandler:   handlers.Health,
		ContentHandler:  handlers.Content,
		TopicHandler:    handlers.Topic,
		DocumentHandler: handlers.Document,
		RealtimeHandler: handlers.Realtime,
		GraphQLHandler:  handlers.GraphQL,
	})
}
