package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/edubot-backend/internal/http/handlers"
	httpMW "github.com/yungbote/edubot-backend/internal/http/middleware"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	CORSOrigins    []string
	RequestTimeout time.Duration

	HealthHandler   *httpH.HealthHandler
	ContentHandler  *httpH.ContentHandler
	TopicHandler    *httpH.TopicHandler
	DocumentHandler *httpH.DocumentHandler
	RealtimeHandler *httpH.RealtimeHandler
	GraphQLHandler  *httpH.GraphQLHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
		r.GET("/docs-info", cfg.HealthHandler.DocsInfo)
	}

	// GraphQL
	if cfg.GraphQLHandler != nil {
		gql := r.Group("/graphql", httpMW.Timeout(cfg.RequestTimeout))
		gql.GET("", cfg.GraphQLHandler.Serve)
		gql.POST("", cfg.GraphQLHandler.Serve)
	}

	api := r.Group("/api/v1")
	{
		// Realtime (SSE), not bound by the request timeout
		if cfg.RealtimeHandler != nil {
			api.GET("/educate/progress", cfg.RealtimeHandler.CourseProgress)
		}

		if cfg.DocumentHandler != nil {
			api.GET("/download/pdf/:filename", cfg.DocumentHandler.DownloadPDF)
		}

		if cfg.TopicHandler != nil {
			api.GET("/topics", cfg.TopicHandler.List)
			api.GET("/topics/:id", cfg.TopicHandler.Get)
		}
	}

	generate := api.Group("/", httpMW.Timeout(cfg.RequestTimeout))
	{
		if cfg.ContentHandler != nil {
			generate.POST("/summarize", cfg.ContentHandler.Summarize)
			generate.POST("/explain", cfg.ContentHandler.Explain)
			generate.POST("/quiz", cfg.ContentHandler.Quiz)
			generate.POST("/educate", cfg.ContentHandler.Educate)
		}
	}

	return r
}
