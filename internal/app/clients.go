package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/edubot-backend/internal/platform/gcp"
	"github.com/yungbote/edubot-backend/internal/platform/gemini"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime/bus"
)

type Clients struct {
	Gemini gemini.Client
	// ProgressBus is nil when REDIS_ADDR is unset; progress then stays on this instance.
	ProgressBus bus.Bus
	Bucket      gcp.BucketService
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Gemini
	geminiClient, err := gemini.NewClient(log, gemini.Config{
		BaseURL:     cfg.GeminiBaseURL,
		Model:       cfg.GeminiModel,
		Temperature: cfg.GeminiTemperature,
		MaxTokens:   cfg.GeminiMaxTokens,
		Timeout:     time.Duration(cfg.GeminiTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init gemini client: %w", err)
	}

	// Redis
	var progressBus bus.Bus
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		b, err := bus.NewRedisBus(log, bus.RedisConfig{Addr: cfg.RedisAddr, Channel: cfg.RedisChannel})
		if err != nil {
			return Clients{}, fmt.Errorf("init redis progress bus: %w", err)
		}
		progressBus = b
	}

	return Clients{
		Gemini:      geminiClient,
		ProgressBus: progressBus,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.ProgressBus != nil {
		_ = c.ProgressBus.Close()
	}
	if c.Bucket != nil {
		_ = c.Bucket.Close()
	}
}
