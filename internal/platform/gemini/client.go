package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

// ProviderName is reported as provider_used on every result.
const ProviderName = "gemini"

const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel       = "gemini-2.0-flash"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 60 * time.Second
)

// Client is the single generative-content provider used by the content services.
type Client interface {
	// GenerateText sends one prompt with the caller's credential and returns the raw
	// model output. Output is never empty on success.
	GenerateText(ctx context.Context, apiKey string, system string, user string) (string, error)

	Name() string
}

type Config struct {
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	// HTTPClient overrides the client built from Timeout (tests).
	HTTPClient *http.Client
}

type client struct {
	log         *logger.Logger
	baseURL     string
	model       string
	temperature float32
	maxTokens   int
	httpClient  *http.Client
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = DefaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		log:         log.With("service", "GeminiClient"),
		baseURL:     baseURL,
		model:       model,
		temperature: temp,
		maxTokens:   maxTokens,
		httpClient:  httpClient,
	}, nil
}

func (c *client) Name() string { return ProviderName }

func (c *client) GenerateText(ctx context.Context, apiKey string, system string, user string) (string, error) {
	ctx, span := otel.Tracer("edubot/gemini").Start(ctx, "gemini.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", c.model),
		attribute.Int("llm.prompt_chars", len(system)+len(user)),
	)

	text, err := c.generate(ctx, apiKey, system, user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.output_chars", len(text)))
	return text, nil
}

func (c *client) generate(ctx context.Context, apiKey string, system string, user string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", credentialError(fmt.Errorf("empty api key"))
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = c.httpClient
	api := openai.NewClientWithConfig(cfg)

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})

	start := time.Now()
	resp, err := api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		mapped := classify(err)
		c.log.Warn("Gemini request failed",
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error(),
		)
		return "", mapped
	}

	if len(resp.Choices) == 0 {
		return "", providerError(fmt.Errorf("no choices in response"))
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", providerError(fmt.Errorf("empty response from Gemini"))
	}

	c.log.Debug("Gemini request completed",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_usage", resp.Usage.PromptTokens,
		"completion_usage", resp.Usage.CompletionTokens,
	)
	return text, nil
}
