package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" env-default:"8000"`
	LogMode string `env:"LOG_MODE" env-default:"development"`
	GinMode string `env:"GIN_MODE" env-default:"release"`

	GeminiBaseURL        string  `env:"GEMINI_BASE_URL"`
	GeminiModel          string  `env:"GEMINI_MODEL"`
	GeminiTemperature    float32 `env:"GEMINI_TEMPERATURE" env-default:"0.7"`
	GeminiMaxTokens      int     `env:"GEMINI_MAX_TOKENS" env-default:"2000"`
	GeminiTimeoutSeconds int     `env:"GEMINI_TIMEOUT_SECONDS" env-default:"60"`

	RequestTimeoutSeconds   int `env:"REQUEST_TIMEOUT_SECONDS" env-default:"300"`
	ShutdownGraceSeconds    int `env:"SHUTDOWN_GRACE_SECONDS" env-default:"15"`
	CourseModuleConcurrency int `env:"COURSE_MODULE_CONCURRENCY" env-default:"1"`

	PDFDirectory          string `env:"PDF_DIRECTORY" env-default:"generated_pdfs"`
	MaxPDFSizeMB          int64  `env:"MAX_PDF_SIZE_MB" env-default:"50"`
	DocumentStore         string `env:"DOCUMENT_STORE" env-default:"local"`
	DocumentGCSBucket     string `env:"DOCUMENT_GCS_BUCKET"`
	DocumentGCSPrefix     string `env:"DOCUMENT_GCS_PREFIX" env-default:"course_pdf"`
	DocumentPublicBaseURL string `env:"DOCUMENT_PUBLIC_BASE_URL"`
	DocumentKeepLocal     bool   `env:"DOCUMENT_KEEP_LOCAL" env-default:"false"`
	ObjectStorageMode     string `env:"OBJECT_STORAGE_MODE"`
	StorageEmulatorHost   string `env:"STORAGE_EMULATOR_HOST"`
	GCPCredentials        string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	TopicStore  string `env:"TOPIC_STORE" env-default:"memory"`
	SQLitePath  string `env:"SQLITE_PATH" env-default:"edubot.db"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	RedisAddr    string `env:"REDIS_ADDR"`
	RedisChannel string `env:"REDIS_CHANNEL" env-default:"edubot-progress"`

	CORSOrigins []string `env:"CORS_ORIGINS" env-default:"*" env-separator:","`

	OtelEnabled     bool    `env:"OTEL_ENABLED" env-default:"false"`
	OtelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelHeaders     string  `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	OtelInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"false"`
	OtelSampleRatio float64 `env:"OTEL_SAMPLER_RATIO" env-default:"0.1"`
	Environment     string  `env:"APP_ENV" env-default:"development"`
}

const (
	DocumentStoreLocal = "local"
	DocumentStoreGCS   = "gcs"

	TopicStoreMemory   = "memory"
	TopicStoreSQLite   = "sqlite"
	TopicStorePostgres = "postgres"
)

// LoadConfig reads an optional .env file (or the file named by ENV_FILE) and then
// the process environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.DocumentStore)) {
	case DocumentStoreLocal:
	case DocumentStoreGCS:
		if strings.TrimSpace(c.DocumentGCSBucket) == "" {
			return fmt.Errorf("DOCUMENT_STORE=gcs requires DOCUMENT_GCS_BUCKET")
		}
	default:
		return fmt.Errorf("unsupported DOCUMENT_STORE %q", c.DocumentStore)
	}
	switch strings.ToLower(strings.TrimSpace(c.TopicStore)) {
	case TopicStoreMemory, TopicStoreSQLite:
	case TopicStorePostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("TOPIC_STORE=postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported TOPIC_STORE %q", c.TopicStore)
	}
	if c.CourseModuleConcurrency < 1 {
		return fmt.Errorf("COURSE_MODULE_CONCURRENCY must be >= 1")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownGraceSeconds) * time.Second
}
