package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":8000" {
		t.Fatalf("addr: %q", cfg.Addr())
	}
	if cfg.RequestTimeout() != 300*time.Second {
		t.Fatalf("request timeout: %v", cfg.RequestTimeout())
	}
	if cfg.DocumentStore != DocumentStoreLocal || cfg.TopicStore != TopicStoreMemory {
		t.Fatalf("stores: %q %q", cfg.DocumentStore, cfg.TopicStore)
	}
	if cfg.MaxPDFSizeMB != 50 || cfg.CourseModuleConcurrency != 1 {
		t.Fatalf("limits: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("cors origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	body := "PORT=9100\nCORS_ORIGINS=https://a.example,https://b.example\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("CORS_ORIGINS", "")
	os.Unsetenv("CORS_ORIGINS")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":9100" {
		t.Fatalf("addr: %q", cfg.Addr())
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors origins: %v", cfg.CORSOrigins)
	}
}

func TestConfigValidate(t *testing.T) {
	base := Config{DocumentStore: DocumentStoreLocal, TopicStore: TopicStoreMemory, CourseModuleConcurrency: 1}
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"gcs without bucket", func(c *Config) { c.DocumentStore = DocumentStoreGCS }, true},
		{"gcs with bucket", func(c *Config) { c.DocumentStore = DocumentStoreGCS; c.DocumentGCSBucket = "b" }, false},
		{"unknown document store", func(c *Config) { c.DocumentStore = "s3" }, true},
		{"postgres without dsn", func(c *Config) { c.TopicStore = TopicStorePostgres }, true},
		{"sqlite", func(c *Config) { c.TopicStore = TopicStoreSQLite }, false},
		{"unknown topic store", func(c *Config) { c.TopicStore = "mongo" }, true},
		{"zero concurrency", func(c *Config) { c.CourseModuleConcurrency = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("validate: err=%v wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
