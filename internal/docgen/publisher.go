package docgen

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yungbote/edubot-backend/internal/platform/gcp"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

// DownloadPrefix is the REST route that serves locally stored documents.
const DownloadPrefix = "/api/v1/download/pdf/"

// Publisher makes a rendered document reachable and returns its reference.
type Publisher interface {
	Publish(ctx context.Context, localPath string) (string, error)
}

type localPublisher struct{}

// NewLocalPublisher keeps documents in the render directory; the download route serves them.
func NewLocalPublisher() Publisher { return localPublisher{} }

func (localPublisher) Publish(ctx context.Context, localPath string) (string, error) {
	return DownloadPrefix + filepath.Base(localPath), nil
}

type gcsPublisher struct {
	log       *logger.Logger
	bucket    gcp.BucketService
	keyPrefix string
	keepLocal bool
}

type GCSPublisherConfig struct {
	KeyPrefix string
	// KeepLocal leaves the rendered file on disk after upload.
	KeepLocal bool
}

func NewGCSPublisher(log *logger.Logger, bucket gcp.BucketService, cfg GCSPublisherConfig) Publisher {
	prefix := strings.Trim(strings.TrimSpace(cfg.KeyPrefix), "/")
	if prefix == "" {
		prefix = "course_pdf"
	}
	return &gcsPublisher{
		log:       log.With("service", "GCSDocumentPublisher"),
		bucket:    bucket,
		keyPrefix: prefix,
		keepLocal: cfg.KeepLocal,
	}
}

func (p *gcsPublisher) Publish(ctx context.Context, localPath string) (string, error) {
	key := path.Join(p.keyPrefix, filepath.Base(localPath))
	if err := p.upload(ctx, key, localPath); err != nil {
		return "", err
	}
	if !p.keepLocal {
		if err := os.Remove(localPath); err != nil {
			p.log.Warn("failed to remove uploaded document (ignored)", "path", localPath, "error", err)
		}
	}
	return p.bucket.GetPublicURL(key), nil
}

func (p *gcsPublisher) upload(ctx context.Context, key, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open rendered document: %w", err)
	}
	defer f.Close()
	if err := p.bucket.UploadFile(ctx, key, f); err != nil {
		return fmt.Errorf("upload document: %w", err)
	}
	return nil
}

// ResolveDownload maps a requested file name to a path inside dir. It rejects
// anything that is not a bare *.pdf name.
func ResolveDownload(dir, name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", false
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", false
	}
	return filepath.Join(dir, name), true
}
