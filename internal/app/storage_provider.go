package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/edubot-backend/internal/docgen"
	"github.com/yungbote/edubot-backend/internal/platform/gcp"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

var newBucketService = gcp.NewBucketService

type StorageProviderBootstrapErrorCode string

const (
	StorageProviderBootstrapErrorInvalidConfig StorageProviderBootstrapErrorCode = "invalid_config"
	StorageProviderBootstrapErrorConnectFailed StorageProviderBootstrapErrorCode = "connect_failed"
)

type StorageProviderBootstrapError struct {
	Code   StorageProviderBootstrapErrorCode
	Store  string
	Bucket string
	Cause  error
}

func (e *StorageProviderBootstrapError) Error() string {
	if e == nil {
		return "document storage bootstrap failed"
	}
	return fmt.Sprintf(
		"document storage bootstrap failed (code=%s store=%q bucket=%q): %v",
		e.Code,
		e.Store,
		e.Bucket,
		e.Cause,
	)
}

func (e *StorageProviderBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// resolveDocumentPublisher picks where exported PDFs end up. The returned
// bucket is nil for the local store and must be closed by the caller otherwise.
func resolveDocumentPublisher(log *logger.Logger, cfg Config) (docgen.Publisher, gcp.BucketService, error) {
	store := strings.ToLower(strings.TrimSpace(cfg.DocumentStore))
	if store == "" || store == DocumentStoreLocal {
		log.Info("Selecting document store", "store", DocumentStoreLocal, "directory", cfg.PDFDirectory)
		return docgen.NewLocalPublisher(), nil, nil
	}

	bucketCfg := gcp.BucketConfig{
		Bucket:        cfg.DocumentGCSBucket,
		Mode:          gcp.ObjectStorageMode(cfg.ObjectStorageMode),
		EmulatorHost:  cfg.StorageEmulatorHost,
		PublicBaseURL: cfg.DocumentPublicBaseURL,
		Credentials:   cfg.GCPCredentials,
	}
	log.Info(
		"Selecting document store",
		"store", store,
		"bucket", bucketCfg.Bucket,
		"mode", bucketCfg.Mode,
		"emulator_host", bucketCfg.EmulatorHost,
	)
	bucket, err := newBucketService(log, bucketCfg)
	if err != nil {
		classified := classifyStorageProviderBootstrapError(store, bucketCfg, err)
		log.Error("Document store bootstrap failed", "store", store, "error", classified)
		return nil, nil, classified
	}
	pub := docgen.NewGCSPublisher(log, bucket, docgen.GCSPublisherConfig{
		KeyPrefix: cfg.DocumentGCSPrefix,
		KeepLocal: cfg.DocumentKeepLocal,
	})
	return pub, bucket, nil
}

func classifyStorageProviderBootstrapError(store string, bucketCfg gcp.BucketConfig, err error) error {
	code := StorageProviderBootstrapErrorConnectFailed
	var cfgErr *gcp.ObjectStorageConfigError
	if errors.As(err, &cfgErr) {
		code = StorageProviderBootstrapErrorInvalidConfig
	}
	return &StorageProviderBootstrapError{
		Code:   code,
		Store:  store,
		Bucket: bucketCfg.Bucket,
		Cause:  err,
	}
}
