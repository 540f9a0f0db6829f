package gcp

import (
	"errors"
	"testing"
)

func TestBucketConfigNormalize(t *testing.T) {
	cfg, err := BucketConfig{Bucket: " docs ", EmulatorHost: "http://fake-gcs:4443/"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Mode != ObjectStorageModeGCSEmulator {
		t.Fatalf("mode: want emulator got=%q", cfg.Mode)
	}
	if cfg.PublicBaseURL != "http://fake-gcs:4443" || cfg.Bucket != "docs" {
		t.Fatalf("normalized config: %+v", cfg)
	}

	cases := []struct {
		name string
		cfg  BucketConfig
		code ObjectStorageConfigErrorCode
	}{
		{"bad mode", BucketConfig{Bucket: "b", Mode: "s3"}, ObjectStorageConfigErrorInvalidMode},
		{"no bucket", BucketConfig{}, ObjectStorageConfigErrorMissingBucket},
		{"emulator without host", BucketConfig{Bucket: "b", Mode: ObjectStorageModeGCSEmulator}, ObjectStorageConfigErrorMissingEmulatorHost},
		{"relative public url", BucketConfig{Bucket: "b", PublicBaseURL: "localhost"}, ObjectStorageConfigErrorInvalidURL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Normalize()
			var cfgErr *ObjectStorageConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Code != tc.code {
				t.Fatalf("want code %q, got %v", tc.code, err)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	cases := []struct {
		name string
		cfg  BucketConfig
		want string
	}{
		{"gcs default", BucketConfig{Bucket: "docs", Mode: ObjectStorageModeGCS}, "https://storage.googleapis.com/docs/pdf/a.pdf"},
		{"cdn", BucketConfig{Bucket: "docs", CDNDomain: "cdn.example.com"}, "https://cdn.example.com/pdf/a.pdf"},
		{"public base", BucketConfig{Bucket: "docs", Mode: ObjectStorageModeGCS, PublicBaseURL: "http://localhost:4443"}, "http://localhost:4443/docs/pdf/a.pdf"},
		{"emulator", BucketConfig{Bucket: "docs", Mode: ObjectStorageModeGCSEmulator, PublicBaseURL: "http://localhost:4443"}, "http://localhost:4443/download/storage/v1/b/docs/o/pdf%2Fa.pdf?alt=media"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := publicURL(tc.cfg, "/pdf/a.pdf"); got != tc.want {
				t.Fatalf("publicURL: want=%q got=%q", tc.want, got)
			}
		})
	}
}

func TestContentTypeForKey(t *testing.T) {
	if contentTypeForKey("pdf/Course.PDF") != "application/pdf" {
		t.Fatalf("pdf content type")
	}
	if contentTypeForKey("notes.txt") != "" {
		t.Fatalf("unknown extension should have no content type")
	}
}
