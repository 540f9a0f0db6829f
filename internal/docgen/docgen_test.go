package docgen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/edubot-backend/internal/domain"
	"github.com/yungbote/edubot-backend/internal/learning/content"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

func sampleCourse() *domain.CourseResult {
	topic := "Graph Theory"
	plan := content.FallbackSyllabus(topic, 3)
	modules := make([]domain.ModuleDetail, 0, len(plan.Modules))
	for _, m := range plan.Modules {
		modules = append(modules, content.FallbackModuleDetail(m))
	}
	qs := content.FallbackQuiz(topic, 4)
	return &domain.CourseResult{
		Topic:        topic,
		Syllabus:     plan,
		Modules:      modules,
		Quiz:         domain.QuizSet{Questions: qs, Topic: &topic, Difficulty: domain.DifficultyMedium, TotalQuestions: len(qs), ProviderUsed: "gemini"},
		ProviderUsed: "gemini",
	}
}

func TestPDFRendererWritesDocument(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	r, err := NewPDFRenderer(logger.NewNop(), PDFConfig{Directory: dir, Now: func() time.Time { return at }})
	if err != nil {
		t.Fatalf("NewPDFRenderer: %v", err)
	}

	path, err := r.Render(context.Background(), sampleCourse())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if filepath.Base(path) != "education_graph_theory_20260304_050607.pdf" {
		t.Fatalf("file name: %s", filepath.Base(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", raw[:8])
	}
}

func TestPDFRendererEnforcesSizeLimit(t *testing.T) {
	r, err := NewPDFRenderer(logger.NewNop(), PDFConfig{Directory: t.TempDir(), MaxBytes: 10})
	if err != nil {
		t.Fatalf("NewPDFRenderer: %v", err)
	}
	if _, err := r.Render(context.Background(), sampleCourse()); err == nil {
		t.Fatalf("expected size limit error")
	}
}

func TestSlugAndFileName(t *testing.T) {
	cases := map[string]string{
		"Graph Theory":        "graph_theory",
		"  C++ & Rust!!  ":    "c_rust",
		"///":                 "course",
		strings.Repeat("a", 80): strings.Repeat("a", 50),
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveDownload(t *testing.T) {
	ok := []string{"education_x_1.pdf", "A.PDF"}
	for _, n := range ok {
		if p, valid := ResolveDownload("/srv/pdfs", n); !valid || p != filepath.Join("/srv/pdfs", n) {
			t.Fatalf("%q should resolve, got %q %v", n, p, valid)
		}
	}
	bad := []string{"", "../secret.pdf", "a/b.pdf", `a\b.pdf`, ".hidden.pdf", "notes.txt", ".."}
	for _, n := range bad {
		if _, valid := ResolveDownload("/srv/pdfs", n); valid {
			t.Fatalf("%q should be rejected", n)
		}
	}
}

type fakeBucket struct {
	key  string
	body []byte
	err  error
}

func (f *fakeBucket) UploadFile(ctx context.Context, key string, r io.Reader) error {
	if f.err != nil {
		return f.err
	}
	f.key = key
	f.body, _ = io.ReadAll(r)
	return nil
}
func (f *fakeBucket) DeleteFile(ctx context.Context, key string) error { return nil }
func (f *fakeBucket) GetPublicURL(key string) string                 { return "https://cdn.example.com/" + key }
func (f *fakeBucket) Close() error                                   { return nil }

func TestPublishers(t *testing.T) {
	ref, err := NewLocalPublisher().Publish(context.Background(), "/tmp/pdfs/education_x.pdf")
	if err != nil || ref != "/api/v1/download/pdf/education_x.pdf" {
		t.Fatalf("local publish: %q %v", ref, err)
	}

	dir := t.TempDir()
	local := filepath.Join(dir, "education_y.pdf")
	if err := os.WriteFile(local, []byte("%PDF-1.3"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	bucket := &fakeBucket{}
	ref, err = NewGCSPublisher(logger.NewNop(), bucket, GCSPublisherConfig{}).Publish(context.Background(), local)
	if err != nil {
		t.Fatalf("gcs publish: %v", err)
	}
	if bucket.key != "course_pdf/education_y.pdf" || string(bucket.body) != "%PDF-1.3" {
		t.Fatalf("uploaded %q (%q)", bucket.key, bucket.body)
	}
	if ref != "https://cdn.example.com/course_pdf/education_y.pdf" {
		t.Fatalf("ref: %q", ref)
	}
	if _, err := os.Stat(local); !os.IsNotExist(err) {
		t.Fatalf("local copy should be removed after upload")
	}

	failing := &fakeBucket{err: errors.New("quota")}
	local2 := filepath.Join(dir, "education_z.pdf")
	_ = os.WriteFile(local2, []byte("x"), 0o644)
	if _, err := NewGCSPublisher(logger.NewNop(), failing, GCSPublisherConfig{}).Publish(context.Background(), local2); err == nil {
		t.Fatalf("expected upload error")
	}
}
