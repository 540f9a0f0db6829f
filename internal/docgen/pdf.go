package docgen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/edubot-backend/internal/domain"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

// DefaultMaxBytes mirrors the 50 MB document ceiling of the download route.
const DefaultMaxBytes int64 = 50 << 20

// Renderer writes a course document to local disk and returns its path.
type Renderer interface {
	Render(ctx context.Context, course *domain.CourseResult) (string, error)
}

type PDFConfig struct {
	Directory string
	MaxBytes  int64
	Now       func() time.Time
}

type pdfRenderer struct {
	log      *logger.Logger
	dir      string
	maxBytes int64
	now      func() time.Time
	fonts    coverFonts
}

func NewPDFRenderer(log *logger.Logger, cfg PDFConfig) (Renderer, error) {
	dir := strings.TrimSpace(cfg.Directory)
	if dir == "" {
		return nil, fmt.Errorf("pdf directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pdf directory: %w", err)
	}
	fonts, err := loadCoverFonts()
	if err != nil {
		return nil, err
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &pdfRenderer{
		log:      log.With("service", "PDFRenderer"),
		dir:      dir,
		maxBytes: maxBytes,
		now:      now,
		fonts:    fonts,
	}, nil
}

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := strings.Trim(slugRE.ReplaceAllString(strings.ToLower(s), "_"), "_")
	if len(slug) > 50 {
		slug = strings.TrimRight(slug[:50], "_")
	}
	if slug == "" {
		slug = "course"
	}
	return slug
}

// FileName is education_<slug>_<YYYYmmdd_HHMMSS>.pdf.
func FileName(topic string, at time.Time) string {
	return fmt.Sprintf("education_%s_%s.pdf", slugify(topic), at.UTC().Format("20060102_150405"))
}

func (r *pdfRenderer) Render(ctx context.Context, course *domain.CourseResult) (string, error) {
	_, span := otel.Tracer("edubot/docgen").Start(ctx, "docgen.render_pdf")
	defer span.End()

	if course == nil {
		return "", fmt.Errorf("course required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cover, err := renderCover(r.fonts, course.Topic, "EduBot course  |  "+course.ProviderUsed)
	if err != nil {
		return "", err
	}

	pdf := buildCoursePDF(course, cover, r.now())
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}
	if int64(buf.Len()) > r.maxBytes {
		return "", fmt.Errorf("pdf is %d bytes, limit %d", buf.Len(), r.maxBytes)
	}

	name := FileName(course.Topic, r.now())
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	span.SetAttributes(attribute.Int("docgen.bytes", buf.Len()), attribute.String("docgen.file", name))
	r.log.Info("Course document rendered", "file", name, "bytes", buf.Len())
	return path, nil
}

func buildCoursePDF(course *domain.CourseResult, cover []byte, at time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(course.Topic), false)
	pdf.SetCreator("EduBot API", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	width := pageW - left - right

	heading := func(text string, size float64) {
		pdf.SetFont("Helvetica", "B", size)
		pdf.SetTextColor(31, 78, 121)
		pdf.MultiCell(0, size*0.5, tr(text), "", "L", false)
		pdf.Ln(2)
	}
	body := func(text string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(30, 30, 30)
		pdf.MultiCell(0, 5.5, tr(text), "", "L", false)
		pdf.Ln(2)
	}
	bullets := func(items []string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(30, 30, 30)
		for _, it := range items {
			pdf.MultiCell(0, 5.5, tr("- "+it), "", "L", false)
		}
		pdf.Ln(2)
	}

	// Cover page.
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("cover", opts, bytes.NewReader(cover))
	pdf.ImageOptions("cover", left, 20, width, width*coverHeight/coverWidth, false, opts, 0, "")
	pdf.SetY(20 + width*coverHeight/coverWidth + 10)
	heading(course.Topic, 22)
	body(fmt.Sprintf("Generated %s by %s", at.UTC().Format("2006-01-02 15:04 MST"), course.ProviderUsed))
	if course.Syllabus.TotalDuration != "" {
		body("Total duration: " + course.Syllabus.TotalDuration)
	}

	heading("Course Overview", 16)
	body(course.Syllabus.Overview)
	if len(course.Syllabus.LearningObjectives) > 0 {
		heading("Learning Objectives", 14)
		bullets(course.Syllabus.LearningObjectives)
	}

	for i, m := range course.Modules {
		pdf.AddPage()
		heading(fmt.Sprintf("Module %d: %s", i+1, m.Title), 16)
		if m.EstimatedDuration != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(90, 90, 90)
			pdf.MultiCell(0, 5, tr("Estimated duration: "+m.EstimatedDuration), "", "L", false)
			pdf.Ln(2)
		}
		body(m.Description)
		body(m.Content)
		if len(m.KeyPoints) > 0 {
			heading("Key Points", 13)
			bullets(m.KeyPoints)
		}
	}

	if len(course.Quiz.Questions) > 0 {
		pdf.AddPage()
		heading("Assessment Quiz", 16)
		for i, q := range course.Quiz.Questions {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(30, 30, 30)
			pdf.MultiCell(0, 5.5, tr(fmt.Sprintf("%d. %s", i+1, q.Question)), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			for j, opt := range q.Options {
				pdf.MultiCell(0, 5.5, tr(fmt.Sprintf("   %c) %s", 'A'+j, opt)), "", "L", false)
			}
			pdf.Ln(1)
		}

		pdf.AddPage()
		heading("Answer Key", 16)
		for i, q := range course.Quiz.Questions {
			answer := ""
			if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
				answer = q.Options[q.CorrectAnswer]
			}
			body(fmt.Sprintf("%d. %c) %s. %s", i+1, 'A'+q.CorrectAnswer, answer, q.Explanation))
		}
	}
	return pdf
}
