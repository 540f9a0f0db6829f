package docgen

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	coverWidth  = 1200
	coverHeight = 500
)

var coverPalette = []color.NRGBA{
	{R: 0x1F, G: 0x4E, B: 0x79, A: 0xFF},
	{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF},
	{R: 0x6A, G: 0x1B, B: 0x9A, A: 0xFF},
	{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF},
	{R: 0x00, G: 0x69, B: 0x5C, A: 0xFF},
	{R: 0xEF, G: 0x6C, B: 0x00, A: 0xFF},
}

type coverFonts struct {
	title    font.Face
	subtitle font.Face
}

func loadCoverFonts() (coverFonts, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return coverFonts{}, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return coverFonts{}, fmt.Errorf("parse regular font: %w", err)
	}
	return coverFonts{
		title:    truetype.NewFace(bold, &truetype.Options{Size: 64}),
		subtitle: truetype.NewFace(regular, &truetype.Options{Size: 30}),
	}, nil
}

// pickColor is stable per topic so re-exports of one course share a cover.
func pickColor(topic string) color.NRGBA {
	var h uint32 = 2166136261
	for _, b := range []byte(strings.ToLower(topic)) {
		h ^= uint32(b)
		h *= 16777619
	}
	return coverPalette[int(h%uint32(len(coverPalette)))]
}

// renderCover draws the PNG banner placed on the first page of a course document.
func renderCover(fonts coverFonts, topic, subtitle string) ([]byte, error) {
	dc := gg.NewContext(coverWidth, coverHeight)

	base := pickColor(topic)
	dc.SetColor(base)
	dc.DrawRectangle(0, 0, coverWidth, coverHeight)
	dc.Fill()

	// Accent band along the bottom edge.
	dc.SetColor(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x33})
	dc.DrawRectangle(0, coverHeight-60, coverWidth, 60)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(fonts.title)
	dc.DrawStringWrapped(topic, coverWidth/2, coverHeight/2-40, 0.5, 0.5, coverWidth-160, 1.3, gg.AlignCenter)

	dc.SetFontFace(fonts.subtitle)
	dc.DrawStringAnchored(subtitle, coverWidth/2, coverHeight-30, 0.5, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
