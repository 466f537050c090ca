// Package evidence handles capture-side processing and upload of evidence
// photos: burning the capture context into the image and pushing the result
// to whichever photo backend is configured.
package evidence

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mantisworks/mantis-field/internal/client/models"
)

// Stamp is the capture context burned into every evidence photo. Burning it
// into the pixels keeps the context attached even when the file is exported
// out of the system.
type Stamp struct {
	Timestamp   time.Time
	Gps         *models.GpsCoordinates
	BadgeNumber string
}

// Lines renders the stamp as the text lines drawn onto the image.
func (s Stamp) Lines() []string {
	lines := []string{s.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC")}
	if s.Gps != nil {
		lines = append(lines, fmt.Sprintf("%.6f, %.6f (±%.0fm)", s.Gps.Latitude, s.Gps.Longitude, s.Gps.Accuracy))
	}
	if s.BadgeNumber != "" {
		lines = append(lines, "officer "+s.BadgeNumber)
	}
	return lines
}

const (
	stripPadding = 4
	lineHeight   = 16
)

// Watermark returns a copy of img with a dark strip along the bottom edge
// carrying the stamp text. The input image is never modified.
func Watermark(img image.Image, stamp Stamp) *image.NRGBA {
	out := imaging.Clone(img)

	lines := stamp.Lines()
	stripH := len(lines)*lineHeight + 2*stripPadding
	bounds := out.Bounds()
	strip := image.Rect(bounds.Min.X, bounds.Max.Y-stripH, bounds.Max.X, bounds.Max.Y)

	draw.Draw(out, strip, &image.Uniform{color.NRGBA{0, 0, 0, 180}}, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.NRGBA{255, 255, 255, 255}),
		Face: basicfont.Face7x13,
	}
	y := strip.Min.Y + stripPadding + basicfont.Face7x13.Ascent
	for _, line := range lines {
		d.Dot = fixed.P(strip.Min.X+stripPadding, y)
		d.DrawString(line)
		y += lineHeight
	}

	return out
}

// WatermarkFile reads srcPath, stamps it, and writes the result to dstPath.
// The output format follows dstPath's extension.
func WatermarkFile(srcPath, dstPath string, stamp Stamp) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to open photo: %w", err)
	}
	if err := imaging.Save(Watermark(img, stamp), dstPath); err != nil {
		return fmt.Errorf("failed to save watermarked photo: %w", err)
	}
	return nil
}
