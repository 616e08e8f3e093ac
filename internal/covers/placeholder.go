// Package covers produces the placeholder cover image and fetches real
// cover images from OpenLibrary.
package covers

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder dimensions match the cover images shown in the catalog.
const (
	PlaceholderWidth  = 400
	PlaceholderHeight = 600
)

var placeholderCaption = []string{"No Cover", "Available"}

// Placeholder renders the "No Cover Available" image: a white canvas with a
// gray centered caption, encoded as PNG. The output is deterministic.
func Placeholder() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	gray := image.NewUniform(color.RGBA{R: 128, G: 128, B: 128, A: 255})

	lineHeight := face.Metrics().Height.Ceil() + 4
	startY := PlaceholderHeight/2 - lineHeight*len(placeholderCaption)/2

	for i, line := range placeholderCaption {
		d := font.Drawer{
			Dst:  img,
			Src:  gray,
			Face: face,
		}
		width := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((PlaceholderWidth-width)/2, startY+i*lineHeight)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}

	return buf.Bytes(), nil
}
