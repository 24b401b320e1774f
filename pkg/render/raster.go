// Package render synthesizes glyph icons for entries that have no
// source artwork: a rounded color tile with a single centered
// character, as a PNG raster or a scalable SVG. Rendering is always an
// explicit caller step; the assembler never invokes it on its own.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/types"
	"github.com/arthur-debert/stromschlag/pkg/utils"
)

// Raster renders the icon's glyph tile at the given pixel size. The
// icon's colors must be valid hex strings or an INVALID_COLOR error is
// returned.
func Raster(icon types.IconDefinition, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid icon size: %d", size)
	}

	bg, err := parseColor(icon.BackgroundOrDefault())
	if err != nil {
		return nil, err
	}
	fg, err := parseColor(icon.ForegroundOrDefault())
	if err != nil {
		return nil, err
	}

	padding := max(2, size*8/100)
	radius := max(4, size*20/100)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fillRoundedRect(img, padding, size-padding, radius, bg)
	drawGlyph(img, icon.ResolvedGlyph(), fg, size)

	return img, nil
}

// RasterSet renders the icon at every requested size.
func RasterSet(icon types.IconDefinition, sizes []int) (map[int]*image.NRGBA, error) {
	out := make(map[int]*image.NRGBA, len(sizes))
	for _, size := range sizes {
		img, err := Raster(icon, size)
		if err != nil {
			return nil, err
		}
		out[size] = img
	}
	return out, nil
}

// WritePNG encodes the image as PNG at the given path, creating parent
// directories as needed.
func WritePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate,
			"cannot create render directory").WithDetail("path", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite,
			"cannot create render output").WithDetail("path", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite,
			"cannot encode PNG").WithDetail("path", path)
	}
	return nil
}

func parseColor(hex string) (color.NRGBA, error) {
	r, g, b, a, err := utils.HexToRGBA(hex, 255)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// fillRoundedRect fills the square region [lo, hi) with c, rounding
// the corners with the given radius. Corner edges are alpha-blended
// against the distance to the corner circle.
func fillRoundedRect(img *image.NRGBA, lo, hi, radius int, c color.NRGBA) {
	r := float64(radius)
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			// Distance to the nearest corner circle center; zero when
			// outside all corner regions.
			cx := math.Max(math.Max(float64(lo+radius)-float64(x)-0.5, float64(x)+0.5-float64(hi-radius)), 0)
			cy := math.Max(math.Max(float64(lo+radius)-float64(y)-0.5, float64(y)+0.5-float64(hi-radius)), 0)
			dist := math.Sqrt(cx*cx + cy*cy)

			switch {
			case dist <= r-0.5:
				img.SetNRGBA(x, y, c)
			case dist <= r+0.5:
				alpha := uint8(float64(c.A) * (r + 0.5 - dist))
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha})
			}
		}
	}
}

// drawGlyph renders the single-character glyph with the basic bitmap
// face and scales it up to roughly 60% of the tile, centered.
func drawGlyph(dst *image.NRGBA, glyph string, fg color.NRGBA, size int) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	srcH := (metrics.Ascent + metrics.Descent).Ceil()

	drawer := font.Drawer{
		Src:  image.NewUniform(fg),
		Face: face,
	}
	srcW := drawer.MeasureString(glyph).Ceil()
	if srcW == 0 || srcH == 0 {
		return
	}

	glyphImg := image.NewNRGBA(image.Rect(0, 0, srcW, srcH))
	drawer.Dst = glyphImg
	drawer.Dot = fixed.Point26_6{X: 0, Y: fixed.I(metrics.Ascent.Ceil())}
	drawer.DrawString(glyph)

	targetH := max(12, size*60/100)
	targetW := srcW * targetH / srcH
	if targetW > size {
		targetW = size
	}

	x0 := (size - targetW) / 2
	y0 := (size - targetH) / 2
	rect := image.Rect(x0, y0, x0+targetW, y0+targetH)

	xdraw.CatmullRom.Scale(dst, rect, glyphImg, glyphImg.Bounds(), xdraw.Over, nil)
}
