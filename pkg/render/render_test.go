// pkg/render/render_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test glyph rendering in raster and vector form

package render_test

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/render"
	"github.com/arthur-debert/stromschlag/pkg/types"
)

func TestRaster(t *testing.T) {
	icon := types.IconDefinition{Name: "terminal", Glyph: "T", Background: "#123456", Foreground: "#abcdef"}

	img, err := render.Raster(icon, 32)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	// The tile center carries the background (or glyph) color; the
	// extreme corner stays transparent.
	center := img.NRGBAAt(16, 16)
	assert.NotZero(t, center.A, "tile center should be painted")
	corner := img.NRGBAAt(0, 0)
	assert.Zero(t, corner.A, "corner outside the rounded rect should be transparent")
}

func TestRasterInvalidColor(t *testing.T) {
	icon := types.IconDefinition{Name: "x", Background: "not-a-color"}
	_, err := render.Raster(icon, 32)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor))
}

func TestRasterInvalidSize(t *testing.T) {
	_, err := render.Raster(types.IconDefinition{Name: "x"}, 0)
	assert.Error(t, err)
}

func TestRasterSet(t *testing.T) {
	icon := types.IconDefinition{Name: "app"}
	set, err := render.RasterSet(icon, []int{16, 32})
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, 16, set[16].Bounds().Dx())
	assert.Equal(t, 32, set[32].Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	icon := types.IconDefinition{Name: "app"}
	img, err := render.Raster(icon, 32)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "app.png")
	require.NoError(t, render.WritePNG(img, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
}

func TestSVG(t *testing.T) {
	icon := types.IconDefinition{Name: "terminal", Glyph: "T", Background: "#123456", Foreground: "#abcdef"}

	data, err := render.SVG(icon, 128)
	require.NoError(t, err)

	svg := string(data)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, `viewBox="0 0 128 128"`)
	assert.Contains(t, svg, "#123456")
	assert.Contains(t, svg, "#abcdef")
	assert.Contains(t, svg, ">T</text>")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(svg), "<?xml"))
}

func TestSVGInvalidColor(t *testing.T) {
	icon := types.IconDefinition{Name: "x", Foreground: "zzz"}
	_, err := render.SVG(icon, 128)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor))
}
