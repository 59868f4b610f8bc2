package texture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// twoRows is a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(8)
	require.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())

	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(0, 7))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(7, 7))
}

func TestFlipVertical(t *testing.T) {
	img := twoRows()
	FlipVertical(img)
	assert.Equal(t, blue, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
}

func TestDecodeFormats(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, twoRows()))
	require.NoError(t, bmp.Encode(&bmpBuf, twoRows()))

	for name, buf := range map[string]*bytes.Buffer{"png": &pngBuf, "bmp": &bmpBuf} {
		t.Run(name, func(t *testing.T) {
			img, err := Decode(buf)
			require.NoError(t, err)
			assert.Equal(t, red, img.RGBAAt(0, 0))
			assert.Equal(t, blue, img.RGBAAt(0, 1))
		})
	}

	_, err := Decode(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestToRGBAReanchors(t *testing.T) {
	src := twoRows().SubImage(image.Rect(0, 1, 2, 2))
	img := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, blue, img.RGBAAt(0, 0))
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 16))

	assert.Same(t, img, Fit(img, 0))
	assert.Same(t, img, Fit(img, 64))

	small := Fit(img, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 8), small.Bounds())

	tall := Fit(image.NewRGBA(image.Rect(0, 0, 4, 400)), 100)
	assert.Equal(t, image.Rect(0, 0, 1, 100), tall.Bounds())
}

func TestLoadAndJoin(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "orb.png", twoRows())

	ctx := context.Background()
	orb := Load(ctx, "orb", path, Options{})
	missing := Load(ctx, "water", filepath.Join(dir, "water.jpg"), Options{})
	board := Generated("checkerboard", &Image{RGBA: Checkerboard(8), Clamp: true})

	require.NoError(t, Join(ctx, orb, missing, board))
	assert.True(t, orb.Ready())
	assert.True(t, missing.Ready())

	img, err := orb.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "orb", img.Name)
	assert.Equal(t, blue, img.RGBA.RGBAAt(0, 0), "rows are flipped for upload")

	_, err = missing.Wait(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), `"water"`)

	gen, err := board.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "checkerboard", gen.Name)
	assert.True(t, gen.Clamp)
}

func TestJoinHonoursContext(t *testing.T) {
	pending := newFuture("never")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Join(ctx, pending)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, pending.Ready())

	_, err = pending.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
