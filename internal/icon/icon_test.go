package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabbalaci/procwatch/internal/presenter"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := Load("", FormatPNG)
	require.NoError(t, err)

	for _, i := range []presenter.Icon{presenter.IconPresent, presenter.IconAbsent} {
		img, err := png.Decode(bytes.NewReader(s.Bytes(i)))
		require.NoError(t, err, i.String())
		assert.Equal(t, image.Rect(0, 0, Size, Size), img.Bounds())
	}
	assert.NotEqual(t, s.Bytes(presenter.IconPresent), s.Bytes(presenter.IconAbsent))
}

func TestAbsentIconIsGray(t *testing.T) {
	s, err := Load("", FormatPNG)
	require.NoError(t, err)

	img := s.Image(presenter.IconAbsent)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("pixel (%d,%d) not gray: %v", x, y, c)
			}
		}
	}
}

func TestGrayscaleKeepsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 0x40})

	gray := Grayscale(src)
	assert.Equal(t, uint8(255), gray.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0x40), gray.NRGBAAt(1, 0).A)
	assert.Greater(t, gray.NRGBAAt(0, 0).R, gray.NRGBAAt(1, 0).R, "red is brighter than blue")
}

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 256, 128))
	dst := Scale(src, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), dst.Bounds())
}

func TestLoadFromFile(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	path := filepath.Join(t.TempDir(), "custom.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	s, err := Load(path, FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, Size, Size), s.Image(presenter.IconPresent).Bounds())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), FormatPNG)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err = Load(path, FormatPNG)
	assert.Error(t, err)
}

func TestEncodeICO(t *testing.T) {
	s, err := Load("", FormatICO)
	require.NoError(t, err)

	// ICONDIR header: reserved 0, type 1.
	data := s.Bytes(presenter.IconPresent)
	require.Greater(t, len(data), 6)
	assert.Equal(t, []byte{0, 0, 1, 0}, data[:4])
}
