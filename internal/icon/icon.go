// Package icon provides the two tray icons: the colored "running" image and
// a grayscale copy derived from it.
package icon

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"runtime"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"github.com/jabbalaci/procwatch/internal/presenter"
)

// Size is the edge length tray images are scaled to.
const Size = 64

//go:embed assets/running.png
var runningPNG []byte

// Format is an encoded image format accepted by the tray.
type Format int

const (
	FormatPNG Format = iota
	FormatICO
)

// PlatformFormat returns the format the system tray expects on this OS.
// Windows needs ICO; the other platforms take PNG.
func PlatformFormat() Format {
	if runtime.GOOS == "windows" {
		return FormatICO
	}
	return FormatPNG
}

// Set holds both icons, pre-encoded for the tray.
type Set struct {
	images  [2]image.Image
	encoded [2][]byte
}

// Load builds the icon set from the image at path, or from the embedded
// icon when path is empty.
func Load(path string, format Format) (*Set, error) {
	data := runningPNG
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read icon %s: %w", path, err)
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}
	return FromImage(img, format)
}

// FromImage builds the icon set from a colored image.
func FromImage(img image.Image, format Format) (*Set, error) {
	colored := Scale(img, Size)
	gray := Grayscale(colored)

	s := &Set{}
	s.images[presenter.IconPresent] = colored
	s.images[presenter.IconAbsent] = gray

	for i, m := range s.images {
		data, err := Encode(m, format)
		if err != nil {
			return nil, err
		}
		s.encoded[i] = data
	}
	return s, nil
}

// Bytes returns the encoded image for icon.
func (s *Set) Bytes(icon presenter.Icon) []byte {
	return s.encoded[icon]
}

// Image returns the decoded image for icon.
func (s *Set) Image(icon presenter.Icon) image.Image {
	return s.images[icon]
}

// Scale resizes img to a size x size square. Images already that size are
// copied unchanged.
func Scale(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Grayscale returns a luma copy of img with the alpha channel preserved.
func Grayscale(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			g := color.GrayModel.Convert(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}).(color.Gray)
			dst.SetNRGBA(x, y, color.NRGBA{R: g.Y, G: g.Y, B: g.Y, A: c.A})
		}
	}
	return dst
}

// Encode serializes img in the given format.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatICO:
		if err := ico.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode ICO: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	}
	return buf.Bytes(), nil
}
