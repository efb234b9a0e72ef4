package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/matjam/slidepager/internal/types"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrDecode = errors.New("image decode failed")

// Decoder turns encoded image bytes into canvas-sized RGBA buffers with
// straight alpha. With a zero Width or Height images keep their own size.
type Decoder struct {
	Width  int
	Height int
	Mode   types.ScalingMode
}

func NewDecoder(width, height int, mode types.ScalingMode) *Decoder {
	return &Decoder{Width: width, Height: height, Mode: mode}
}

func (d *Decoder) Decode(data []byte) (types.ImageBuffer, error) {
	if len(data) == 0 {
		return types.ImageBuffer{}, fmt.Errorf("%w: no image data", ErrDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return types.ImageBuffer{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return types.ImageBuffer{}, fmt.Errorf("%w: %s image is empty", ErrDecode, format)
	}

	var nrgba *image.NRGBA
	if d.Width > 0 && d.Height > 0 {
		nrgba = ScaleImage(img, d.Width, d.Height, d.Mode)
	} else {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return FromNRGBA(nrgba), nil
}

// FromNRGBA copies a straight-alpha image into a tightly packed buffer.
func FromNRGBA(img *image.NRGBA) types.ImageBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		src := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], img.Pix[src:src+w*4])
	}
	return types.ImageBuffer{Width: w, Height: h, Pix: pix}
}

// ScaleImage scales img onto a transparent targetW x targetH canvas.
func ScaleImage(img image.Image, targetW, targetH int, mode types.ScalingMode) *image.NRGBA {
	var dstRect image.Rectangle
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	switch mode {
	case types.ScalingModeStretch:
		dstRect = image.Rect(0, 0, targetW, targetH)
	case types.ScalingModeFitHorizontal:
		h := int(float64(srcH) * float64(targetW) / float64(srcW))
		y := (targetH - h) / 2
		dstRect = image.Rect(0, y, targetW, y+h)
	case types.ScalingModeFitVertical:
		w := int(float64(srcW) * float64(targetH) / float64(srcH))
		x := (targetW - w) / 2
		dstRect = image.Rect(x, 0, x+w, targetH)
	case types.ScalingModeCenter:
		fallthrough
	default:
		// keep original size, centered
		x := (targetW - srcW) / 2
		y := (targetH - srcH) / 2
		dstRect = image.Rect(x, y, x+srcW, y+srcH)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetW, targetH))
	if dstRect.Dx() == srcW && dstRect.Dy() == srcH {
		draw.Draw(dst, dstRect, img, img.Bounds().Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dstRect, img, img.Bounds(), draw.Src, nil)
	return dst
}
