//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"ui-locator/internal/domain/entity"
)

// Decode декодирует PNG, JPEG или GIF в BGR-кадр. Альфа-канал отбрасывается.
// Размеры проверяются по заголовку до декодирования пикселей.
func Decode(imageData []byte) (*entity.Frame, error) {
	width, height, err := headerSize(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	frame := entity.NewFrame(bounds.Dx(), bounds.Dy())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			frame.Set(x, y, entity.BGR{B: c.B, G: c.G, R: c.R})
		}
	}
	return frame, nil
}

// EncodePNG кодирует кадр в PNG
func EncodePNG(frame *entity.Frame) ([]byte, error) {
	if frame.Empty() {
		return nil, errors.New("empty image")
	}

	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
