package vision

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// MaxPixels предел площади скриншота, больше не декодируем
const MaxPixels = 18_000_000

// headerSize размеры изображения из заголовка, без декодирования пикселей
func headerSize(imageData []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// checkDimensions отсекает кадры больше MaxPixels
func checkDimensions(width, height int) error {
	if width > 0 && height > 0 && width > MaxPixels/height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDecode, width, height, MaxPixels)
	}
	return nil
}
