//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"ui-locator/internal/domain/entity"
)

// Decode декодирует изображение через OpenCV в BGR-кадр.
// Форматы, которых нет в image (BMP, WebP), проверяются уже после декодирования.
func Decode(imageData []byte) (*entity.Frame, error) {
	if width, height, err := headerSize(imageData); err == nil {
		if err := checkDimensions(width, height); err != nil {
			return nil, err
		}
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if err := checkDimensions(mat.Cols(), mat.Rows()); err != nil {
		return nil, err
	}

	return &entity.Frame{
		Width:  mat.Cols(),
		Height: mat.Rows(),
		Pix:    mat.ToBytes(),
	}, nil
}

// EncodePNG кодирует кадр в PNG
func EncodePNG(frame *entity.Frame) ([]byte, error) {
	if frame.Empty() {
		return nil, errors.New("empty image")
	}

	mat, err := gocv.NewMatFromBytes(frame.Height, frame.Width, gocv.MatTypeCV8UC3, frame.Pix)
	if err != nil {
		return nil, fmt.Errorf("wrap frame into mat: %w", err)
	}
	defer mat.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), ErrDecode
}
