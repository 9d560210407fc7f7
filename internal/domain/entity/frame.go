package entity

import "bytes"

// Channels количество каналов в кадре (синий, зелёный, красный)
const Channels = 3

// BGR цвет пикселя в порядке каналов кадра
type BGR struct {
	B, G, R uint8
}

// Frame декодированный скриншот: сетка Height×Width×3 в порядке BGR, построчно.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame создаёт чёрный кадр заданного размера
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*Channels),
	}
}

// Empty сообщает, что у кадра нет ни одного пикселя
func (f *Frame) Empty() bool {
	return f == nil || f.Width <= 0 || f.Height <= 0
}

// Valid проверяет, что размер буфера совпадает с Width×Height×3
func (f *Frame) Valid() bool {
	return f != nil && f.Width >= 0 && f.Height >= 0 && len(f.Pix) == f.Width*f.Height*Channels
}

// Clone возвращает независимую копию кадра
func (f *Frame) Clone() *Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// Equal сравнивает кадры по значению
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Width == other.Width && f.Height == other.Height && bytes.Equal(f.Pix, other.Pix)
}

// InBounds проверяет, что точка лежит внутри кадра
func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// At возвращает цвет пикселя; за пределами кадра нулевой цвет
func (f *Frame) At(x, y int) BGR {
	if !f.InBounds(x, y) {
		return BGR{}
	}
	i := f.offset(x, y)
	return BGR{B: f.Pix[i], G: f.Pix[i+1], R: f.Pix[i+2]}
}

// Set закрашивает пиксель; точки за пределами кадра молча отбрасываются
func (f *Frame) Set(x, y int, c BGR) {
	if !f.InBounds(x, y) {
		return
	}
	i := f.offset(x, y)
	f.Pix[i] = c.B
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.R
}

// Fill закрашивает весь кадр одним цветом
func (f *Frame) Fill(c BGR) {
	for i := 0; i+2 < len(f.Pix); i += Channels {
		f.Pix[i] = c.B
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.R
	}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * Channels
}
