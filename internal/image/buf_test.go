package image

import (
	"errors"
	"testing"
)

func TestNewRGB(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 10, 20, nil},
		{"single pixel", 1, 1, nil},
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"negative", -1, 5, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewRGB(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewRGB(%d, %d) error = %v, want %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w, h := img.Bounds(); w != tt.width || h != tt.height {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}
			if got, want := len(img.Pix()), tt.width*tt.height*3; got != want {
				t.Errorf("len(Pix()) = %d, want %d", got, want)
			}
			if img.Stride() != tt.width*3 {
				t.Errorf("Stride() = %d, want %d", img.Stride(), tt.width*3)
			}
		})
	}
}

func TestNewRGB_TooLarge(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"over limit", MaxPixels/1024 + 1, 1024},
		{"overflowing product", 3037000500, 3037000500},
		{"wide strip", MaxPixels + 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRGB(tt.width, tt.height); !errors.Is(err, ErrTooLarge) {
				t.Errorf("NewRGB(%d, %d) error = %v, want ErrTooLarge", tt.width, tt.height, err)
			}
		})
	}

	if err := CheckDimensions(MaxPixels/1024, 1024); err != nil {
		t.Errorf("CheckDimensions(at limit) = %v, want nil", err)
	}
}

func TestRGB_SetAt(t *testing.T) {
	img, _ := NewRGB(4, 3)

	img.SetRGB(2, 1, 10, 20, 30)
	if r, g, b := img.At(2, 1); r != 10 || g != 20 || b != 30 {
		t.Errorf("At(2, 1) = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}
	if got := img.Pix()[(1*4+2)*3]; got != 10 {
		t.Errorf("Pix() red at (2, 1) = %d, want 10", got)
	}
	if img.RowBytes(3) != nil {
		t.Error("RowBytes(3) should be nil for 3-row image")
	}
}

func TestRGB_Fill(t *testing.T) {
	img, _ := NewRGB(7, 5)
	img.Fill(1, 2, 3)

	for y := range 5 {
		for x := range 7 {
			if r, g, b := img.At(x, y); r != 1 || g != 2 || b != 3 {
				t.Fatalf("At(%d, %d) = (%d, %d, %d), want (1, 2, 3)", x, y, r, g, b)
			}
		}
	}
}

func TestRGB_Brightness(t *testing.T) {
	img, _ := NewRGB(1, 1)

	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{200, 200, 201, 200},
		{200, 201, 201, 200},
		{255, 255, 92, 200},
		{255, 255, 94, 201},
	}
	for _, tt := range tests {
		img.SetRGB(0, 0, tt.r, tt.g, tt.b)
		if got := img.Brightness(0, 0); got != tt.want {
			t.Errorf("Brightness(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
