package image

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecode_PPMBinary(t *testing.T) {
	data := []byte("P6\n# a comment\n2 1\n255\n")
	data = append(data, 1, 2, 3, 250, 251, 252)

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w, h := img.Bounds(); w != 2 || h != 1 {
		t.Fatalf("Bounds() = (%d, %d), want (2, 1)", w, h)
	}
	if !bytes.Equal(img.Pix(), []byte{1, 2, 3, 250, 251, 252}) {
		t.Errorf("Pix() = %v, want [1 2 3 250 251 252]", img.Pix())
	}
}

func TestDecode_PPMPlain(t *testing.T) {
	src := "P3 2 2 15\n 0 0 0   15 15 15\n# row two\n15 0 0 0 0 15\n"

	img, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []byte{0, 0, 0, 255, 255, 255, 255, 0, 0, 0, 0, 255}
	if !bytes.Equal(img.Pix(), want) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), want)
	}
}

func TestDecode_PPMHugeHeader(t *testing.T) {
	// width*height*3 overflows int; the header must be rejected, not allocated.
	_, err := Decode(strings.NewReader("P6\n3037000500 3037000500\n255\n"))
	if err == nil {
		t.Fatal("Decode(huge header) should fail")
	}
}

func TestDecode_PPMSampleAboveMaxval(t *testing.T) {
	data := append([]byte("P6\n1 1\n100\n"), 200, 50, 100)

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return // rejecting the sample is fine too
	}
	r, g, b := img.At(0, 0)
	if r != 255 || b != 255 {
		t.Errorf("At(0, 0) = (%d,%d,%d), want red clamped to 255 and blue 255", r, g, b)
	}
	if g < 127 || g > 128 {
		t.Errorf("green = %d, want half scale", g)
	}
}

func TestDecode_PPMTruncated(t *testing.T) {
	data := "P6\n2 2\n255\n\x01\x02\x03"
	if _, err := Decode(strings.NewReader(data)); err == nil {
		t.Error("Decode should fail on truncated pixel data")
	}
}

func TestEncodePPM_RoundTrip(t *testing.T) {
	img, _ := NewRGB(3, 2)
	img.Fill(7, 8, 9)

	var buf bytes.Buffer
	if err := img.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P6") {
		t.Fatalf("EncodePPM output starts with %q, want binary P6", buf.String()[:2])
	}
	if !bytes.HasSuffix(buf.Bytes(), img.Pix()) {
		t.Error("EncodePPM payload should be the raw pixel bytes")
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(EncodePPM output) failed: %v", err)
	}
	if !bytes.Equal(got.Pix(), img.Pix()) {
		t.Errorf("round trip Pix() = %v, want %v", got.Pix(), img.Pix())
	}
}
