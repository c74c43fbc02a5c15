package sliceio

import (
	"bytes"
	"testing"

	"github.com/igsio/volrecon/voxel"
)

func TestEncodeDecodeBMPGrayRoundTrip(t *testing.T) {
	data := make([]byte, 4*4)
	for i := range data {
		data[i] = byte(i * 10)
	}
	s, err := voxel.NewSlice(4, 4, 0, 0, 0, 1, 1, 1, 1, voxel.KindUint8, data)
	if err != nil {
		t.Fatalf("NewSlice() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, s); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}

	decoded, err := DecodeBMP(&buf, 0, 0, 0, 1, 1, 1)
	if err != nil {
		t.Fatalf("DecodeBMP() error = %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := decoded.At(x, y, 0), s.At(x, y, 0); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodeDecodeBMPRGBRoundTrip(t *testing.T) {
	data := make([]byte, 2*2*3)
	for i := range data {
		data[i] = byte(i * 20)
	}
	s, err := voxel.NewSlice(2, 2, 0, 0, 0, 1, 1, 1, 3, voxel.KindUint8, data)
	if err != nil {
		t.Fatalf("NewSlice() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, s); err != nil {
		t.Fatalf("EncodeBMP() error = %v", err)
	}

	decoded, err := DecodeBMP(&buf, 0, 0, 0, 1, 1, 1)
	if err != nil {
		t.Fatalf("DecodeBMP() error = %v", err)
	}
	if decoded.Components() != 3 {
		t.Fatalf("decoded.Components() = %d, want 3", decoded.Components())
	}
	for c := 0; c < 3; c++ {
		if got, want := decoded.At(0, 0, c), s.At(0, 0, c); got != want {
			t.Errorf("At(0,0,%d) = %v, want %v", c, got, want)
		}
	}
}
