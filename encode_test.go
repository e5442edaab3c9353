package jpgenc

import (
	"bytes"
	"errors"
	"testing"
)

func checkerboardImage(w, h int) *Image {
	img := NewImage(w, h, ColorSpaceRGB)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int32(40)
			if (x/4+y/4)%2 == 0 {
				v = 200
			}
			img.Chan1.Set(y, x, v)
			img.Chan2.Set(y, x, 255-v)
			img.Chan3.Set(y, x, v/2)
		}
	}
	return img
}

func TestEncodeProducesValidMarkerFraming(t *testing.T) {
	img := checkerboardImage(32, 16)
	buf, err := Encode(img, Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(buf) < 4 {
		t.Fatalf("output too short: %d bytes", len(buf))
	}
	if buf[0] != 0xff || buf[1] != markerSOI {
		t.Fatalf("stream does not start with SOI: %x", buf[:2])
	}
	if buf[len(buf)-2] != 0xff || buf[len(buf)-1] != markerEOI {
		t.Fatalf("stream does not end with EOI: %x", buf[len(buf)-2:])
	}
}

func TestEncodeContainsExpectedMarkerSegments(t *testing.T) {
	img := checkerboardImage(16, 16)
	buf, err := Encode(img, Options{SubsamplingMode: Sub420})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, m := range []byte{markerAPP0, markerDQT, markerSOF0, markerDHT, markerSOS} {
		if !containsMarker(buf, m) {
			t.Errorf("output missing marker %#x", m)
		}
	}
}

func containsMarker(buf []byte, marker byte) bool {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == 0xff && buf[i+1] == marker {
			return true
		}
	}
	return false
}

func TestEncodeGrayscalePathOmitsChromaTables(t *testing.T) {
	img := &Image{
		Width: 16, Height: 16,
		SubWidth: 16, SubHeight: 16,
		ColorSpace: ColorSpaceRGB,
		Chan1:      NewChannel[int32](16, 16),
	}
	for i := range img.Chan1.Data() {
		img.Chan1.Data()[i] = 100
	}
	buf, err := Encode(img, Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !containsMarker(buf, markerSOF0) {
		t.Fatalf("output missing SOF0")
	}
	// A color image emits two DQT table entries, grayscale emits one.
	dqtAt := indexOfMarker(buf, markerDQT)
	if dqtAt < 0 {
		t.Fatalf("missing DQT")
	}
	length := int(buf[dqtAt+2])<<8 | int(buf[dqtAt+3])
	if length != 2+65 { // 2 length bytes + one (1 index byte + 64 table) entry
		t.Fatalf("DQT length = %d, want %d (a single table for grayscale)", length, 2+65)
	}
}

func indexOfMarker(buf []byte, marker byte) int {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == 0xff && buf[i+1] == marker {
			return i
		}
	}
	return -1
}

func TestEncodeRejectsNonRGBInput(t *testing.T) {
	img := NewImage(8, 8, ColorSpaceYCbCr)
	_, err := Encode(img, Options{})
	if !errors.Is(err, ErrInvalidColorSpace) {
		t.Fatalf("err = %v, want ErrInvalidColorSpace", err)
	}
}

func TestEncodePadsNonMultipleOf8Dimensions(t *testing.T) {
	img := checkerboardImage(10, 6)
	buf, err := Encode(img, Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sofAt := indexOfMarker(buf, markerSOF0)
	if sofAt < 0 {
		t.Fatalf("missing SOF0")
	}
	height := int(buf[sofAt+5])<<8 | int(buf[sofAt+6])
	width := int(buf[sofAt+7])<<8 | int(buf[sofAt+8])
	if width != 10 || height != 6 {
		t.Fatalf("SOF0 dims = %dx%d, want the original 10x6 (not the padded size)", width, height)
	}
}

func TestEncodeToWritesOnlyOnSuccess(t *testing.T) {
	img := checkerboardImage(16, 16)
	var out bytes.Buffer
	if err := EncodeTo(&out, img, Options{}); err != nil {
		t.Fatalf("EncodeTo: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("expected bytes written to the sink")
	}
}

func TestEncodeToPropagatesEncodeErrorsWithoutWriting(t *testing.T) {
	img := NewImage(8, 8, ColorSpaceYCbCr)
	var out bytes.Buffer
	err := EncodeTo(&out, img, Options{})
	if !errors.Is(err, ErrInvalidColorSpace) {
		t.Fatalf("err = %v, want ErrInvalidColorSpace", err)
	}
	if out.Len() != 0 {
		t.Fatalf("sink should remain untouched on error, got %d bytes", out.Len())
	}
}

func TestEncodeAllDCTKindsProduceValidOutput(t *testing.T) {
	img := checkerboardImage(16, 16)
	for _, kind := range []DCTKind{DCTDirect, DCTMatrix, DCTArai} {
		buf, err := Encode(img, Options{DCTKind: kind})
		if err != nil {
			t.Fatalf("Encode(%v): %v", kind, err)
		}
		if buf[0] != 0xff || buf[1] != markerSOI {
			t.Errorf("Encode(%v) output missing SOI", kind)
		}
	}
}

func TestEncodeAllSubsamplingModesProduceValidOutput(t *testing.T) {
	img := checkerboardImage(32, 32)
	modes := []SubsamplingMode{Sub444, Sub422, Sub411, Sub420, Sub420M, Sub420LM}
	for _, m := range modes {
		buf, err := Encode(img, Options{SubsamplingMode: m})
		if err != nil {
			t.Fatalf("Encode(mode=%v): %v", m, err)
		}
		if !containsMarker(buf, markerEOI) {
			t.Errorf("Encode(mode=%v) missing EOI", m)
		}
	}
}
