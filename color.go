package jpgenc

import (
	"fmt"
	"math"
)

// ConvertColorSpace returns a new Image with the given target color space,
// leaving the receiver untouched. Converting to the image's current space
// is a no-op copy. Any other target space that is not one of the two known
// spaces fails with ErrInvalidColorSpace.
//
// The forward RGB -> YCbCr transform is the JFIF matrix:
//
//	Y  =  0.299 R + 0.587 G + 0.114 B - 128
//	Cb = -0.168736 R - 0.331264 G + 0.5 B
//	Cr =  0.5 R - 0.418688 G - 0.081312 B
//
// Y is shifted by -128 so DCT input is centered near zero; Cb/Cr are
// already zero-mean given the coefficients above. The inverse undoes this
// shift before applying the standard YCbCr -> RGB matrix.
func (img *Image) ConvertColorSpace(target ColorSpace) (*Image, error) {
	switch target {
	case ColorSpaceRGB, ColorSpaceYCbCr:
	default:
		return nil, fmt.Errorf("%w: unknown target space %v", ErrInvalidColorSpace, target)
	}

	out := &Image{
		Width:      img.Width,
		Height:     img.Height,
		SubWidth:   img.SubWidth,
		SubHeight:  img.SubHeight,
		ColorSpace: target,
		Chan1:      NewChannel[int32](img.Height, img.Width),
		Chan2:      NewChannel[int32](img.Height, img.Width),
		Chan3:      NewChannel[int32](img.Height, img.Width),
	}

	if target == img.ColorSpace {
		copy(out.Chan1.Data(), img.Chan1.Data())
		copy(out.Chan2.Data(), img.Chan2.Data())
		copy(out.Chan3.Data(), img.Chan3.Data())
		return out, nil
	}

	n := img.Width * img.Height
	s1, s2, s3 := img.Chan1.Data(), img.Chan2.Data(), img.Chan3.Data()
	d1, d2, d3 := out.Chan1.Data(), out.Chan2.Data(), out.Chan3.Data()

	switch {
	case img.ColorSpace == ColorSpaceRGB && target == ColorSpaceYCbCr:
		for i := 0; i < n; i++ {
			r, g, b := float64(s1[i]), float64(s2[i]), float64(s3[i])
			y := 0.299*r + 0.587*g + 0.114*b - 128
			cb := -0.168736*r - 0.331264*g + 0.5*b
			cr := 0.5*r - 0.418688*g - 0.081312*b
			d1[i] = round32(y)
			d2[i] = round32(cb)
			d3[i] = round32(cr)
		}
	case img.ColorSpace == ColorSpaceYCbCr && target == ColorSpaceRGB:
		for i := 0; i < n; i++ {
			y := float64(s1[i]) + 128
			cb, cr := float64(s2[i]), float64(s3[i])
			r := y + 1.402*cr
			g := y - 0.344136*cb - 0.714136*cr
			b := y + 1.772*cb
			d1[i] = clamp8(round32(r))
			d2[i] = clamp8(round32(g))
			d3[i] = clamp8(round32(b))
		}
	default:
		return nil, fmt.Errorf("%w: cannot convert %v to %v", ErrInvalidColorSpace, img.ColorSpace, target)
	}

	return out, nil
}

// levelShift returns a copy of ch with every sample shifted by -128, the
// same DC centering the Y channel of ConvertColorSpace applies, for use
// when a caller supplies an already-gray single-component source with no
// RGB channels to convert from.
func levelShift(ch *Channel[int32]) *Channel[int32] {
	out := NewChannel[int32](ch.Rows(), ch.Cols())
	src, dst := ch.Data(), out.Data()
	for i, v := range src {
		dst[i] = v - 128
	}
	return out
}

func round32(v float64) int32 {
	return int32(math.Round(v))
}

func clamp8(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
