package jpgenc

// ColorSpace identifies how an Image's three channels should be
// interpreted.
type ColorSpace int

const (
	// ColorSpaceRGB means channel slot 1/2/3 hold Red/Green/Blue.
	ColorSpaceRGB ColorSpace = iota
	// ColorSpaceYCbCr means channel slot 1/2/3 hold Luma/Chroma-blue/Chroma-red.
	ColorSpaceYCbCr
)

func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceRGB:
		return "RGB"
	case ColorSpaceYCbCr:
		return "YCbCr"
	default:
		return "unknown"
	}
}

// Image holds a raster as three planar channels plus framing metadata.
// Channel slot 1 is always Y/R, slot 2 is always Cb/G, slot 3 is always
// Cr/B; converting color space never reorders slots.
//
// SubWidth/SubHeight record the chroma channels' dimensions after
// subsampling. In 4:4:4 mode (the default, before Subsample is called) they
// equal Width/Height.
type Image struct {
	Width, Height          int
	SubWidth, SubHeight    int
	ColorSpace             ColorSpace
	Chan1, Chan2, Chan3    *Channel[int32]
}

// NewImage allocates an Image with the given dimensions and color space.
// The chroma channels start at full (4:4:4) resolution.
func NewImage(width, height int, cs ColorSpace) *Image {
	return &Image{
		Width:      width,
		Height:     height,
		SubWidth:   width,
		SubHeight:  height,
		ColorSpace: cs,
		Chan1:      NewChannel[int32](height, width),
		Chan2:      NewChannel[int32](height, width),
		Chan3:      NewChannel[int32](height, width),
	}
}

// NumComponents returns how many of the image's channels carry distinct
// data for encoding purposes. jpgenc only builds 3-component (color) and
// leaves 1-component (grayscale) support to callers that set Chan2/Chan3
// to nil explicitly; see Image.Grayscale.
func (img *Image) NumComponents() int {
	if img.Chan2 == nil && img.Chan3 == nil {
		return 1
	}
	return 3
}

// Grayscale reports whether the image carries a single luma channel only.
func (img *Image) Grayscale() bool { return img.NumComponents() == 1 }
