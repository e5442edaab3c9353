package jpgenc

import (
	"bytes"
	"fmt"
	"io"
)

// Options are the encoding parameters accepted by Encode.
type Options struct {
	// Quality is the JPEG quality factor, 1-100 inclusive (higher is
	// better). Zero selects DefaultQuality; other values outside the range
	// are clamped.
	Quality int
	// SubsamplingMode selects the chroma subsampling scheme; ignored for
	// grayscale input. The zero value, Sub444, encodes at full chroma
	// resolution.
	SubsamplingMode SubsamplingMode
	// DCTKind selects which forward DCT implementation computes
	// coefficients; all three are numerically equivalent to within
	// floating-point rounding.
	DCTKind DCTKind
	// Workers bounds how many goroutines TileDCT may use per channel. A
	// value <= 1 runs the DCT on the calling goroutine.
	Workers int
}

// DefaultQuality matches the common libjpeg default.
const DefaultQuality = 75

func (o Options) normalized() Options {
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	return o
}

// Encode renders img as a baseline sequential JFIF byte stream and returns
// it in full; no partial output is ever produced; either the whole
// stream is built and returned, or an error is returned and the byte
// slice is nil.
func Encode(img *Image, opts Options) ([]byte, error) {
	o := opts.normalized()
	if img.ColorSpace != ColorSpaceRGB {
		return nil, fmt.Errorf("%w: Encode requires an RGB source image", ErrInvalidColorSpace)
	}

	gray := img.Grayscale()
	var ycc *Image
	if gray {
		ycc = &Image{
			Width: img.Width, Height: img.Height,
			SubWidth: img.Width, SubHeight: img.Height,
			ColorSpace: ColorSpaceYCbCr,
			Chan1:      levelShift(img.Chan1),
		}
	} else {
		var err error
		ycc, err = img.ConvertColorSpace(ColorSpaceYCbCr)
		if err != nil {
			return nil, err
		}
	}
	ycc.Pad()

	hSamp, vSamp := 1, 1
	if !gray {
		if err := ycc.Subsample(o.SubsamplingMode); err != nil {
			return nil, err
		}
		p, err := paramsForMode(o.SubsamplingMode)
		if err != nil {
			return nil, err
		}
		hSamp, vSamp = p.hDiv, p.vDiv
	}

	lumTable := ScaleQuantTable(DefaultLuminanceTable, o.Quality)
	chromTable := ScaleQuantTable(DefaultChrominanceTable, o.Quality)

	mcusWide := ycc.Chan1.Cols() / (8 * hSamp)
	mcusHigh := ycc.Chan1.Rows() / (8 * vSamp)

	yCoef := QuantizeChannel(TileDCT(ycc.Chan1, o.DCTKind, o.Workers), &lumTable)
	yOrder := mcuBlockOrder(hSamp, vSamp, mcusWide, mcusHigh)
	yCoef = DCPredictOrder(yCoef, yOrder)

	components := []componentPlan{{
		id: componentIDY, hSamp: byte(hSamp), vSamp: byte(vSamp),
		quantIndex: 0, coeffs: yCoef,
	}}

	if !gray {
		cbCoef := QuantizeChannel(TileDCT(ycc.Chan2, o.DCTKind, o.Workers), &chromTable)
		crCoef := QuantizeChannel(TileDCT(ycc.Chan3, o.DCTKind, o.Workers), &chromTable)
		chromaOrder := mcuBlockOrder(1, 1, mcusWide, mcusHigh)
		cbCoef = DCPredictOrder(cbCoef, chromaOrder)
		crCoef = DCPredictOrder(crCoef, chromaOrder)
		components = append(components,
			componentPlan{id: componentIDCb, hSamp: 1, vSamp: 1, quantIndex: 1, coeffs: cbCoef},
			componentPlan{id: componentIDCr, hSamp: 1, vSamp: 1, quantIndex: 1, coeffs: crCoef},
		)
	}

	dcFreq := make([]FrequencyTable, len(quantClassesFor(gray)))
	acFreq := make([]FrequencyTable, len(quantClassesFor(gray)))
	for i := range dcFreq {
		dcFreq[i] = FrequencyTable{}
		acFreq[i] = FrequencyTable{}
	}
	for _, c := range components {
		class := 0
		if c.quantIndex == 1 {
			class = 1
		}
		tallyComponent(c, dcFreq[class], acFreq[class])
	}

	dcTables := make([]SymbolCodeMap, len(dcFreq))
	acTables := make([]SymbolCodeMap, len(acFreq))
	for i := range dcFreq {
		t, err := BuildHuffmanTable(dcFreq[i])
		if err != nil {
			return nil, err
		}
		dcTables[i] = t
		t, err = BuildHuffmanTable(acFreq[i])
		if err != nil {
			return nil, err
		}
		acTables[i] = t
	}
	for i := range components {
		class := 0
		if components[i].quantIndex == 1 {
			class = 1
		}
		components[i].dcTable = dcTables[class]
		components[i].acTable = acTables[class]
	}

	var buf []byte
	buf = writeSOI(buf)
	buf = writeAPP0(buf)
	if gray {
		buf = writeDQT(buf, []QuantTable{lumTable})
	} else {
		buf = writeDQT(buf, []QuantTable{lumTable, chromTable})
	}
	buf = writeSOF0(buf, img.Width, img.Height, components)

	dht := []dhtEntry{{huffClassDC, 0, dcTables[0]}, {huffClassAC, 0, acTables[0]}}
	if !gray {
		dht = append(dht, dhtEntry{huffClassDC, 1, dcTables[1]}, dhtEntry{huffClassAC, 1, acTables[1]})
	}
	buf = writeDHT(buf, dht)

	dcIdx := map[byte]byte{componentIDY: 0}
	acIdx := map[byte]byte{componentIDY: 0}
	if !gray {
		dcIdx[componentIDCb], dcIdx[componentIDCr] = 1, 1
		acIdx[componentIDCb], acIdx[componentIDCr] = 1, 1
	}
	buf = writeSOS(buf, components, dcIdx, acIdx)
	buf = writeEntropyCodedScan(buf, components, mcusWide, mcusHigh)
	buf = writeEOI(buf)

	return buf, nil
}

// EncodeTo writes the encoded stream to w only after the whole image has
// been successfully encoded in memory, so a write failure partway through
// w never leaves a truncated-but-plausible JPEG behind.
func EncodeTo(w io.Writer, img *Image, opts Options) error {
	buf, err := Encode(img, opts)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	return nil
}

func quantClassesFor(gray bool) []int {
	if gray {
		return []int{0}
	}
	return []int{0, 1}
}

// tallyComponent walks a component's already DC-differenced coefficient
// blocks in storage order (order does not matter for frequency counting)
// and tallies the DC/AC Huffman symbols it will use.
func tallyComponent(c componentPlan, dc, ac FrequencyTable) {
	rows, cols := c.coeffs.Rows(), c.coeffs.Cols()
	for r0 := 0; r0 < rows; r0 += 8 {
		for c0 := 0; c0 < cols; c0 += 8 {
			var natural [8][8]int32
			for r := 0; r < 8; r++ {
				for col := 0; col < 8; col++ {
					natural[r][col] = c.coeffs.Get(r0+r, c0+col)
				}
			}
			zz := ZigZag(natural)
			pairs := RLEEncode(zz)
			codes := EncodeCategory(pairs)
			dc.Count(codes[0].Symbol)
			for _, cc := range codes[1:] {
				ac.Count(cc.Symbol)
			}
		}
	}
}
