package jpgenc

import "fmt"

// SubsamplingMode selects how the chroma channels are downsampled relative
// to luma.
type SubsamplingMode int

const (
	Sub444   SubsamplingMode = iota // full sampling, no-op
	Sub422                         // halve horizontally
	Sub411                         // quarter horizontally
	Sub420                         // halve both, replicate (no averaging)
	Sub420M                        // halve both, 2x2 box average
	Sub420LM                       // halve both, vertical-pair average only
)

func (m SubsamplingMode) String() string {
	switch m {
	case Sub444:
		return "4:4:4"
	case Sub422:
		return "4:2:2"
	case Sub411:
		return "4:1:1"
	case Sub420:
		return "4:2:0"
	case Sub420M:
		return "4:2:0m"
	case Sub420LM:
		return "4:2:0lm"
	default:
		return "unknown"
	}
}

type subsampleParams struct {
	hDiv, vDiv int
	mask       []int32
	averaged   bool
	divisor    int32
}

func paramsForMode(mode SubsamplingMode) (subsampleParams, error) {
	switch mode {
	case Sub444:
		return subsampleParams{hDiv: 1, vDiv: 1, mask: []int32{1}}, nil
	case Sub422:
		return subsampleParams{hDiv: 2, vDiv: 1, mask: []int32{1, 0}}, nil
	case Sub411:
		return subsampleParams{hDiv: 4, vDiv: 1, mask: []int32{1, 0, 0, 0}}, nil
	case Sub420:
		return subsampleParams{hDiv: 2, vDiv: 2, mask: []int32{1, 0}}, nil
	case Sub420M:
		return subsampleParams{hDiv: 2, vDiv: 2, mask: []int32{1, 1}, averaged: true, divisor: 4}, nil
	case Sub420LM:
		return subsampleParams{hDiv: 2, vDiv: 2, mask: []int32{1, 0}, averaged: true, divisor: 2}, nil
	default:
		return subsampleParams{}, fmt.Errorf("%w: unknown mode %v", ErrInvalidSubsamplingMode, mode)
	}
}

// Subsample downsamples the image's Cb and Cr channels per mode, leaving
// luma untouched. It updates SubWidth/SubHeight to the resulting chroma
// dimensions, which downstream stages use for all chroma iteration.
//
// The mode is rejected (ErrInvalidSubsamplingMode) if it does not evenly
// divide the image dimensions, or if the resulting chroma dimensions are
// not themselves multiples of 8.
func (img *Image) Subsample(mode SubsamplingMode) error {
	p, err := paramsForMode(mode)
	if err != nil {
		return err
	}

	if img.Width%p.hDiv != 0 || img.Height%p.vDiv != 0 {
		return fmt.Errorf("%w: %v does not evenly divide %dx%d", ErrInvalidSubsamplingMode, mode, img.Width, img.Height)
	}
	outW, outH := img.Width/p.hDiv, img.Height/p.vDiv
	if outW%8 != 0 || outH%8 != 0 {
		return fmt.Errorf("%w: %v yields non-block-aligned chroma %dx%d", ErrInvalidSubsamplingMode, mode, outW, outH)
	}

	if img.Chan2 != nil {
		img.Chan2 = subsampleChannel(img.Chan2, p, outW, outH)
	}
	if img.Chan3 != nil {
		img.Chan3 = subsampleChannel(img.Chan3, p, outW, outH)
	}
	img.SubWidth, img.SubHeight = outW, outH
	return nil
}

func subsampleChannel(src *Channel[int32], p subsampleParams, outW, outH int) *Channel[int32] {
	dst := NewChannel[int32](outH, outW)
	maskLen := len(p.mask)
	for outR := 0; outR < outH; outR++ {
		y := outR * p.vDiv
		for outC := 0; outC < outW; outC++ {
			x := outC * p.hDiv
			var sum int32
			for m := 0; m < maskLen; m++ {
				sum += p.mask[m] * src.Get(y, x+m)
			}
			if p.averaged {
				var sum2 int32
				for m := 0; m < maskLen; m++ {
					sum2 += p.mask[m] * src.Get(y+1, x+m)
				}
				sum = (sum + sum2) / p.divisor
			}
			dst.Set(outR, outC, sum)
		}
	}
	return dst
}
