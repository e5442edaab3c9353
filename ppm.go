package jpgenc

import (
	"bufio"
	"fmt"
	"io"
)

// LoadPPM reads a PPM (Portable PixMap) image, either the ASCII "P3" or
// binary "P6" variant, and returns it as an RGB Image ready for
// ConvertColorSpace. Comments starting with '#' run to end of line and are
// skipped anywhere whitespace is allowed, per the NetPBM format.
func LoadPPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	tok := &ppmTokenizer{r: br}

	magic, err := tok.token()
	if err != nil {
		return nil, fmt.Errorf("%w: reading PPM magic: %v", ErrInputError, err)
	}
	if magic != "P3" && magic != "P6" {
		return nil, fmt.Errorf("%w: unsupported PPM magic %q", ErrInputError, magic)
	}

	width, err := tok.intToken()
	if err != nil {
		return nil, fmt.Errorf("%w: reading width: %v", ErrInputError, err)
	}
	height, err := tok.intToken()
	if err != nil {
		return nil, fmt.Errorf("%w: reading height: %v", ErrInputError, err)
	}
	maxVal, err := tok.intToken()
	if err != nil {
		return nil, fmt.Errorf("%w: reading maxval: %v", ErrInputError, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInputError, width, height)
	}
	if maxVal <= 0 || maxVal >= 256 {
		return nil, fmt.Errorf("%w: unsupported maxval %d (only single-byte samples are supported)", ErrInputError, maxVal)
	}

	img := NewImage(width, height, ColorSpaceRGB)

	if magic == "P3" {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, err := tok.intToken()
				if err != nil {
					return nil, fmt.Errorf("%w: reading red sample: %v", ErrInputError, err)
				}
				g, err := tok.intToken()
				if err != nil {
					return nil, fmt.Errorf("%w: reading green sample: %v", ErrInputError, err)
				}
				b, err := tok.intToken()
				if err != nil {
					return nil, fmt.Errorf("%w: reading blue sample: %v", ErrInputError, err)
				}
				img.Chan1.Set(y, x, scaleSample(r, maxVal))
				img.Chan2.Set(y, x, scaleSample(g, maxVal))
				img.Chan3.Set(y, x, scaleSample(b, maxVal))
			}
		}
		return img, nil
	}

	// P6: exactly one whitespace byte separates the header from raw binary
	// samples, already consumed by intToken's trailing-whitespace skip.
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(tok.r, row); err != nil {
			return nil, fmt.Errorf("%w: reading raster data: %v", ErrInputError, err)
		}
		for x := 0; x < width; x++ {
			img.Chan1.Set(y, x, scaleSample(int(row[3*x]), maxVal))
			img.Chan2.Set(y, x, scaleSample(int(row[3*x+1]), maxVal))
			img.Chan3.Set(y, x, scaleSample(int(row[3*x+2]), maxVal))
		}
	}
	return img, nil
}

// scaleSample rescales a PPM sample (range [0, maxVal]) to the [0, 255]
// range the rest of the pipeline assumes.
func scaleSample(v, maxVal int) int32 {
	if maxVal == 255 {
		return int32(v)
	}
	return int32((v*255 + maxVal/2) / maxVal)
}

// ppmTokenizer reads whitespace-separated header tokens, skipping '#'
// comments, ahead of the point where the parser switches to fixed-width
// binary reads (P6 raster data) or further whitespace-delimited decimal
// samples (P3 raster data).
type ppmTokenizer struct {
	r *bufio.Reader
}

func (t *ppmTokenizer) token() (string, error) {
	var b []byte
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if len(b) > 0 {
				return string(b), nil
			}
			return "", err
		}
		if c == '#' {
			for {
				c, err := t.r.ReadByte()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		if isPPMSpace(c) {
			if len(b) > 0 {
				return string(b), nil
			}
			continue
		}
		b = append(b, c)
	}
}

func (t *ppmTokenizer) intToken() (int, error) {
	s, err := t.token()
	if err != nil {
		return 0, err
	}
	v := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a decimal integer: %q", s)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

func isPPMSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
