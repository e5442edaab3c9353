package jpgenc

import "math"

// QuantTable is an 8x8 quantization table in natural (row, col) order,
// matching the layout of a DCT coefficient block before zig-zag reordering.
type QuantTable [8][8]int32

// DefaultLuminanceTable and DefaultChrominanceTable are the baseline
// quantization tables from Annex K of the JPEG standard, in natural order.
// Cb and Cr share the chrominance table.
var (
	DefaultLuminanceTable = QuantTable{
		{16, 11, 10, 16, 24, 40, 51, 61},
		{12, 12, 14, 19, 26, 58, 60, 55},
		{14, 13, 16, 24, 40, 57, 69, 56},
		{14, 17, 22, 29, 51, 87, 80, 62},
		{18, 22, 37, 56, 68, 109, 103, 77},
		{24, 35, 55, 64, 81, 104, 113, 92},
		{49, 64, 78, 87, 103, 121, 120, 101},
		{72, 92, 95, 98, 112, 100, 103, 99},
	}
	DefaultChrominanceTable = QuantTable{
		{17, 18, 24, 47, 99, 99, 99, 99},
		{18, 21, 26, 66, 99, 99, 99, 99},
		{24, 26, 56, 99, 99, 99, 99, 99},
		{47, 66, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
		{99, 99, 99, 99, 99, 99, 99, 99},
	}
)

// ScaleQuantTable scales table by a JPEG-quality-derived factor (1-100,
// higher is better), following the same nonlinear mapping libjpeg-family
// encoders use: quality < 50 scales up (more compression), quality >= 50
// scales down (less compression), with results clamped to [1, 255].
func ScaleQuantTable(table QuantTable, quality int) QuantTable {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - quality*2
	}
	var out QuantTable
	for r := range table {
		for c := range table[r] {
			v := (int(table[r][c])*scale + 50) / 100
			if v < 1 {
				v = 1
			} else if v > 255 {
				v = 255
			}
			out[r][c] = int32(v)
		}
	}
	return out
}

// Quantize divides each coefficient by the corresponding table entry and
// rounds to the nearest integer (round-half-away-from-zero).
func Quantize(coef *block8, table *QuantTable) [8][8]int32 {
	var out [8][8]int32
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			out[r][c] = int32(math.Round(coef[r][c] / float64(table[r][c])))
		}
	}
	return out
}

// QuantizeChannel quantizes every 8x8 block of a full DCT-coefficient
// channel, returning a new integer channel of the same shape; coef is not
// modified.
func QuantizeChannel(coef *Channel[float64], table *QuantTable) *Channel[int32] {
	rows, cols := coef.Rows(), coef.Cols()
	out := NewChannel[int32](rows, cols)
	for r0 := 0; r0 < rows; r0 += 8 {
		for c0 := 0; c0 < cols; c0 += 8 {
			var in block8
			for r := 0; r < 8; r++ {
				for c := 0; c < 8; c++ {
					in[r][c] = coef.Get(r0+r, c0+c)
				}
			}
			q := Quantize(&in, table)
			for r := 0; r < 8; r++ {
				for c := 0; c < 8; c++ {
					out.Set(r0+r, c0+c, q[r][c])
				}
			}
		}
	}
	return out
}
