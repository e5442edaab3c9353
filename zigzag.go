package jpgenc

// zigzagOrder[r][c] gives the position within a length-64 vector that the
// natural-order sample at (r, c) maps to under the standard JPEG zig-zag
// scan (low frequencies first). Index 0 is the DC coefficient.
var zigzagOrder = [8][8]int{
	{0, 1, 5, 6, 14, 15, 27, 28},
	{2, 4, 7, 13, 16, 26, 29, 42},
	{3, 8, 12, 17, 25, 30, 41, 43},
	{9, 11, 18, 24, 31, 40, 44, 53},
	{10, 19, 23, 32, 39, 45, 52, 54},
	{20, 22, 33, 38, 46, 51, 55, 60},
	{21, 34, 37, 47, 50, 56, 59, 61},
	{35, 36, 48, 49, 57, 58, 62, 63},
}

// naturalIndexAt maps a zig-zag position back to its (row, col) in the
// natural 8x8 layout; the inverse of zigzagOrder.
var naturalIndexAt = computeInverseZigzag()

func computeInverseZigzag() [64][2]int {
	var inv [64][2]int
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			inv[zigzagOrder[r][c]] = [2]int{r, c}
		}
	}
	return inv
}

// ZigZag reorders an 8x8 integer block into its length-64 zig-zag vector.
func ZigZag(block [8][8]int32) [64]int32 {
	var out [64]int32
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			out[zigzagOrder[r][c]] = block[r][c]
		}
	}
	return out
}

// InverseZigZag reorders a length-64 zig-zag vector back into an 8x8
// natural-order block. InverseZigZag(ZigZag(M)) == M for all M.
func InverseZigZag(vec [64]int32) [8][8]int32 {
	var out [8][8]int32
	for pos, v := range vec {
		rc := naturalIndexAt[pos]
		out[rc[0]][rc[1]] = v
	}
	return out
}

// zigzagTableBytes serializes a quantization table (natural order) into the
// 64-byte zig-zag sequence the DQT marker requires.
func zigzagTableBytes(t QuantTable) [64]byte {
	var out [64]byte
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			out[zigzagOrder[r][c]] = byte(t[r][c])
		}
	}
	return out
}
