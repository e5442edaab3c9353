package jpgenc

import "testing"

func TestZigZagDCFirst(t *testing.T) {
	var block [8][8]int32
	block[0][0] = 99
	zz := ZigZag(block)
	if zz[0] != 99 {
		t.Fatalf("zz[0] = %d, want 99 (DC coefficient)", zz[0])
	}
}

func TestZigZagOrderMatchesClassicScan(t *testing.T) {
	var block [8][8]int32
	block[0][1] = 1 // second position in zig-zag order
	block[1][0] = 2 // third position
	zz := ZigZag(block)
	if zz[1] != 1 {
		t.Errorf("zz[1] = %d, want 1", zz[1])
	}
	if zz[2] != 2 {
		t.Errorf("zz[2] = %d, want 2", zz[2])
	}
}

func TestZigZagInverseRoundTrip(t *testing.T) {
	var block [8][8]int32
	n := int32(1)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			block[r][c] = n
			n++
		}
	}
	zz := ZigZag(block)
	back := InverseZigZag(zz)
	if back != block {
		t.Fatalf("InverseZigZag(ZigZag(block)) != block\ngot  %v\nwant %v", back, block)
	}
}

func TestZigZagTableBytesIsPermutationOfTable(t *testing.T) {
	got := zigzagTableBytes(DefaultLuminanceTable)
	counts := make(map[byte]int)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			counts[byte(DefaultLuminanceTable[r][c])]++
		}
	}
	for _, b := range got {
		counts[b]--
	}
	for v, n := range counts {
		if n != 0 {
			t.Errorf("value %d count mismatch by %d", v, n)
		}
	}
	// The DC entry (natural (0,0)) must land at zig-zag position 0.
	if got[0] != byte(DefaultLuminanceTable[0][0]) {
		t.Errorf("zigzagTableBytes[0] = %d, want %d", got[0], DefaultLuminanceTable[0][0])
	}
}
