package jpgenc

import "testing"

func TestBitstreamPushAndBit(t *testing.T) {
	var s Bitstream[uint8]
	s.PushBit(true)
	s.PushBit(false)
	s.PushBit(true)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []bool{true, false, true}
	for i, w := range want {
		if got := s.Bit(i); got != w {
			t.Errorf("Bit(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestBitstreamPushBits(t *testing.T) {
	var s Bitstream[uint16]
	s.PushBits(0b1011, 4)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	want := []bool{true, false, true, true}
	for i, w := range want {
		if got := s.Bit(i); got != w {
			t.Errorf("Bit(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestBitstreamExtract(t *testing.T) {
	var s Bitstream[uint8]
	s.PushBits(0xA5, 8) // 1010 0101
	if got := s.Extract(4, 0); got != 0b1010 {
		t.Errorf("Extract(4,0) = %b, want 1010", got)
	}
	if got := s.Extract(4, 4); got != 0b0101 {
		t.Errorf("Extract(4,4) = %b, want 0101", got)
	}
	if got := s.Extract(8, 0); got != 0xA5 {
		t.Errorf("Extract(8,0) = %x, want a5", got)
	}
}

func TestBitstreamExtractPastEndReadsZero(t *testing.T) {
	var s Bitstream[uint8]
	s.PushBit(true)
	if got := s.Extract(3, 0); got != 0b100 {
		t.Errorf("Extract(3,0) = %b, want 100", got)
	}
}

func TestBitstreamAppend(t *testing.T) {
	var a, b Bitstream[uint8]
	a.PushBits(0b11, 2)
	b.PushBits(0b001, 3)
	a.Append(&b)
	if a.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", a.Len())
	}
	if got := a.Extract(5, 0); got != 0b11001 {
		t.Errorf("Extract(5,0) = %b, want 11001", got)
	}
}

func TestBitstreamFillToByte(t *testing.T) {
	var s Bitstream[uint8]
	s.PushBits(0b101, 3)
	s.FillToByte(false)
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Len())
	}
	if got := s.Extract(8, 0); got != 0b10100000 {
		t.Errorf("Extract(8,0) = %b, want 10100000", got)
	}
}

func TestBitstreamFillToByteNoOpWhenAligned(t *testing.T) {
	var s Bitstream[uint8]
	s.PushBits(0xff, 8)
	s.FillToByte(false)
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Len())
	}
}

func TestBitstreamEqual(t *testing.T) {
	var a, b Bitstream[uint32]
	a.PushBits(0b1100, 4)
	b.PushBits(0b1100, 4)
	if !a.Equal(&b) {
		t.Fatal("expected equal bitstreams")
	}
	b.PushBit(true)
	if a.Equal(&b) {
		t.Fatal("expected unequal bitstreams after length diverges")
	}
}

func TestBitstreamBytesBigEndian(t *testing.T) {
	var s Bitstream[uint8]
	s.PushBits(0x12, 8)
	s.PushBits(0x34, 8)
	got := s.Bytes()
	want := []byte{0x12, 0x34}
	if len(got) != len(want) {
		t.Fatalf("len(Bytes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes()[%d] = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestBitstreamDifferentBlockWordsAgreeOnBitOrder(t *testing.T) {
	var s8 Bitstream[uint8]
	var s64 Bitstream[uint64]
	bits := []bool{true, false, false, true, true, false, true, false, true, true}
	for _, b := range bits {
		s8.PushBit(b)
		s64.PushBit(b)
	}
	if s8.Len() != s64.Len() {
		t.Fatalf("lengths differ: %d vs %d", s8.Len(), s64.Len())
	}
	for i := range bits {
		if s8.Bit(i) != s64.Bit(i) {
			t.Errorf("bit %d differs between block widths", i)
		}
	}
}
