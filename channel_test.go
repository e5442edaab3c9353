package jpgenc

import "testing"

func TestChannelGetSetRoundTrip(t *testing.T) {
	c := NewChannel[int32](4, 5)
	c.Set(2, 3, 42)
	if got := c.Get(2, 3); got != 42 {
		t.Fatalf("Get(2,3) = %d, want 42", got)
	}
}

func TestChannelGetClamps(t *testing.T) {
	c := NewChannel[int32](4, 5)
	c.Set(0, 0, 1)
	c.Set(3, 4, 9)
	tests := []struct {
		r, col int
		want   int32
	}{
		{-1, -1, 1},
		{-5, 0, 1},
		{100, 100, 9},
		{3, 4, 9},
	}
	for _, tt := range tests {
		if got := c.Get(tt.r, tt.col); got != tt.want {
			t.Errorf("Get(%d,%d) = %d, want %d", tt.r, tt.col, got, tt.want)
		}
	}
}

func TestChannelSetOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-bounds Set")
		}
	}()
	c := NewChannel[int32](2, 2)
	c.Set(5, 5, 1)
}

func TestChannelResizePreserving(t *testing.T) {
	c := NewChannel[int32](2, 2)
	c.Set(0, 0, 1)
	c.Set(1, 1, 4)
	c.Resize(3, 3, true)
	if got := c.Get(0, 0); got != 1 {
		t.Errorf("Get(0,0) after resize = %d, want 1", got)
	}
	if got := c.Get(1, 1); got != 4 {
		t.Errorf("Get(1,1) after resize = %d, want 4", got)
	}
	if got := c.Get(2, 2); got != 0 {
		t.Errorf("Get(2,2) after resize = %d, want 0", got)
	}
}

func TestChannelBlockRow(t *testing.T) {
	c := NewChannel[int32](8, 8)
	for i := 0; i < 8; i++ {
		c.Set(3, i, int32(i))
	}
	row := c.BlockRow(0, 0, 3)
	for i := 0; i < 8; i++ {
		if row[i] != int32(i) {
			t.Errorf("BlockRow[%d] = %d, want %d", i, row[i], i)
		}
	}
}
