package jpgenc

// RLEPair is one run-length entry: ZerosBefore zeros followed by Value,
// except the two escapes: ZerosBefore=15,Value=0 is ZRL (16 zeros), and
// ZerosBefore=0,Value=0 is EOB (the remaining coefficients are zero).
type RLEPair struct {
	ZerosBefore int
	Value       int32
}

// RLEEncode runs the AC coefficients of a zig-zag vector through the JPEG
// run-length convention, prefixed with the DC pair (0, zz[0]) so downstream
// category/Huffman coding can treat DC and AC uniformly.
//
//   - A run is terminated by a nonzero value, emitted as (run, value).
//   - A run of 16 or more zeros before a nonzero value is split into
//     (15, 0) ZRL escapes of exactly 16 zeros each before the pair that
//     terminates it.
//   - If no further nonzero value arrives, however many zeros remain
//     (1 to 63 of them) are coded as a single trailing (0, 0) EOB, never
//     as ZRL escapes: ZRL only ever precedes a nonzero value.
func RLEEncode(zz [64]int32) []RLEPair {
	pairs := make([]RLEPair, 0, 64)
	pairs = append(pairs, RLEPair{0, zz[0]})

	run := 0
	for i := 1; i < 64; i++ {
		v := zz[i]
		if v == 0 {
			run++
			continue
		}
		for run > 15 {
			pairs = append(pairs, RLEPair{15, 0})
			run -= 16
		}
		pairs = append(pairs, RLEPair{run, v})
		run = 0
	}
	if run > 0 {
		pairs = append(pairs, RLEPair{0, 0})
	}
	return pairs
}

// RLEDecode inverts RLEEncode, reproducing the original 64-length zig-zag
// vector. The first pair is the DC value; any (0,0) pair thereafter is EOB
// (the encoder never emits a literal zero-valued AC pair any other way).
func RLEDecode(pairs []RLEPair) [64]int32 {
	var zz [64]int32
	if len(pairs) == 0 {
		return zz
	}
	zz[0] = pairs[0].Value

	idx := 1
	for _, p := range pairs[1:] {
		if p.ZerosBefore == 0 && p.Value == 0 {
			break // EOB: remainder is already zero
		}
		idx += p.ZerosBefore
		if idx < 64 {
			zz[idx] = p.Value
		}
		idx++
	}
	return zz
}
