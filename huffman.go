package jpgenc

import (
	"fmt"
	"sort"
)

// HuffmanCode is one canonical Huffman codeword: Length bits of Code,
// packed right-justified, read MSB-first when emitted.
type HuffmanCode struct {
	Code   uint32
	Length int
}

// SymbolCodeMap is a complete canonical Huffman table, keyed by symbol.
type SymbolCodeMap map[byte]HuffmanCode

// dummySymbol sorts after every real JPEG symbol (0-255) and absorbs the
// all-ones codeword so it is never assigned to real data; see BuildHuffmanTable.
const dummySymbol = 256

// weightedItem is one leaf or merged package in the package-merge algorithm:
// a total weight and the set of original leaf symbols it represents.
type weightedItem struct {
	weight int
	leaves []int
}

// packageMerge computes length-limited (<=limit bits) code lengths for the
// given (symbol, weight) pairs using the package-merge algorithm: build
// limit-1 levels of packages, each level pairing up adjacent items from the
// previous level and merging the result back in with the original leaves;
// the final level's lightest 2*(n-1) items, counted by how often each
// symbol recurs among them, give each symbol's code length. limit-1 rounds,
// not limit, is what keeps every resulting length at or under limit.
//
// Zero-weight symbols are dropped before packaging: an unused symbol gets
// no codeword. Returns ErrCodeLengthExceeded if limit is too small to fit
// the number of distinct (nonzero-weight) symbols at all (2^limit < n).
func packageMerge(freqs map[int]int, limit int) (map[int]int, error) {
	type sw struct {
		sym    int
		weight int
	}
	var syms []sw
	for s, w := range freqs {
		if w > 0 {
			syms = append(syms, sw{s, w})
		}
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].weight != syms[j].weight {
			return syms[i].weight < syms[j].weight
		}
		return syms[i].sym < syms[j].sym
	})
	n := len(syms)
	lengths := make(map[int]int, n)
	if n == 0 {
		return lengths, nil
	}
	if n == 1 {
		lengths[syms[0].sym] = 1
		return lengths, nil
	}
	if n > (1 << uint(limit)) {
		return nil, fmt.Errorf("%w: %d symbols cannot fit in %d-bit codes", ErrCodeLengthExceeded, n, limit)
	}

	leaves := make([]weightedItem, n)
	for i, s := range syms {
		leaves[i] = weightedItem{weight: s.weight, leaves: []int{s.sym}}
	}

	level := leaves
	top := level
	for l := 1; l < limit; l++ {
		var paired []weightedItem
		for i := 0; i+1 < len(level); i += 2 {
			merged := make([]int, 0, len(level[i].leaves)+len(level[i+1].leaves))
			merged = append(merged, level[i].leaves...)
			merged = append(merged, level[i+1].leaves...)
			paired = append(paired, weightedItem{weight: level[i].weight + level[i+1].weight, leaves: merged})
		}
		level = mergeByWeight(leaves, paired)
		top = level
	}

	take := 2 * (n - 1)
	if take > len(top) {
		take = len(top)
	}
	for _, item := range top[:take] {
		for _, s := range item.leaves {
			lengths[s]++
		}
	}
	for _, s := range syms {
		if lengths[s.sym] == 0 {
			return nil, fmt.Errorf("%w: symbol %d has no code of length <= %d", ErrCodeLengthExceeded, s.sym, limit)
		}
	}
	return lengths, nil
}

// mergeByWeight stably merges two weight-ascending-sorted lists, preferring
// a (leaf) over b (package) on ties so original symbol order is preserved.
func mergeByWeight(a, b []weightedItem) []weightedItem {
	out := make([]weightedItem, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].weight <= b[j].weight {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// assignCanonicalCodes converts a symbol -> length map into a symbol ->
// codeword map, walking symbols in (length, symbol) order and incrementing
// a running code value by length per the standard canonical construction.
func assignCanonicalCodes(lengths map[int]int) map[int]HuffmanCode {
	type sl struct {
		sym, length int
	}
	var syms []sl
	maxLen := 0
	for s, l := range lengths {
		syms = append(syms, sl{s, l})
		if l > maxLen {
			maxLen = l
		}
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].length != syms[j].length {
			return syms[i].length < syms[j].length
		}
		return syms[i].sym < syms[j].sym
	})

	codes := make(map[int]HuffmanCode, len(syms))
	code := 0
	prevLen := 0
	for _, e := range syms {
		code <<= uint(e.length - prevLen)
		codes[e.sym] = HuffmanCode{Code: uint32(code), Length: e.length}
		code++
		prevLen = e.length
	}
	return codes
}

// BuildHuffmanTable derives a canonical, length-limited (<=16 bits) Huffman
// table from symbol frequencies, as JPEG requires for its DC and AC tables.
//
// A synthetic dummy symbol of weight 1 is packaged alongside the real
// symbols; because it sorts after every real byte value, canonical
// assignment gives it the last (numerically highest) codeword of the
// longest length actually used, and dropping it from the returned table
// reserves that bit pattern, the reserved all-ones codeword JPEG byte
// stuffing would otherwise confuse with a marker. See DESIGN.md.
func BuildHuffmanTable(freqs map[byte]int) (SymbolCodeMap, error) {
	const limit = 16
	in := make(map[int]int, len(freqs)+1)
	for s, w := range freqs {
		in[int(s)] = w
	}
	in[dummySymbol] = 1

	lengths, err := packageMerge(in, limit)
	if err != nil {
		return nil, err
	}
	delete(lengths, dummySymbol)
	codes := assignCanonicalCodes(lengths)

	out := make(SymbolCodeMap, len(codes))
	for s, c := range codes {
		out[byte(s)] = c
	}
	return out, nil
}

// FrequencyTable tallies symbol occurrences for Huffman table construction.
type FrequencyTable map[byte]int

// Count increments the tally for sym.
func (f FrequencyTable) Count(sym byte) {
	f[sym]++
}
