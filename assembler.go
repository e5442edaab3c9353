package jpgenc

import "fmt"

// bitWriter accumulates variable-length codes into bytes and performs JPEG
// byte stuffing: any output byte 0xff is followed by a stuffed 0x00 so the
// decoder never mistakes entropy-coded data for a marker.
type bitWriter struct {
	out   []byte
	bits  uint32
	nBits uint32
}

// emit appends the low n bits of v to the stream, most significant bit
// first. The precondition is v < 1<<n && n <= 24.
func (w *bitWriter) emit(v uint32, n uint32) {
	if n == 0 {
		return
	}
	w.nBits += n
	w.bits = (w.bits << n) | (v & ((1 << n) - 1))
	for w.nBits >= 8 {
		shift := w.nBits - 8
		b := byte(w.bits >> shift)
		w.out = append(w.out, b)
		if b == 0xff {
			w.out = append(w.out, 0x00)
		}
		w.nBits = shift
		w.bits &= (1 << shift) - 1
	}
}

func (w *bitWriter) emitCode(c HuffmanCode) {
	w.emit(c.Code, uint32(c.Length))
}

// padToByte pads any partial final byte with 1 bits, the convention JPEG
// uses at the end of a scan's entropy-coded segment.
func (w *bitWriter) padToByte() {
	if w.nBits > 0 {
		w.emit((1<<(8-w.nBits))-1, 8-w.nBits)
	}
}

type symbolCode struct {
	sym  byte
	code HuffmanCode
}

// dhtTableData converts a canonical code map into the BITS/VALUES form a
// DHT segment stores: BITS[i] counts codes of length i+1, and VALUES lists
// the symbols in the same (length, then code) order canonical assignment
// produced them, which for fixed code lengths is also ascending symbol
// order within each length.
func dhtTableData(t SymbolCodeMap) (bits [16]byte, values []byte) {
	entries := make([]symbolCode, 0, len(t))
	for s, c := range t {
		entries = append(entries, symbolCode{s, c})
	}
	sortSymbolsByCode(entries)
	for _, e := range entries {
		bits[e.code.Length-1]++
		values = append(values, e.sym)
	}
	return bits, values
}

func sortSymbolsByCode(entries []symbolCode) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if a.code.Length < b.code.Length || (a.code.Length == b.code.Length && a.code.Code <= b.code.Code) {
				break
			}
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}

// componentPlan is everything the assembler needs about one scan component:
// its JFIF identifier, sampling factors relative to the frame maximum, the
// quantization table it uses, and its already DC-differenced, quantized
// coefficient channel.
type componentPlan struct {
	id          byte
	hSamp, vSamp byte
	quantIndex  byte
	dcTable     SymbolCodeMap
	acTable     SymbolCodeMap
	coeffs      *Channel[int32]
}

func writeMarkerHeader(buf []byte, marker byte, length int) []byte {
	buf = append(buf, 0xff, marker, byte(length>>8), byte(length))
	return buf
}

func writeSOI(buf []byte) []byte {
	return append(buf, 0xff, markerSOI)
}

func writeEOI(buf []byte) []byte {
	return append(buf, 0xff, markerEOI)
}

// writeAPP0 writes the JFIF identification segment: version 1.01, no
// density information (aspect ratio only), no embedded thumbnail.
func writeAPP0(buf []byte) []byte {
	buf = writeMarkerHeader(buf, markerAPP0, 16)
	buf = append(buf, 'J', 'F', 'I', 'F', 0x00)
	buf = append(buf, 1, 1)    // version 1.01
	buf = append(buf, 0)       // density units: none
	buf = append(buf, 0, 1)    // Xdensity
	buf = append(buf, 0, 1)    // Ydensity
	buf = append(buf, 0, 0)    // no thumbnail
	return buf
}

// writeDQT writes a single Define Quantization Table segment holding every
// table (table i gets destination index i), 8-bit precision, values in
// zig-zag order as the standard requires.
func writeDQT(buf []byte, tables []QuantTable) []byte {
	length := 2
	for range tables {
		length += 1 + 64
	}
	buf = writeMarkerHeader(buf, markerDQT, length)
	for i, t := range tables {
		buf = append(buf, byte(i)) // precision nibble 0 (8-bit) | table index
		zz := zigzagTableBytes(t)
		buf = append(buf, zz[:]...)
	}
	return buf
}

// writeSOF0 writes the baseline-sequential Start Of Frame segment.
func writeSOF0(buf []byte, width, height int, components []componentPlan) []byte {
	length := 8 + 3*len(components)
	buf = writeMarkerHeader(buf, markerSOF0, length)
	buf = append(buf, 8) // 8-bit sample precision
	buf = append(buf, byte(height>>8), byte(height))
	buf = append(buf, byte(width>>8), byte(width))
	buf = append(buf, byte(len(components)))
	for _, c := range components {
		buf = append(buf, c.id, c.hSamp<<4|c.vSamp, c.quantIndex)
	}
	return buf
}

// dhtEntry names one Huffman table to be serialized into a DHT segment.
type dhtEntry struct {
	class, index byte
	table        SymbolCodeMap
}

// writeDHT writes a single Define Huffman Table segment holding every table.
func writeDHT(buf []byte, tables []dhtEntry) []byte {
	length := 2
	payloads := make([][2][]byte, len(tables))
	for i, t := range tables {
		bits, values := dhtTableData(t.table)
		bc := append([]byte(nil), bits[:]...)
		payloads[i] = [2][]byte{bc, values}
		length += 1 + 16 + len(values)
	}
	buf = writeMarkerHeader(buf, markerDHT, length)
	for i, t := range tables {
		buf = append(buf, t.class<<4|t.index)
		buf = append(buf, payloads[i][0]...)
		buf = append(buf, payloads[i][1]...)
	}
	return buf
}

// writeSOS writes the Start Of Scan header for a single, fully interleaved
// scan covering every component (spectral selection 0-63, no successive
// approximation: this encoder only produces baseline sequential scans).
func writeSOS(buf []byte, components []componentPlan, dcIdx, acIdx map[byte]byte) []byte {
	length := 6 + 2*len(components)
	buf = writeMarkerHeader(buf, markerSOS, length)
	buf = append(buf, byte(len(components)))
	for _, c := range components {
		buf = append(buf, c.id, dcIdx[c.id]<<4|acIdx[c.id])
	}
	buf = append(buf, 0, 63, 0) // Ss, Se, Ah|Al
	return buf
}

// mcuBlockOrder returns, for a component with the given sampling factors,
// the (row, col) pixel origin of every 8x8 block in MCU traversal order:
// MCUs in raster order, and within each MCU this component's vSamp*hSamp
// blocks in raster order. mcusWide/mcusHigh are measured in MCUs, not
// blocks.
func mcuBlockOrder(hSamp, vSamp, mcusWide, mcusHigh int) [][2]int {
	order := make([][2]int, 0, mcusWide*mcusHigh*hSamp*vSamp)
	for mr := 0; mr < mcusHigh; mr++ {
		for mc := 0; mc < mcusWide; mc++ {
			for by := 0; by < vSamp; by++ {
				for bx := 0; bx < hSamp; bx++ {
					order = append(order, [2]int{(mr*vSamp + by) * 8, (mc*hSamp + bx) * 8})
				}
			}
		}
	}
	return order
}

// writeEntropyCodedScan walks every component's blocks in MCU order,
// emitting each block's DC-difference and run-length-coded AC coefficients
// through that component's Huffman tables. coeffs must already hold
// quantized, DC-differenced coefficients (see DCPredictOrder).
func writeEntropyCodedScan(buf []byte, components []componentPlan, mcusWide, mcusHigh int) []byte {
	w := &bitWriter{}
	orders := make([][][2]int, len(components))
	for i, c := range components {
		orders[i] = mcuBlockOrder(int(c.hSamp), int(c.vSamp), mcusWide, mcusHigh)
	}
	blocksPerMCU := make([]int, len(components))
	for i, c := range components {
		blocksPerMCU[i] = int(c.hSamp) * int(c.vSamp)
	}
	cursor := make([]int, len(components))

	for mcu := 0; mcu < mcusWide*mcusHigh; mcu++ {
		for i, c := range components {
			for b := 0; b < blocksPerMCU[i]; b++ {
				rc := orders[i][cursor[i]]
				cursor[i]++
				writeEntropyBlock(w, c, rc[0], rc[1])
			}
		}
	}
	w.padToByte()
	return append(buf, w.out...)
}

func writeEntropyBlock(w *bitWriter, c componentPlan, r0, c0 int) {
	var natural [8][8]int32
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			natural[r][col] = c.coeffs.Get(r0+r, c0+col)
		}
	}
	zz := ZigZag(natural)
	pairs := RLEEncode(zz)
	codes := EncodeCategory(pairs)

	dcCode, ok := c.dcTable[codes[0].Symbol]
	if !ok {
		panic(fmt.Sprintf("jpgenc: no DC huffman code for symbol %#x", codes[0].Symbol))
	}
	w.emitCode(dcCode)
	if codes[0].MagnitudeBits > 0 {
		w.emit(codes[0].Magnitude, uint32(codes[0].MagnitudeBits))
	}
	for _, cc := range codes[1:] {
		acCode, ok := c.acTable[cc.Symbol]
		if !ok {
			panic(fmt.Sprintf("jpgenc: no AC huffman code for symbol %#x", cc.Symbol))
		}
		w.emitCode(acCode)
		if cc.MagnitudeBits > 0 {
			w.emit(cc.Magnitude, uint32(cc.MagnitudeBits))
		}
	}
}
