// Package jpgenc implements a baseline sequential JPEG encoder.
//
// It converts an 8-bit-per-channel RGB raster (as loaded from a PPM file)
// into a JFIF-compliant JPEG byte stream: color-space conversion, chroma
// subsampling, blocked 2-D DCT, quantization, DC difference coding, AC
// run-length and category coding, canonical Huffman table construction, and
// bit-level assembly of the marker segments and entropy-coded scan.
//
// Decoding, progressive/hierarchical/lossless modes, arithmetic coding,
// restart markers and metadata segments are out of scope.
package jpgenc
