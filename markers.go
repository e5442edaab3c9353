package jpgenc

// JPEG marker codes used by the assembler. Only the baseline-sequential
// subset is needed: no DNL, no hierarchical, no arithmetic coding markers.
const (
	markerSOI  = 0xd8
	markerEOI  = 0xd9
	markerAPP0 = 0xe0
	markerDQT  = 0xdb
	markerSOF0 = 0xc0
	markerDHT  = 0xc4
	markerSOS  = 0xda
)

// componentID assigns the conventional JFIF component identifiers.
const (
	componentIDY  = 1
	componentIDCb = 2
	componentIDCr = 3
)

// huffTableClass distinguishes DC from AC tables within a DHT segment.
const (
	huffClassDC = 0
	huffClassAC = 1
)
