package jpgenc

import "errors"

// Sentinel error kinds, one per failure class in the encoder's error
// handling design. Callers use errors.Is against these to branch on kind;
// fmt.Errorf with %w attaches the offending detail.
var (
	// ErrInputError covers a missing/unreadable PPM file, an unsupported
	// magic number, a malformed header, or a max-color value >= 256.
	ErrInputError = errors.New("jpgenc: input error")

	// ErrInvalidColorSpace covers a conversion to or from a space other
	// than RGB and YCbCr, or a non-RGB image passed to Encode, which
	// requires RGB input.
	ErrInvalidColorSpace = errors.New("jpgenc: invalid color space")

	// ErrInvalidSubsamplingMode covers a subsampling mode incompatible
	// with the image dimensions or the chosen component sampling factors.
	ErrInvalidSubsamplingMode = errors.New("jpgenc: invalid subsampling mode")

	// ErrCodeLengthExceeded covers a package-merge run that could not
	// build a prefix code within the 16-bit JPEG length limit.
	ErrCodeLengthExceeded = errors.New("jpgenc: huffman code length exceeded")

	// ErrWriteError covers a failure from the underlying byte sink.
	ErrWriteError = errors.New("jpgenc: write error")
)
