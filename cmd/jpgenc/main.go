// Command jpgenc encodes a PPM image as a baseline sequential JPEG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nuos/jpgenc"
)

func main() {
	var sub string
	var dct string
	var quality int
	flag.StringVar(&sub, "sub", "444", "chroma subsampling mode: 444, 422, 411, 420, 420m, 420lm")
	flag.StringVar(&dct, "dct", "matrix", "forward DCT implementation: direct, matrix, arai")
	flag.IntVar(&quality, "quality", jpgenc.DefaultQuality, "JPEG quality, 1-100")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: jpgenc [flags] input.ppm output.jpg")
		os.Exit(2)
	}
	in, out := args[0], args[1]

	subMode, err := parseSub(sub)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -sub: %s\n", err)
		os.Exit(1)
	}
	dctKind, err := jpgenc.ParseDCTKind(dct)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -dct: %s\n", err)
		os.Exit(1)
	}

	inFile, err := os.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening input %s: %s\n", in, err)
		os.Exit(1)
	}
	defer inFile.Close()

	img, err := jpgenc.LoadPPM(inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: decoding input %s: %s\n", in, err)
		os.Exit(1)
	}

	outFile, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: creating output %s: %s\n", out, err)
		os.Exit(1)
	}
	defer outFile.Close()

	opts := jpgenc.Options{
		Quality:         quality,
		SubsamplingMode: subMode,
		DCTKind:         dctKind,
		Workers:         4,
	}
	if err := jpgenc.EncodeTo(outFile, img, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: encoding %s: %s\n", out, err)
		os.Exit(1)
	}
}

func parseSub(s string) (jpgenc.SubsamplingMode, error) {
	switch s {
	case "444":
		return jpgenc.Sub444, nil
	case "422":
		return jpgenc.Sub422, nil
	case "411":
		return jpgenc.Sub411, nil
	case "420":
		return jpgenc.Sub420, nil
	case "420m":
		return jpgenc.Sub420M, nil
	case "420lm":
		return jpgenc.Sub420LM, nil
	default:
		return 0, fmt.Errorf("unknown subsampling mode %q", s)
	}
}
