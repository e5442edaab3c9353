package jpgenc

// DCPredict replaces each 8x8 block's DC coefficient (the natural-order
// (0,0) sample) with its difference from the previous block of the same
// channel in scan order, returning a new channel; the source is untouched.
//
// The source's open question on subtraction direction ("prev - curr" vs
// "curr - prev") is resolved here as curr - predicted, the canonical JPEG
// convention used by every baseline decoder: a block's decoded DC is the
// running sum of these differences. See DESIGN.md.
func DCPredict(q *Channel[int32]) *Channel[int32] {
	rows, cols := q.Rows(), q.Cols()
	out := NewChannel[int32](rows, cols)
	copy(out.Data(), q.Data())

	var prev int32
	for r0 := 0; r0 < rows; r0 += 8 {
		for c0 := 0; c0 < cols; c0 += 8 {
			cur := q.Get(r0, c0)
			out.Set(r0, c0, cur-prev)
			prev = cur
		}
	}
	return out
}

// DCPredictOrder is DCPredict generalized to an explicit block-visitation
// order: JPEG differences each component's DC against the previous block of
// that same component as actually emitted into the entropy-coded scan, which
// for a subsampled component is MCU order, not necessarily plain raster
// order. order holds the (row, col) origin of each 8x8 block in emission
// order; DCPredict is the order==raster special case.
func DCPredictOrder(q *Channel[int32], order [][2]int) *Channel[int32] {
	out := NewChannel[int32](q.Rows(), q.Cols())
	copy(out.Data(), q.Data())

	var prev int32
	for _, rc := range order {
		cur := q.Get(rc[0], rc[1])
		out.Set(rc[0], rc[1], cur-prev)
		prev = cur
	}
	return out
}
