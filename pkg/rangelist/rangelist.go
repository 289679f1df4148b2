package rangelist

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// RangeList is a sorted list of disjoint half-open integer ranges.
//
// Adjacent ranges never touch: adding [b, c) next to [a, b) yields [a, c).
// A RangeList is not safe for concurrent mutation.
type RangeList struct {
	// ranges is sorted by Begin, with ranges[i].End < ranges[i+1].Begin
	// and no empty element. All methods rely on this property.
	ranges []Range
}

// New returns a RangeList holding ranges as given. The ranges are not
// validated; they must already be sorted, disjoint, non touching and non
// empty. Use Add to build a list from arbitrary input.
func New(ranges ...Range) *RangeList {
	return &RangeList{ranges: append([]Range{}, ranges...)}
}

// Len returns the number of stored ranges.
func (r *RangeList) Len() int { return len(r.ranges) }

// Ranges returns a copy of the stored ranges.
func (r *RangeList) Ranges() []Range {
	return append([]Range{}, r.ranges...)
}

// Add inserts rg, merging it with every stored range it overlaps or touches.
//
// For example, adding [10, 16) to [4, 7) [9, 11) [15, 21) replaces the last
// two ranges with [9, 21).
func (r *RangeList) Add(rg Range) error {
	if err := rg.validate(); err != nil {
		return err
	}
	if rg.IsEmpty() {
		return nil
	}

	bi := r.locate(rg.Begin)
	ei := r.locate(rg.End)

	// [delFrom, delTo] is the run of flattened endpoints swallowed by
	// merged.
	merged := rg
	delFrom, delTo := bi, ei

	if bi%2 == 0 {
		// begin sits in a gap; absorb the previous range when its end
		// touches begin.
		if bi > 0 && r.at(bi-1) == rg.Begin {
			delFrom = bi - 1
			merged.Begin = r.at(bi - 2)
		}
	} else {
		merged.Begin = r.at(bi - 1)
	}

	if ei%2 == 0 {
		delTo = ei - 1
	} else {
		merged.End = r.at(ei)
	}

	lo, hi := rangeIndex(delFrom, delTo)
	r.ranges = slices.Replace(r.ranges, lo, hi, merged)
	return nil
}

// Remove deletes every integer covered by rg, splitting stored ranges that
// rg only partially covers.
//
// For example, removing [6, 19) from [3, 8) [10, 14) [17, 32) leaves
// [3, 6) [19, 32).
func (r *RangeList) Remove(rg Range) error {
	if err := rg.validate(); err != nil {
		return err
	}
	if rg.IsEmpty() {
		return nil
	}

	bi := r.locate(rg.Begin)
	ei := r.locate(rg.End)

	delFrom, delTo := bi, ei
	leftovers := make([]Range, 0, 2)

	if bi%2 == 1 {
		if left := r.at(bi - 1); rg.Begin > left {
			leftovers = append(leftovers, RangeFrom(left, rg.Begin))
		}
	}

	if ei%2 == 1 {
		right := r.at(ei)
		if left := r.at(ei - 1); rg.End > left {
			leftovers = append(leftovers, RangeFrom(rg.End, right))
		} else {
			// end touches the begin of this range, keep it whole
			delTo -= 2
		}
	} else {
		delTo--
	}

	lo, hi := rangeIndex(delFrom, delTo)
	r.ranges = slices.Replace(r.ranges, lo, hi, leftovers...)
	return nil
}

// rangeIndex converts the inclusive run [from, to] of flattened indices to
// the half-open slice bounds [lo, hi) of the stored ranges. to may be -1.
func rangeIndex(from, to int) (lo, hi int) {
	return from / 2, (to + 2) / 2
}

// locate returns the smallest flattened index whose endpoint is strictly
// greater than v, or 2*Len() when there is none.
//
//	[3, 6) [9, 13) [16, 20) flattens to 3 6 9 13 16 20
//	locate(1) = 0, locate(3) = 1, locate(6) = 2, locate(12) = 3, locate(23) = 6
func (r *RangeList) locate(v int64) int {
	return sort.Search(2*len(r.ranges), func(i int) bool {
		return r.at(i) > v
	})
}

// endpoint returns the value at index i of the flattened endpoint view,
// where range k contributes Begin at 2k and End at 2k+1.
func (r *RangeList) endpoint(i int) (int64, error) {
	if i < 0 || i >= 2*len(r.ranges) {
		return 0, errors.Wrapf(ErrOutOfBounds, "endpoint %d not in [0, %d)", i, 2*len(r.ranges))
	}
	rg := r.ranges[i/2]
	if i%2 == 0 {
		return rg.Begin, nil
	}
	return rg.End, nil
}

// at is endpoint for callers that already hold a valid index.
func (r *RangeList) at(i int) int64 {
	v, err := r.endpoint(i)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the list as "[b, e) [b, e) ...", or "" when empty.
func (r *RangeList) String() string {
	var sb strings.Builder
	for i, rg := range r.ranges {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(rg.String())
	}
	return sb.String()
}

// Print writes the String form of r followed by a newline to w.
func (r *RangeList) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}
