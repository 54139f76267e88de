package gasreport

import "github.com/holiman/uint256"

// mean returns the truncating arithmetic mean of the samples, zero for an
// empty slice.
func mean(samples []uint256.Int) uint256.Int {
	if len(samples) == 0 {
		return uint256.Int{}
	}

	var sum uint256.Int
	for i := range samples {
		sum.Add(&sum, &samples[i])
	}

	var out uint256.Int
	out.Div(&sum, uint256.NewInt(uint64(len(samples))))

	return out
}

// medianSorted returns the median of an ascending-sorted slice, taking the
// lower of the two middle elements on even counts. Zero for an empty
// slice.
func medianSorted(sorted []uint256.Int) uint256.Int {
	if len(sorted) == 0 {
		return uint256.Int{}
	}

	return sorted[(len(sorted)-1)/2]
}
