package connectivity

import "errors"

// Sentinel errors for component kernels.
var (
	// ErrDimension indicates tails and heads differ in length or are
	// shorter than the 1-indexed minimum.
	ErrDimension = errors.New("connectivity: tails and heads must be equal-length, 1-indexed slices")

	// ErrVertexRange indicates a link endpoint outside 1..n.
	ErrVertexRange = errors.New("connectivity: link endpoint outside 1..n")
)

// validate checks the flat-array encoding shared by both kernels and
// returns the link count m.
func validate(n int, tails, heads []int) (int, error) {
	if len(tails) != len(heads) || len(tails) < 1 {
		return 0, ErrDimension
	}
	m := len(tails) - 1
	for i := 1; i <= m; i++ {
		if tails[i] < 1 || tails[i] > n || heads[i] < 1 || heads[i] > n {
			return 0, ErrVertexRange
		}
	}

	return m, nil
}
