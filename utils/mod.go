package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev returns the king-move distance between (r1, c1) and (r2, c2)
func Chebyshev[T constraints.Signed](r1, c1, r2, c2 T) T {
	return max(Abs(r1-r2), Abs(c1-c2))
}
