package sortbench

import "math/rand"

// ElementKind distinguishes the value shapes a generator can produce.
type ElementKind string

const (
	KindInteger ElementKind = "INTEGER" // whole values only
	KindFloat   ElementKind = "FLOAT"   // fractional values allowed
)

// RandomArray returns size elements drawn uniformly from [0, maxMagnitude).
// KindInteger truncates to whole values; KindFloat keeps the full fraction.
// No ordering guarantee. size == 0 yields an empty slice.
func RandomArray(size int, maxMagnitude float64, kind ElementKind) []float64 {
	out := make([]float64, size)
	for i := range out {
		v := rand.Float64() * maxMagnitude
		if kind == KindInteger {
			v = float64(int(v))
		}
		out[i] = v
	}
	return out
}

// SortedArray returns the elements 0..size-1 in order, reversed when
// descending is set. KindFloat adds a sub-unit fractional jitter per element
// so values stay distinct without disturbing their relative order.
func SortedArray(size int, kind ElementKind, descending bool) []float64 {
	out := make([]float64, size)
	for i := range out {
		v := float64(i)
		if descending {
			v = float64(size - 1 - i)
		}
		if kind == KindFloat {
			v += rand.Float64()
		}
		out[i] = v
	}
	return out
}

// NearlySortedArray starts from SortedArray and performs
// floor(size*chaosPercent/100) random index-pair swaps. Swap targets are
// chosen uniformly and may coincide, so chaosPercent is an upper bound on
// the actual disorder, not an exact amount.
func NearlySortedArray(size int, chaosPercent float64, descending bool, kind ElementKind) []float64 {
	out := SortedArray(size, kind, descending)
	if size < 2 {
		return out
	}
	swaps := int(float64(size) * chaosPercent / 100)
	for s := 0; s < swaps; s++ {
		i := rand.Intn(size)
		j := rand.Intn(size)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DuplicateHeavyArray returns size elements drawn from only distinct whole
// values, producing long runs of equal keys. distinct < 1 is treated as 1.
func DuplicateHeavyArray(size, distinct int) []float64 {
	if distinct < 1 {
		distinct = 1
	}
	out := make([]float64, size)
	for i := range out {
		out[i] = float64(rand.Intn(distinct))
	}
	return out
}

// SparseArray returns size elements that are mostly zero; each element is a
// uniform whole value in [1, maxMagnitude) with probability density, zero
// otherwise. density is clamped to [0, 1].
func SparseArray(size int, density float64, maxMagnitude float64) []float64 {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	out := make([]float64, size)
	for i := range out {
		if rand.Float64() < density {
			out[i] = float64(1 + rand.Intn(int(maxMagnitude)-1))
		}
	}
	return out
}
