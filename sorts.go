package sortbench

import "sort"

// The textbook implementations benchmarked by this package.
// Every function sorts a copy; the input slice is never touched.

func clone(input []float64) []float64 {
	out := make([]float64, len(input))
	copy(out, input)
	return out
}

// BubbleSort repeatedly swaps adjacent out-of-order pairs.
// Stops early once a full pass makes no swap. O(n²), O(n) on sorted input.
func BubbleSort(input []float64) []float64 {
	a := clone(input)
	for n := len(a); n > 1; {
		swapped := false
		for i := 1; i < n; i++ {
			if a[i-1] > a[i] {
				a[i-1], a[i] = a[i], a[i-1]
				swapped = true
			}
		}
		n--
		if !swapped {
			break
		}
	}
	return a
}

// InsertionSort grows a sorted prefix one element at a time. O(n²).
func InsertionSort(input []float64) []float64 {
	a := clone(input)
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
	return a
}

// SelectionSort repeatedly moves the minimum of the unsorted suffix to the
// front. O(n²) regardless of input order.
func SelectionSort(input []float64) []float64 {
	a := clone(input)
	for i := 0; i < len(a)-1; i++ {
		min := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[min] {
				min = j
			}
		}
		a[i], a[min] = a[min], a[i]
	}
	return a
}

// MergeSort is the classic top-down divide and merge. O(n log n), stable.
func MergeSort(input []float64) []float64 {
	if len(input) < 2 {
		return clone(input)
	}
	mid := len(input) / 2
	left := MergeSort(input[:mid])
	right := MergeSort(input[mid:])

	out := make([]float64, 0, len(input))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// QuickSort partitions around a median-of-three pivot.
// Average O(n log n); the pivot choice avoids the worst case on sorted input.
func QuickSort(input []float64) []float64 {
	a := clone(input)
	quicksort(a, 0, len(a)-1)
	return a
}

func quicksort(a []float64, lo, hi int) {
	for lo < hi {
		if hi-lo < 12 {
			// Insertion sort wins on short runs.
			for i := lo + 1; i <= hi; i++ {
				for j := i; j > lo && a[j] < a[j-1]; j-- {
					a[j], a[j-1] = a[j-1], a[j]
				}
			}
			return
		}
		p := partition(a, lo, hi)
		// Recurse into the smaller half, loop on the larger.
		if p-lo < hi-p {
			quicksort(a, lo, p-1)
			lo = p + 1
		} else {
			quicksort(a, p+1, hi)
			hi = p - 1
		}
	}
}

func partition(a []float64, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if a[mid] < a[lo] {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if a[hi] < a[lo] {
		a[hi], a[lo] = a[lo], a[hi]
	}
	if a[hi] < a[mid] {
		a[hi], a[mid] = a[mid], a[hi]
	}
	a[mid], a[hi-1] = a[hi-1], a[mid]
	pivot := a[hi-1]

	i := lo
	for j := lo; j < hi-1; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi-1] = a[hi-1], a[i]
	return i
}

// HeapSort builds a max-heap then repeatedly extracts the root. O(n log n).
func HeapSort(input []float64) []float64 {
	a := clone(input)
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end)
	}
	return a
}

func siftDown(a []float64, root, end int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && a[child+1] > a[child] {
			child++
		}
		if a[root] >= a[child] {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}

// ShellSort is insertion sort over a shrinking gap sequence (Knuth's
// 3h+1 gaps). Between O(n log n) and O(n^1.5) in practice.
func ShellSort(input []float64) []float64 {
	a := clone(input)
	gap := 1
	for gap < len(a)/3 {
		gap = 3*gap + 1
	}
	for ; gap >= 1; gap /= 3 {
		for i := gap; i < len(a); i++ {
			for j := i; j >= gap && a[j] < a[j-gap]; j -= gap {
				a[j], a[j-gap] = a[j-gap], a[j]
			}
		}
	}
	return a
}

// CountingSort tallies occurrences by value. O(n + k) where k is the value
// range. Input must be whole values >= 0 (DomainNonNegativeIntegers).
func CountingSort(input []float64) []float64 {
	if len(input) == 0 {
		return []float64{}
	}
	max := 0
	for _, v := range input {
		if int(v) > max {
			max = int(v)
		}
	}
	counts := make([]int, max+1)
	for _, v := range input {
		counts[int(v)]++
	}
	out := make([]float64, 0, len(input))
	for value, n := range counts {
		for ; n > 0; n-- {
			out = append(out, float64(value))
		}
	}
	return out
}

// RadixSort performs LSD base-10 passes with a stable counting step per
// digit. O(d·n) for d digits. Input must be whole values >= 0.
func RadixSort(input []float64) []float64 {
	out := make([]float64, len(input))
	copy(out, input)
	if len(out) < 2 {
		return out
	}

	max := 0
	for _, v := range out {
		if int(v) > max {
			max = int(v)
		}
	}

	buf := make([]float64, len(out))
	for exp := 1; max/exp > 0; exp *= 10 {
		var counts [10]int
		for _, v := range out {
			counts[(int(v)/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			counts[d] += counts[d-1]
		}
		for i := len(out) - 1; i >= 0; i-- {
			d := (int(out[i]) / exp) % 10
			counts[d]--
			buf[counts[d]] = out[i]
		}
		out, buf = buf, out
	}
	return out
}

// BucketSort scatters values into equal-width buckets by rank, insertion
// sorts each bucket, and concatenates. Average O(n) on uniform data.
func BucketSort(input []float64) []float64 {
	if len(input) < 2 {
		return clone(input)
	}

	min, max := input[0], input[0]
	for _, v := range input[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return clone(input)
	}

	n := len(input)
	buckets := make([][]float64, n)
	width := (max - min) / float64(n)
	for _, v := range input {
		b := int((v - min) / width)
		if b >= n {
			b = n - 1
		}
		buckets[b] = append(buckets[b], v)
	}

	out := make([]float64, 0, n)
	for _, bucket := range buckets {
		for i := 1; i < len(bucket); i++ {
			for j := i; j > 0 && bucket[j] < bucket[j-1]; j-- {
				bucket[j], bucket[j-1] = bucket[j-1], bucket[j]
			}
		}
		out = append(out, bucket...)
	}
	return out
}

// NativeSort is the standard library's sort, included as the baseline every
// other algorithm is compared against.
func NativeSort(input []float64) []float64 {
	a := clone(input)
	sort.Float64s(a)
	return a
}
