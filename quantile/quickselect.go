package quantile

import "math"

// floydRivestThreshold is the sub-range size above which the Floyd-Rivest
// recursive narrowing kicks in; below it, the range is narrowed by Hoare
// partition passes alone.
const floydRivestThreshold = 600

// QuickSelect rearranges arr in place so that arr[k] holds the value that
// would appear at index k if arr were fully sorted ascending, with every
// element before k no greater and every element after k no smaller. It is
// the Floyd-Rivest variant: for ranges larger than 600 elements it first
// recurses on a narrower sub-range chosen by a log/exp heuristic to reduce
// the expected number of comparisons, then falls back to a Hoare partition.
//
// QuickSelect mutates arr. Panics if k is outside [0, len(arr)).
func QuickSelect(arr []float64, k int) float64 {
	if k < 0 || k >= len(arr) {
		panic("quantile: QuickSelect index out of range")
	}
	quickSelectRange(arr, 0, len(arr)-1, k)
	return arr[k]
}

// quickSelectRange is the classic Floyd-Rivest select, restricted to the
// closed sub-range [left, right] of arr, with target index k in that range.
func quickSelectRange(arr []float64, left, right, k int) {
	for right > left {
		if right-left > floydRivestThreshold {
			n := float64(right - left + 1)
			i := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if i < n/2 {
				sd = -sd
			}
			newLeft := int(math.Max(float64(left), math.Floor(float64(k)-i*s/n+sd)))
			newRight := int(math.Min(float64(right), math.Floor(float64(k)+(n-i)*s/n+sd)))
			quickSelectRange(arr, newLeft, newRight, k)
		}

		pivot := arr[k]
		i, j := left, right
		arr[left], arr[k] = arr[k], arr[left]
		if arr[right] > pivot {
			arr[right], arr[left] = arr[left], arr[right]
		}
		for i < j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
			for arr[i] < pivot {
				i++
			}
			for arr[j] > pivot {
				j--
			}
		}
		if arr[left] == pivot {
			arr[left], arr[j] = arr[j], arr[left]
		} else {
			j++
			arr[j], arr[right] = arr[right], arr[j]
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// selectMultiple resolves every index in idxs to its order-statistic value
// in a single pass over arr, mutating arr. It drives a worklist (a FIFO
// queue of sub-ranges, i.e. a deque used strictly as a queue) so that each
// target index is quickselected exactly once: the middle requested index in
// a sub-range is selected first, partitioning the range, and the remaining
// indices are split into a left and right worklist entry accordingly.
func selectMultiple(arr []float64, idxs []int) map[int]float64 {
	result := make(map[int]float64, len(idxs))
	if len(idxs) == 0 {
		return result
	}

	type task struct {
		lo, hi int
		idxs   []int
	}
	queue := []task{{lo: 0, hi: len(arr) - 1, idxs: idxs}}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if len(t.idxs) == 0 {
			continue
		}

		mid := t.idxs[len(t.idxs)/2]
		quickSelectRange(arr, t.lo, t.hi, mid)
		result[mid] = arr[mid]

		var left, right []int
		for _, ix := range t.idxs {
			switch {
			case ix < mid:
				left = append(left, ix)
			case ix > mid:
				right = append(right, ix)
			}
		}
		if len(left) > 0 {
			queue = append(queue, task{lo: t.lo, hi: mid - 1, idxs: left})
		}
		if len(right) > 0 {
			queue = append(queue, task{lo: mid + 1, hi: t.hi, idxs: right})
		}
	}

	return result
}
