package ordering

// countInversions returns the number of pairs i<j with seq[i] > seq[j],
// computed by an iterative bottom-up merge sort so no call stack grows
// with input size (spec.md §9: convert recursive routines to an
// explicit work-stack / iterative form).
func countInversions(seq []int) int {
	n := len(seq)
	if n < 2 {
		return 0
	}
	src := append([]int(nil), seq...)
	buf := make([]int, n)
	count := 0
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			count += mergeCount(src, buf, lo, mid, hi)
		}
	}
	return count
}

func mergeCount(src, buf []int, lo, mid, hi int) int {
	i, j, k := lo, mid, lo
	count := 0
	for i < mid && j < hi {
		if src[i] <= src[j] {
			buf[k] = src[i]
			i++
		} else {
			buf[k] = src[j]
			j++
			count += mid - i
		}
		k++
	}
	for i < mid {
		buf[k] = src[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = src[j]
		j++
		k++
	}
	copy(src[lo:hi], buf[lo:hi])
	return count
}
