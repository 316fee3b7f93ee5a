package base128

// chunk splits src into groups of exactly size elements. The last group is completed with filler and
// the number of filler elements is returned as padding. An empty src yields no groups.
//
// Groups share the backing array of src except for the padded one.
func chunk[T any](src []T, size int, filler T) (groups [][]T, padding int) {
	if len(src) == 0 {
		return nil, 0
	}

	if rem := len(src) % size; rem != 0 {
		padding = size - rem
	}

	groups = make([][]T, 0, (len(src)+padding)/size)
	for len(src) >= size {
		groups = append(groups, src[:size:size])
		src = src[size:]
	}

	if padding > 0 {
		last := make([]T, size)
		copy(last, src)
		for i := len(src); i < size; i++ {
			last[i] = filler
		}
		groups = append(groups, last)
	}

	return groups, padding
}
