package random

// Shuffle returns a uniformly random permutation of items without
// modifying the input. Fisher-Yates from the last index down to 1, one
// Source draw per swap; the per-step draws are what the bias analysis of
// the chain source assumes.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := src.Next(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SelectIndices draws count distinct indices from [0, max) minus exclude,
// uniformly without replacement. It keeps an explicit pool of eligible
// indices and swap-removes each pick so remaining probabilities stay
// uniform.
//
// If count exceeds the eligible pool the result is simply shorter, not an
// error; callers are expected to keep count within max minus the excluded
// set (the variant validity precondition guarantees this for rounds).
func SelectIndices(src Source, count, max int, exclude map[int]struct{}) []int {
	pool := make([]int, 0, max)
	for i := 0; i < max; i++ {
		if _, skip := exclude[i]; skip {
			continue
		}
		pool = append(pool, i)
	}

	if count > len(pool) {
		count = len(pool)
	}
	picked := make([]int, 0, count)
	for len(picked) < count {
		pos := src.Next(len(pool))
		picked = append(picked, pool[pos])
		pool[pos] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return picked
}
