package fuzzy

import "math"

// Similarity returns a similarity ratio between two strings in [0, 1],
// computed over Unicode code points with the Ratcliff/Obershelp algorithm:
// twice the total length of matching blocks divided by the combined length.
// Two empty strings are identical (1.0); comparison is case-sensitive and
// whitespace-significant. The result is rounded to three decimal places,
// halves away from zero.
//
// The score does not depend on argument order. Worst-case cost grows with the
// product of the input lengths.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}

	// Canonical argument order: tie-breaking between equally long blocks
	// favors the first argument, so fix the order to keep the score
	// symmetric.
	if a > b {
		a, b = b, a
	}

	ra := []rune(a)
	rb := []rune(b)

	matched := matchedLen(ra, rb, 0, len(ra), 0, len(rb))
	ratio := 2 * float64(matched) / float64(len(ra)+len(rb))

	return math.Round(ratio*1000) / 1000
}

// matchedLen sums matching block lengths between a[alo:ahi] and b[blo:bhi]:
// take the longest common contiguous block, then recurse into the regions to
// its left and right.
func matchedLen(a, b []rune, alo, ahi, blo, bhi int) int {
	if alo >= ahi || blo >= bhi {
		return 0
	}

	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}

	return matchedLen(a, b, alo, i, blo, j) +
		size +
		matchedLen(a, b, i+size, ahi, j+size, bhi)
}

// longestMatch finds the longest contiguous block common to a[alo:ahi] and
// b[blo:bhi]. Ties go to the earliest start in a, then the earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo

	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			size := j2len[j-1] + 1
			newj2len[j] = size
			if size > bestsize {
				besti, bestj, bestsize = i-size+1, j-size+1, size
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
