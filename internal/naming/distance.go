package naming

// Levenshtein computes the edit distance between two strings, counting
// single-rune insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in ra; two rows of len(ra)+1 suffice.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Suggest returns the candidate closest to name when it is near enough to
// be a likely misspelling: at most one edit for short names, a third of the
// length for longer ones. Exact matches are not suggestions.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		d := Levenshtein(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := max(1, len([]rune(name))/3)
	if bestDist < 0 || bestDist > limit {
		return "", false
	}

	return best, true
}
