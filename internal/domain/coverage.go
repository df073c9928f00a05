package domain

// SectionGap is a top-level section that carries some, but not all,
// of the target languages as its own keys.
type SectionGap struct {
	Key     string
	Missing []string
}

// CoverageStats summarizes the language blocks found in a document.
type CoverageStats struct {
	// Blocks holds the number of keys per language, for languages whose
	// block is an object. Languages without a valid block are absent.
	Blocks map[string]int
	// UnionSize is the number of distinct keys across all valid blocks.
	UnionSize int
}

// TotalKeys returns the sum of keys over all valid language blocks.
func (s CoverageStats) TotalKeys() int {
	total := 0
	for _, n := range s.Blocks {
		total += n
	}
	return total
}
