// Package coverage compares the key sets of language blocks in a
// localization document and finds sections with partial language coverage.
package coverage

import (
	"slices"

	"github.com/samber/lo"

	"github.com/heartmarshall/l10n-coverage/internal/domain"
)

// Checker computes coverage gaps for a fixed, ordered list of languages.
// It never mutates the documents it inspects.
type Checker struct {
	languages []string
}

// NewChecker creates a Checker for the given language codes.
// The slice is copied.
func NewChecker(languages []string) *Checker {
	return &Checker{languages: slices.Clone(languages)}
}

// Languages returns the target language codes in configured order.
func (c *Checker) Languages() []string {
	return slices.Clone(c.languages)
}

type languageBlock struct {
	language string
	keys     []string
}

// blocks returns the key sets of every target language whose block is an
// object. Absent and non-object blocks are skipped, not treated as empty.
func (c *Checker) blocks(doc *Document) []languageBlock {
	var out []languageBlock
	for _, lang := range c.languages {
		keys, ok := doc.ObjectKeys(lang)
		if !ok {
			continue
		}
		out = append(out, languageBlock{language: lang, keys: keys})
	}
	return out
}

func unionKeys(blocks []languageBlock) []string {
	all := lo.Flatten(lo.Map(blocks, func(b languageBlock, _ int) []string {
		return b.keys
	}))
	union := lo.Uniq(all)
	slices.Sort(union)
	return union
}

// MissingByLanguage returns, per language, the sorted keys present in some
// other language block but absent from its own. Languages without gaps,
// and languages without a valid block, are omitted. An empty block is
// valid and receives the whole union as missing.
func (c *Checker) MissingByLanguage(doc *Document) map[string][]string {
	blocks := c.blocks(doc)
	union := unionKeys(blocks)

	missing := make(map[string][]string)
	for _, b := range blocks {
		gap, _ := lo.Difference(union, b.keys)
		if len(gap) == 0 {
			continue
		}
		// union is sorted and Difference keeps its order
		missing[b.language] = gap
	}
	return missing
}

// InconsistentSections returns the top-level non-language objects that
// contain some but not all target languages as keys, in document order.
// Sections with no language keys at all are not reported.
func (c *Checker) InconsistentSections(doc *Document) []domain.SectionGap {
	var gaps []domain.SectionGap
	for _, key := range doc.Keys() {
		if lo.Contains(c.languages, key) {
			continue
		}
		sectionKeys, ok := doc.ObjectKeys(key)
		if !ok {
			continue
		}

		present := lo.Filter(c.languages, func(lang string, _ int) bool {
			return lo.Contains(sectionKeys, lang)
		})
		if len(present) == 0 || len(present) == len(c.languages) {
			continue
		}

		absent, _ := lo.Difference(c.languages, present)
		absent = lo.Uniq(absent)
		slices.Sort(absent)
		gaps = append(gaps, domain.SectionGap{Key: key, Missing: absent})
	}
	return gaps
}

// Stats summarizes the valid language blocks of doc.
func (c *Checker) Stats(doc *Document) domain.CoverageStats {
	blocks := c.blocks(doc)

	stats := domain.CoverageStats{Blocks: make(map[string]int, len(blocks))}
	for _, b := range blocks {
		stats.Blocks[b.language] = len(b.keys)
	}
	stats.UnionSize = len(unionKeys(blocks))
	return stats
}
