package coverage

import "github.com/samber/lo"

// UnresolvedByLanguage narrows MissingByLanguage to the keys that the
// fallback language cannot serve either. At runtime a lookup goes
// culture -> fallback -> key, so these keys are displayed as the raw key.
//
// An empty fallback disables the check and returns nil. A fallback whose
// block is absent or not an object resolves nothing.
func (c *Checker) UnresolvedByLanguage(doc *Document, fallback string) map[string][]string {
	if fallback == "" {
		return nil
	}

	fallbackKeys, _ := doc.ObjectKeys(fallback)

	unresolved := make(map[string][]string)
	for lang, keys := range c.MissingByLanguage(doc) {
		gap := lo.Filter(keys, func(k string, _ int) bool {
			return !lo.Contains(fallbackKeys, k)
		})
		if len(gap) > 0 {
			unresolved[lang] = gap
		}
	}
	return unresolved
}
