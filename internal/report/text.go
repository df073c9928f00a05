// Package report renders coverage results as human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/heartmarshall/l10n-coverage/internal/domain"
)

// Result is everything a report shows.
type Result struct {
	// Languages fixes the order in which per-language blocks are printed.
	Languages []string
	Missing   map[string][]string
	Sections  []domain.SectionGap
	// Fallback is the language consulted when a key is missing. Empty
	// disables the unresolved-keys block.
	Fallback   string
	Unresolved map[string][]string
}

// HasGaps reports whether any language misses a key.
func (r Result) HasGaps() bool {
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

// TextRenderer writes a plain-text report, optionally with ANSI colours.
type TextRenderer struct {
	w       io.Writer
	heading *color.Color
	bad     *color.Color
	good    *color.Color
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer, colored bool) *TextRenderer {
	r := &TextRenderer{
		w:       w,
		heading: color.New(color.Bold),
		bad:     color.New(color.FgRed),
		good:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{r.heading, r.bad, r.good} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the report and returns the first write error, if any.
func (r *TextRenderer) Render(res Result) error {
	ew := &errWriter{w: r.w}

	r.title(ew, "Missing keys by language")
	if !res.HasGaps() {
		ew.printf("%s\n", r.good.Sprint("All languages aligned: no missing keys."))
	} else {
		for _, lang := range res.Languages {
			r.keyList(ew, lang, res.Missing[lang])
		}
	}

	ew.printf("\n")
	r.title(ew, "Sections with partial language coverage")
	if len(res.Sections) == 0 {
		ew.printf("%s\n", r.good.Sprint("None."))
	}
	for _, s := range res.Sections {
		ew.printf("%s: missing %s\n", s.Key, r.bad.Sprint(strings.Join(s.Missing, ", ")))
	}

	if res.Fallback != "" && len(res.Unresolved) > 0 {
		ew.printf("\n")
		r.title(ew, fmt.Sprintf("Keys without fallback (%s)", res.Fallback))
		for _, lang := range res.Languages {
			r.keyList(ew, lang, res.Unresolved[lang])
		}
	}

	return ew.err
}

func (r *TextRenderer) title(ew *errWriter, s string) {
	ew.printf("%s\n%s\n", r.heading.Sprint(s), strings.Repeat("=", len(s)))
}

func (r *TextRenderer) keyList(ew *errWriter, lang string, keys []string) {
	if len(keys) == 0 {
		return
	}
	ew.printf("%s: %s\n", lang, r.bad.Sprintf("%d missing", len(keys)))
	for _, k := range keys {
		ew.printf("  - %s\n", k)
	}
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
