package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/l10n-coverage/internal/config"
	"github.com/heartmarshall/l10n-coverage/internal/coverage"
	"github.com/heartmarshall/l10n-coverage/internal/report"
)

// Run loads the resource document named by cfg, compares its language
// blocks and writes the text report to out.
//
// Coverage gaps are findings, not failures: Run returns nil for any
// document it could read and parse.
func Run(cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	doc, err := coverage.LoadDocument(cfg.Coverage.ResourcePath)
	if err != nil {
		return fmt.Errorf("load resource: %w", err)
	}

	checker := coverage.NewChecker(cfg.Coverage.Languages)

	stats := checker.Stats(doc)
	logger.Info("resource loaded",
		slog.String("path", cfg.Coverage.ResourcePath),
		slog.Int("entries", doc.Len()),
		slog.Int("cultures", len(stats.Blocks)),
		slog.Int("total_keys", stats.TotalKeys()),
		slog.Int("distinct_keys", stats.UnionSize),
	)
	for _, lang := range checker.Languages() {
		if _, ok := stats.Blocks[lang]; !ok {
			logger.Debug("language block skipped", slog.String("language", lang))
		}
	}

	res := report.Result{
		Languages:  checker.Languages(),
		Missing:    checker.MissingByLanguage(doc),
		Sections:   checker.InconsistentSections(doc),
		Fallback:   cfg.Coverage.FallbackLanguage,
		Unresolved: checker.UnresolvedByLanguage(doc, cfg.Coverage.FallbackLanguage),
	}

	logger.Info("coverage checked",
		slog.Int("languages_with_gaps", len(res.Missing)),
		slog.Int("inconsistent_sections", len(res.Sections)),
		slog.Int("languages_with_unresolved", len(res.Unresolved)),
	)

	if err := report.NewTextRenderer(out, cfg.Report.Color).Render(res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
