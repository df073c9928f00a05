package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/heartmarshall/l10n-coverage/internal/domain"
)

// Validate normalizes and checks the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var verr domain.ValidationError
	c.Coverage.validate(&verr)
	return verr.OrNil()
}

func (c *CoverageConfig) validate(verr *domain.ValidationError) {
	c.ResourcePath = strings.TrimSpace(c.ResourcePath)
	if c.ResourcePath == "" {
		verr.Add("coverage.resource_path", "must not be empty")
	}

	langs, err := ParseLanguages(c.Languages)
	if err != nil {
		verr.Add("coverage.languages", err.Error())
		return
	}
	c.Languages = langs

	fallback := strings.TrimSpace(c.FallbackLanguage)
	if strings.EqualFold(fallback, "none") {
		fallback = ""
	}
	c.FallbackLanguage = fallback
	if fallback != "" && !slices.Contains(langs, fallback) {
		verr.Add("coverage.fallback_language", fmt.Sprintf("%q is not one of the checked languages", fallback))
	}
}

// ParseLanguages trims the codes, drops empty entries and rejects
// malformed BCP 47 tags and duplicates. Codes are returned verbatim,
// not canonicalized, because they are looked up as document keys.
func ParseLanguages(raw []string) ([]string, error) {
	codes := make([]string, 0, len(raw))
	for _, r := range raw {
		code := strings.TrimSpace(r)
		if code == "" {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("invalid language code %q: %w", code, err)
		}
		if slices.Contains(codes, code) {
			return nil, fmt.Errorf("duplicate language code %q", code)
		}
		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil, errors.New("at least one language code is required")
	}
	return codes, nil
}
