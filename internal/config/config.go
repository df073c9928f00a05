package config

// Config is the root configuration of the coverage checker.
type Config struct {
	Coverage CoverageConfig `yaml:"coverage"`
	Report   ReportConfig   `yaml:"report"`
	Log      LogConfig      `yaml:"log"`
}

// CoverageConfig selects the resource file and the languages to compare.
type CoverageConfig struct {
	ResourcePath string `yaml:"resource_path" env:"L10N_RESOURCE_PATH" env-default:"Resources/localization.json"`
	// Languages are matched verbatim against top-level document keys.
	Languages []string `yaml:"languages" env:"L10N_LANGUAGES" env-default:"tr-TR,en-US,ar-SA" env-separator:","`
	// FallbackLanguage is the culture consulted when a key is missing.
	// "none" disables the unresolved-keys pass.
	FallbackLanguage string `yaml:"fallback_language" env:"L10N_FALLBACK_LANGUAGE" env-default:"tr-TR"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Color bool `yaml:"color" env:"L10N_REPORT_COLOR" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
