// Command l10ncheck reports localization gaps in a JSON resource file.
// For every target language it lists the keys that other languages define
// but it does not, and it flags top-level sections that carry only some of
// the target languages.
//
// Flags:
//
//	--config   path to YAML config file (default: $CONFIG_PATH or ./l10ncheck.yaml)
//	--version  print version and exit
//
// Without a config file the tool checks Resources/localization.json for
// tr-TR, en-US and ar-SA.
//
// Exit codes: 0 = report written (whatever the findings), 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/l10n-coverage/internal/app"
	"github.com/heartmarshall/l10n-coverage/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log).With(slog.String("run_id", uuid.NewString()))
	logger.Debug("starting l10ncheck",
		slog.String("version", app.BuildVersion()),
		slog.Any("languages", cfg.Coverage.Languages),
	)

	if err := app.Run(cfg, logger, os.Stdout); err != nil {
		logger.Error("coverage check failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
