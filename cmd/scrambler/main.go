package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrymomot/scrambler/pkg/config"
	"github.com/dmitrymomot/scrambler/pkg/export"
	"github.com/dmitrymomot/scrambler/pkg/logger"
	"github.com/dmitrymomot/scrambler/pkg/scrambler"
)

// appConfig holds env-backed defaults; flags override them per invocation.
type appConfig struct {
	Count       int           `env:"SCRAMBLER_COUNT" envDefault:"10"`
	ExportFile  string        `env:"SCRAMBLER_EXPORT_FILE" envDefault:"alias-seeds.txt"`
	AliasDomain string        `env:"SCRAMBLER_ALIAS_DOMAIN" envDefault:"alias.yourdomain.com"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   logger.Format `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	count := flag.Int("count", cfg.Count, "number of seeds to generate")
	doExport := flag.Bool("export", false, "write seeds to "+cfg.ExportFile)
	flag.Parse()

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(slog.String("run_id", uuid.NewString())),
	)

	if err := run(cfg, *count, *doExport, os.Stdout, log); err != nil {
		log.Error("seed generation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run performs one generation pass: build the batch, print the table, and
// optionally export it. All errors are terminal; there is no partial success.
func run(cfg appConfig, count int, doExport bool, out io.Writer, log *slog.Logger) error {
	gen := scrambler.New()

	seeds, err := gen.GenerateBatch(count)
	if err != nil {
		return err
	}
	log.Debug("batch generated", slog.Int("count", len(seeds)))

	renderTable(out, seeds, cfg.AliasDomain)
	fmt.Fprintf(out, "\n  %d seeds generated using OS entropy\n\n", len(seeds))

	if doExport {
		if err := export.Write(cfg.ExportFile, seeds); err != nil {
			return err
		}
		path := cfg.ExportFile
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		fmt.Fprintf(out, "  Written to %s\n\n", path)
		fmt.Fprintf(out, "  Keep this file private. Delete it when done. Never commit it.\n\n")
		log.Info("seeds exported", slog.String("file", path), slog.Int("count", len(seeds)))
	}

	return nil
}
