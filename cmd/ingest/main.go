package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/shaftdb/internal/config"
	"github.com/okian/shaftdb/internal/ingest"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	var (
		rawDir = fs.String("raw-dir", "", "Directory of spec sheets (default from config)")
		store  = fs.String("store", "", "Catalog file to write (default from config)")
		xlsx   = fs.String("xlsx", "", "Also export the built catalog to this workbook")
		dryRun = fs.Bool("dry-run", false, "Build and report without writing the catalog")
		help   = fs.Bool("help", false, "Show help")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		ingest.ShowHelp()
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}
	if err := ingest.SetupLogging(cfg.LogFormat, cfg.LogLevel); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}

	runCfg := &ingest.Config{
		RawDir:     cfg.RawDir,
		Paths:      fs.Args(),
		StorePath:  cfg.StorePath,
		XLSXPath:   *xlsx,
		DryRun:     *dryRun,
		SampleSize: cfg.FailureSampleSize,
		Out:        os.Stdout,
	}
	if *rawDir != "" {
		runCfg.RawDir = *rawDir
	}
	if *store != "" {
		runCfg.StorePath = *store
	}

	if _, err := ingest.Run(ctx, runCfg); err != nil {
		os.Stderr.WriteString("ingest failed: " + err.Error() + "\n")
		return 1
	}
	return 0
}
