// Package main runs a one-shot MotorradbekleidungNET feed export.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/config"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/export"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/obs"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/source"
)

func main() {
	os.Exit(run())
}

// run carries the whole export so deferred cleanup executes before the
// process exit code is set.
func run() int {
	configPath := flag.String("config", "", "path to YAML config (optional, env overrides apply)")
	inputPath := flag.String("input", "variations.ndjson", "path to the variation NDJSON dump")
	datasetPath := flag.String("dataset", "dataset.json", "path to the lookup dataset JSON")
	outPath := flag.String("out", "-", "output file path, or - for stdout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		obs.InitLogger("info")
		obs.Logger.Error("config load failed", zap.Error(err))
		return 1
	}
	obs.InitLogger(cfg.LogLevel)

	producer, err := source.NewFileProducer(*inputPath)
	if err != nil {
		obs.Logger.Error("variation dump load failed", zap.Error(err))
		return 1
	}
	dataset, err := source.LoadDataset(*datasetPath)
	if err != nil {
		obs.Logger.Error("dataset load failed", zap.Error(err))
		return 1
	}

	var out io.Writer = os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			obs.Logger.Error("output open failed", zap.Error(err))
			return 1
		}
		defer f.Close()
		out = f
	}
	sink := export.NewTSVSink(out)

	filter := export.NewStockFilter(dataset, cfg.StockPositive)
	pipeline, err := export.New(cfg, producer, dataset, filter, sink)
	if err != nil {
		obs.Logger.Error("pipeline setup failed", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := pipeline.Run(ctx)
	if err != nil {
		obs.Logger.Error("export failed", zap.Error(err))
		return 1
	}
	if err := sink.Close(); err != nil {
		obs.Logger.Error("output flush failed", zap.Error(err))
		return 1
	}

	obs.Logger.Info("export complete",
		zap.Int64("total", summary.Total),
		zap.Int("emitted", summary.Emitted),
		zap.Int("filtered", summary.Filtered),
		zap.Int("price_skips", summary.PriceSkips),
		zap.Int("failures", summary.Failures))
	return 0
}
