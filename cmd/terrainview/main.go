package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/terraforge/terrain/internal/config"
	"github.com/terraforge/terrain/internal/viewserver"
	"github.com/terraforge/terrain/pkg/preset"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "terrain preset (default, islands, mountains, dunes)")
	flag.Float64Var(&cfg.ChunkWorldSize, "chunk-size", cfg.ChunkWorldSize, "chunk edge length in world units")
	flag.IntVar(&cfg.ChunkResolution, "resolution", cfg.ChunkResolution, "samples per chunk side")
	flag.IntVar(&cfg.ViewDistance, "view-distance", cfg.ViewDistance, "streaming radius in chunks")
	flag.Float64Var(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "world-space height scale")
	flag.IntVar(&cfg.LodLevels, "lod-levels", cfg.LodLevels, "number of detail levels")
	flag.Float64Var(&cfg.LodBaseDistance, "lod-base", cfg.LodBaseDistance, "distance of the finest detail band")
	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "streaming ticks per second")
	flag.BoolVar(&cfg.Compress, "compress", cfg.Compress, "zstd-compress mesh frames")
	flag.StringVar(&cfg.PresetPack, "preset-pack", cfg.PresetPack, "material preset pack to fetch (go-getter URL or path)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.PresetPack != "" {
		dst := filepath.Join(os.TempDir(), "terrainview-presets")
		names, err := preset.FetchPack(ctx, dst, cfg.PresetPack)
		if err != nil {
			log.Error("fetch preset pack", "error", err)
			os.Exit(1)
		}
		log.Info("preset pack loaded", "source", cfg.PresetPack, "presets", names)
	}

	srv := viewserver.New(cfg, log)
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
