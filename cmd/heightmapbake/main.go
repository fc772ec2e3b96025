// Command heightmapbake samples a terrain preset over a grid and writes the
// result as a colored PNG, using the matching material preset's elevation
// bands as gradient stops. Useful for eyeballing a preset or a seed without
// starting the view server.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/mazznoer/colorgrad"

	"github.com/terraforge/terrain/internal/terrain"
	"github.com/terraforge/terrain/pkg/preset"
)

func main() {
	var (
		out        = flag.String("o", "heightmap.png", "output PNG path")
		width      = flag.Int("width", 1024, "image width in samples")
		height     = flag.Int("height", 1024, "image height in samples")
		scale      = flag.Float64("scale", 4, "world units per sample")
		seed       = flag.Int64("seed", 1, "world seed")
		presetName = flag.String("preset", "default", "terrain preset")
		material   = flag.String("material", "", "material preset (defaults to the terrain preset name)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *material == "" {
		*material = *presetName
	}
	mat, err := preset.Load(*material)
	if err != nil {
		log.Error("load material preset", "error", err)
		os.Exit(1)
	}
	grad, err := bandGradient(mat)
	if err != nil {
		log.Error("build gradient", "error", err)
		os.Exit(1)
	}

	tr := terrain.New(terrain.Config{Seed: uint64(*seed), Preset: *presetName})
	samples := tr.Heightmap().Generate(*width, *height, *scale)

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	for y := 0; y < *height; y++ {
		for x := 0; x < *width; x++ {
			img.Set(x, y, grad.At(samples[y**width+x]))
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create output", "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Error("encode png", "error", err)
		os.Exit(1)
	}

	log.Info("heightmap baked",
		"out", *out,
		"size", fmt.Sprintf("%dx%d", *width, *height),
		"preset", *presetName,
		"material", *material,
		"seed", *seed,
	)
}

// bandGradient builds an elevation color ramp with one stop per material
// band, positioned at the band's upper bound.
func bandGradient(p *preset.Preset) (colorgrad.Gradient, error) {
	colors := make([]colorgrad.Color, 0, len(p.Bands))
	domain := make([]float64, 0, len(p.Bands))
	for _, b := range p.Bands {
		c, err := parseHexColor(b.Color)
		if err != nil {
			return colorgrad.Gradient{}, fmt.Errorf("band %s: %w", b.Name, err)
		}
		colors = append(colors, colorgrad.GoColor(c))
		domain = append(domain, b.UpTo)
	}
	return colorgrad.NewGradient().
		Colors(colors...).
		Domain(domain...).
		Build()
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
