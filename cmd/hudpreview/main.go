// Command hudpreview renders a HUD preset to PNG images.
//
// It loads a YAML preset, builds the standard value dictionary for each
// frame in the requested range, and writes one overlay image per frame:
//
//	hudpreview -preset review.yaml -out frames/ -start 1001 -end 1096
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/hud"
	"github.com/gogpu/hud/preset"
	"github.com/gogpu/hud/render"
)

func main() {
	presetPath := flag.String("preset", "", "path to the YAML preset (required)")
	outDir := flag.String("out", ".", "output directory for PNG frames")
	width := flag.Int("width", 1920, "frame width in pixels")
	height := flag.Int("height", 1080, "frame height in pixels")
	start := flag.Int("start", 1, "first frame")
	end := flag.Int("end", 1, "last frame")
	camera := flag.String("camera", "persp", "camera name for the value dictionary")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel render workers")
	gate := flag.Bool("gate", true, "darken the area outside the film gate")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	hud.SetLogger(logger)

	if err := run(*presetPath, *outDir, *width, *height, *start, *end, *camera, *workers, *gate); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(presetPath, outDir string, width, height, start, end int, camera string, workers int, gate bool) error {
	if presetPath == "" {
		return fmt.Errorf("-preset is required")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("frame size %dx%d is not valid", width, height)
	}
	if end < start {
		return fmt.Errorf("frame range %d..%d is empty", start, end)
	}
	if workers < 1 {
		workers = 1
	}

	p, err := preset.Load(presetPath)
	if err != nil {
		return err
	}
	cam, err := p.Camera.HUDCamera()
	if err != nil {
		return err
	}
	fields, err := p.HUDFields()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	opts := render.Options{
		ShowGate:  gate,
		GateColor: hud.RGB(0, 0, 0),
		GateAlpha: 1,
	}
	if p.Mask.Enable {
		opts.Mask = render.MaskOptions{
			Enable:      true,
			AspectRatio: p.Mask.AspectRatio,
			Top:         p.Mask.Top,
			Bottom:      p.Mask.Bottom,
			Color:       hud.Hex(p.Mask.Color),
			Alpha:       p.Mask.Alpha,
		}
	}

	state := hud.SceneState{
		UserName:        userName(),
		FilePath:        presetPath,
		CameraShortName: camera,
		CameraLongName:  "|" + camera,
	}

	slog.Info("rendering preset",
		"preset", p.Name,
		"frames", end-start+1,
		"size", fmt.Sprintf("%dx%d", width, height),
		"workers", workers)
	begin := time.Now()

	var g errgroup.Group
	g.SetLimit(workers)
	for frame := start; frame <= end; frame++ {
		frame := frame
		g.Go(func() error {
			s := state
			s.Frame = float64(frame)
			vals := hud.StandardValues(s, cam, time.Now())

			c := render.NewCanvas(width, height)
			if err := render.Overlay(c, cam, fields, vals, opts); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
			path := filepath.Join(outDir, fmt.Sprintf("hud.%04d.png", frame))
			if err := c.SavePNG(path); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
			slog.Debug("wrote frame", "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("done", "frames", end-start+1, "elapsed", time.Since(begin).Round(time.Millisecond))
	return nil
}

func userName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
