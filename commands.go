package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Render a scene and save the frame.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	s, err := scene.Build(name, scene.Options{
		Seed:        ctx.Int64("seed"),
		TexturePath: ctx.String("texture"),
	})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	config := renderConfig(ctx, s.Config)
	r, err := renderer.NewRenderer(s.World, s.NewCamera(config), s.Background, config)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	out := ctx.String("out")
	if out == "" {
		if out, err = defaultOutputPath("output", name, time.Now()); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q (%s)", s.Name, s.Description)
	frame, stats, renderErr := r.Render(runCtx)
	if renderErr != nil && !errors.Is(renderErr, context.Canceled) {
		return cli.NewExitError(renderErr.Error(), 1)
	}

	if err := renderer.Save(out, frame); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	renderer.LogRenderStats(config, stats)
	logger.Noticef("frame saved to %s", out)

	if renderErr != nil {
		return cli.NewExitError("render interrupted, partial frame saved", 1)
	}
	return nil
}

// renderConfig overrides the scene's recommended settings with the flags set
// on the command line
func renderConfig(ctx *cli.Context, config renderer.Config) renderer.Config {
	ints := map[string]*int{
		"width":   &config.Width,
		"height":  &config.Height,
		"spp":     &config.SamplesPerPixel,
		"depth":   &config.MaxDepth,
		"workers": &config.NumWorkers,
		"tile":    &config.TileSize,
	}
	for flag, field := range ints {
		if ctx.IsSet(flag) {
			*field = ctx.Int(flag)
		}
	}
	config.Seed = ctx.Int64("seed")
	return config
}

// defaultOutputPath returns root/<scene>/render_<timestamp>.png, creating the
// scene directory
func defaultOutputPath(root, sceneName string, now time.Time) (string, error) {
	outputDir := filepath.Join(root, sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))), nil
}

// List the registered scenes.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range scene.Names() {
		table.Append([]string{name, scene.Description(name)})
	}
	table.Render()
	return nil
}
