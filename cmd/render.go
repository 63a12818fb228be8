package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := resolveSettings(ctx)
	if err != nil {
		return err
	}

	sceneID := ctx.String("scene")
	info, _, err := scene.Lookup(sceneID)
	if err != nil {
		return err
	}

	sc, err := scene.Load(sceneID, scene.BuildOptions{
		Width:       settings.Width,
		Height:      settings.Height,
		OBJPath:     ctx.String("obj"),
		TexturePath: ctx.String("texture"),
	})
	if err != nil {
		return err
	}
	applySceneOverrides(sc, settings)

	integratorName := ctx.String("integrator")
	if integratorName == "" {
		integratorName = info.Integrator
	}
	in, err := integrator.New(integratorName)
	if err != nil {
		return err
	}

	spp := settings.SamplesPerPixel
	if in.Name() == "whitted" && spp > 1 {
		logger.Noticef("whitted integrator is deterministic, rendering 1 spp instead of %d", spp)
		spp = 1
	}

	r, err := renderer.New(sc, in, renderer.Options{
		Workers:         settings.Threads,
		SamplesPerPixel: spp,
		Seed:            settings.Seed,
		Progress:        newProgressBar(os.Stderr),
	})
	if err != nil {
		return err
	}

	fb, stats, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := writeFrame(out, fb, settings.Gamma); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	displayFrameStats(stats)
	return nil
}

// resolveSettings starts from the settings file, or the defaults, and
// applies every flag given on the command line.
func resolveSettings(ctx *cli.Context) (loaders.Settings, error) {
	settings := loaders.DefaultSettings()
	if path := ctx.String("settings"); path != "" {
		var err error
		if settings, err = loaders.LoadSettings(path); err != nil {
			return settings, err
		}
	}

	if ctx.IsSet("width") {
		settings.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		settings.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		settings.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("threads") {
		settings.Threads = ctx.Int("threads")
	}
	if ctx.IsSet("gamma") {
		settings.Gamma = ctx.Float64("gamma")
	}
	if ctx.IsSet("seed") {
		settings.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("fov") {
		fov := ctx.Float64("fov")
		settings.FOV = &fov
	}
	if ctx.IsSet("depth") {
		depth := ctx.Int("depth")
		settings.MaxDepth = &depth
	}
	if ctx.IsSet("rr") {
		rr := ctx.Float64("rr")
		settings.RussianRoulette = &rr
	}
	if ctx.IsSet("epsilon") {
		eps := ctx.Float64("epsilon")
		settings.Epsilon = &eps
	}

	return settings, settings.Validate()
}

func applySceneOverrides(sc *scene.Scene, settings loaders.Settings) {
	if settings.FOV != nil {
		sc.FOV = *settings.FOV
	}
	if settings.MaxDepth != nil {
		sc.MaxDepth = *settings.MaxDepth
	}
	if settings.RussianRoulette != nil {
		sc.RussianRoulette = *settings.RussianRoulette
	}
	if settings.Epsilon != nil {
		sc.Epsilon = *settings.Epsilon
	}
}

// writeFrame saves the framebuffer as PNG when the file name ends in .png
// and as binary PPM otherwise. Nothing is left behind on failure.
func writeFrame(path string, fb *renderer.Framebuffer, gamma float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = png.Encode(file, fb.Image(gamma))
	} else {
		err = fb.WritePPM(file, gamma)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "Worker", "% of frame", "Samples", "Render time"})
	for _, band := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", band.Index),
			fmt.Sprintf("%d-%d", band.Y0, band.Y1-1),
			fmt.Sprintf("%d", band.Worker),
			fmt.Sprintf("%02.1f %%", 100*float64(band.Pixels)/float64(stats.Width*stats.Height)),
			fmt.Sprintf("%d", band.Samples),
			band.Duration.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", stats.TotalSamples), stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics (%.0f samples/s)\n%s", stats.SamplesPerSecond(), buf.String())
}

// progressBar draws a single-line text progress bar
type progressBar struct {
	w     io.Writer
	width int
	last  int
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, width: 70, last: -1}
}

// Progress implements renderer.ProgressSink
func (p *progressBar) Progress(fraction float64) {
	fraction = max(0, min(1, fraction))
	percent := int(fraction * 100)
	if percent == p.last {
		return
	}
	p.last = percent

	filled := int(fraction * float64(p.width))
	fmt.Fprintf(p.w, "\r[%s>%s] %d %%", strings.Repeat("=", filled), strings.Repeat(" ", p.width-filled), percent)
	if fraction >= 1 {
		fmt.Fprintln(p.w)
	}
}
