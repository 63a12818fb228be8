package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-raytracer/internal/log"
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/scene"
)

var logger = log.New("renderer")

var (
	// ErrInvalidDimensions is returned for a scene without a positive image size
	ErrInvalidDimensions = errors.New("renderer: image width and height must be positive")
	// ErrNoIntegrator is returned when no integrator is supplied
	ErrNoIntegrator = errors.New("renderer: no integrator")
)

// ProgressSink receives the completed fraction of a render. Values are
// non-decreasing and the last reported value of a successful render is 1.
type ProgressSink interface {
	Progress(fraction float64)
}

// ProgressFunc adapts a function to ProgressSink
type ProgressFunc func(fraction float64)

// Progress implements ProgressSink
func (f ProgressFunc) Progress(fraction float64) { f(fraction) }

// Options controls how a frame is rendered
type Options struct {
	Workers         int   // concurrent goroutines; 0 selects DefaultWorkers
	Bands           int   // row bands; 0 uses one band per worker
	SamplesPerPixel int   // 0 uses the scene's value
	Seed            int64 // base seed of the per-band samplers
	Progress        ProgressSink
}

// Renderer renders a scene into a framebuffer by splitting the image into
// row bands that are traced concurrently and merged in band order. The
// output depends only on the scene, the integrator, Bands and Seed.
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	options    Options
	spp        int
}

// New validates the inputs and creates a renderer
func New(s *scene.Scene, in integrator.Integrator, options Options) (*Renderer, error) {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if in == nil {
		return nil, ErrNoIntegrator
	}
	if err := in.Validate(s); err != nil {
		return nil, fmt.Errorf("invalid scene for %s integrator: %w", in.Name(), err)
	}

	if options.Workers <= 0 {
		options.Workers = DefaultWorkers()
	}
	if options.Bands <= 0 {
		options.Bands = options.Workers
	}

	spp := options.SamplesPerPixel
	if spp <= 0 {
		spp = s.SamplesPerPixel
	}
	if spp <= 0 {
		spp = 1
	}

	return &Renderer{
		scene:      s,
		integrator: in,
		camera:     NewCamera(s),
		options:    options,
		spp:        spp,
	}, nil
}

// Render traces every pixel and returns the merged framebuffer. It stops
// early with the context's error when ctx is cancelled.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	width, height := r.scene.Width, r.scene.Height
	bands := PartitionRows(height, r.options.Bands)

	pool := NewWorkerPool(ctx, r, min(r.options.Workers, len(bands)), len(bands))
	logger.Infof("rendering %q at %dx%d with %s: %d spp, %d workers, %d bands",
		r.scene.Name, width, height, r.integrator.Name(), r.spp, pool.GetNumWorkers(), len(bands))

	pool.Start()
	for _, band := range bands {
		pool.SubmitTask(BandTask{Band: band, Seed: bandSeed(r.options.Seed, band.Index)})
	}
	pool.Stop()

	fb := NewFramebuffer(width, height)
	stats := RenderStats{
		Width:           width,
		Height:          height,
		Workers:         pool.GetNumWorkers(),
		SamplesPerPixel: r.spp,
		Bands:           make([]BandStats, len(bands)),
	}

	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
			}
			continue
		}
		// Bands own disjoint rows, so arrival order does not matter
		copy(fb.Pixels[result.Band.Y0*width:result.Band.Y1*width], result.Pixels)
		stats.Bands[result.Band.Index] = result.Stats
		stats.TotalPixels += result.Stats.Pixels
		stats.TotalSamples += result.Stats.Samples
	}
	stats.Duration = time.Since(start)

	if firstErr != nil {
		logger.Warningf("render of %q aborted: %v", r.scene.Name, firstErr)
		return nil, stats, firstErr
	}

	if r.options.Progress != nil {
		r.options.Progress.Progress(1)
	}
	logger.Infof("rendered %d samples in %v", stats.TotalSamples, stats.Duration)
	return fb, stats, nil
}

// renderBand traces all pixels of one band with its own sampler. Band 0
// reports per-row progress.
func (r *Renderer) renderBand(ctx context.Context, band Band, sampler core.Sampler) ([]core.Vec3, int, error) {
	width := r.scene.Width
	pixels := make([]core.Vec3, band.Rows()*width)
	samples := 0
	invSpp := 1 / float64(r.spp)

	for j := band.Y0; j < band.Y1; j++ {
		if err := ctx.Err(); err != nil {
			return nil, samples, err
		}
		row := pixels[(j-band.Y0)*width : (j-band.Y0+1)*width]
		for i := range row {
			ray := r.camera.GetRay(i, j)
			var color core.Vec3
			for k := 0; k < r.spp; k++ {
				color = color.Add(r.integrator.RayColor(ray, r.scene, sampler))
			}
			row[i] = color.Multiply(invSpp)
			samples += r.spp
		}

		if band.Index == 0 && r.options.Progress != nil {
			r.options.Progress.Progress(float64(j-band.Y0+1) / float64(band.Rows()))
		}
	}
	return pixels, samples, nil
}

func bandSeed(seed int64, index int) int64 {
	return seed*1000003 + int64(index)
}

// DefaultWorkers returns the number of logical CPUs
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
