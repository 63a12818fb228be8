package renderer

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/scene"
)

func TestPartitionRows(t *testing.T) {
	tests := []struct {
		name   string
		height int
		count  int
		want   []Band
	}{
		{"remainder to last band", 10, 3, []Band{{0, 0, 3}, {1, 3, 6}, {2, 6, 10}}},
		{"more bands than rows", 3, 8, []Band{{0, 0, 1}, {1, 1, 2}, {2, 2, 3}}},
		{"zero bands", 7, 0, []Band{{0, 0, 7}}},
		{"exact split", 8, 4, []Band{{0, 0, 2}, {1, 2, 4}, {2, 4, 6}, {3, 6, 8}}},
		{"empty image", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PartitionRows(tt.height, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d bands, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestCamera_CentreAndMirror(t *testing.T) {
	s := scene.New("camera", 3, 3)
	s.FOV = 90
	s.View = scene.View{Eye: core.NewVec3(1, 2, 3), Forward: -1}
	c := NewCamera(s)

	centre := c.GetRay(1, 1)
	if centre.Origin != s.View.Eye {
		t.Errorf("expected ray origin %v, got %v", s.View.Eye, centre.Origin)
	}
	if math.Abs(centre.Direction.Z+1) > 1e-12 {
		t.Errorf("expected centre ray along -Z, got %v", centre.Direction)
	}

	topLeft := c.GetRay(0, 0).Direction
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("expected top-left ray to point left and up, got %v", topLeft)
	}

	s.View.MirrorX = true
	s.View.Forward = 1
	mirrored := NewCamera(s).GetRay(0, 0).Direction
	if mirrored.X <= 0 || mirrored.Z <= 0 {
		t.Errorf("expected mirrored top-left ray to point +X and +Z, got %v", mirrored)
	}
}

func loadCornell(t *testing.T, width, height int) *scene.Scene {
	t.Helper()
	s, err := scene.Load("cornell", scene.BuildOptions{Width: width, Height: height})
	if err != nil {
		t.Fatalf("failed to load cornell scene: %v", err)
	}
	return s
}

func TestRender_ParallelMatchesSingleWorker(t *testing.T) {
	s := loadCornell(t, 16, 12)

	render := func(workers int) *Framebuffer {
		r, err := New(s, integrator.NewPathTracer(), Options{Workers: workers, Bands: 5, SamplesPerPixel: 2, Seed: 42})
		if err != nil {
			t.Fatal(err)
		}
		fb, _, err := r.Render(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return fb
	}

	single, parallel := render(1), render(4)
	for i := range single.Pixels {
		if single.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("pixel %d differs: single %v, parallel %v", i, single.Pixels[i], parallel.Pixels[i])
		}
	}
}

func TestRender_SeedChangesNoise(t *testing.T) {
	s := loadCornell(t, 8, 8)
	render := func(seed int64) *Framebuffer {
		r, err := New(s, integrator.NewPathTracer(), Options{Workers: 2, SamplesPerPixel: 1, Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		fb, _, err := r.Render(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return fb
	}

	a, b := render(1), render(2)
	same := true
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected different seeds to produce different noise")
	}
}

func TestRender_EmptySceneIsBackground(t *testing.T) {
	s := scene.New("empty", 7, 5)
	s.Background = core.NewVec3(0.1, 0.2, 0.3)
	s.Build()

	r, err := New(s, integrator.NewWhitted(), Options{Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	fb, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for i, p := range fb.Pixels {
		if p != s.Background {
			t.Fatalf("pixel %d: expected background %v, got %v", i, s.Background, p)
		}
	}
	if stats.TotalPixels != 35 || stats.TotalSamples != 35 {
		t.Errorf("expected 35 pixels and samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if len(stats.Bands) != 3 {
		t.Errorf("expected 3 band stats, got %d", len(stats.Bands))
	}
	if stats.Workers != 3 {
		t.Errorf("expected 3 workers, got %d", stats.Workers)
	}
	rows := 0
	for _, b := range stats.Bands {
		rows += b.Y1 - b.Y0
	}
	if rows != 5 {
		t.Errorf("bands cover %d rows, expected 5", rows)
	}
}

func TestRender_ProgressIsMonotonic(t *testing.T) {
	s := scene.New("progress", 4, 10)
	s.Build()

	var reported []float64
	sink := ProgressFunc(func(f float64) { reported = append(reported, f) })
	r, err := New(s, integrator.NewWhitted(), Options{Workers: 2, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(reported) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(reported); i++ {
		if reported[i] < reported[i-1] {
			t.Errorf("progress decreased: %v", reported)
		}
	}
	if last := reported[len(reported)-1]; last != 1 {
		t.Errorf("expected final progress 1, got %f", last)
	}
}

func TestRender_Cancelled(t *testing.T) {
	s := loadCornell(t, 8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := New(s, integrator.NewPathTracer(), Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	fb, _, err := r.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if fb != nil {
		t.Error("expected no framebuffer for a cancelled render")
	}
}

func TestNew_Validation(t *testing.T) {
	valid := scene.New("valid", 4, 4)
	badRR := scene.New("bad rr", 4, 4)
	badRR.RussianRoulette = 1

	tests := []struct {
		name  string
		scene *scene.Scene
		in    integrator.Integrator
		want  error
	}{
		{"zero width", scene.New("w", 0, 4), integrator.NewWhitted(), ErrInvalidDimensions},
		{"negative height", scene.New("h", 4, -1), integrator.NewWhitted(), ErrInvalidDimensions},
		{"nil scene", nil, integrator.NewWhitted(), ErrInvalidDimensions},
		{"nil integrator", valid, nil, ErrNoIntegrator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.scene, tt.in, Options{}); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := New(badRR, integrator.NewPathTracer(), Options{}); err == nil {
		t.Error("expected error for russian roulette probability 1")
	}
	if _, err := New(valid, integrator.NewPathTracer(), Options{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFramebuffer_WritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(1, 0.5, 0))
	fb.Set(1, 0, core.NewVec3(2, -1, 0.25))

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf, 1); err != nil {
		t.Fatal(err)
	}

	want := append([]byte("P6\n2 1\n255\n"), 255, 127, 0, 255, 0, 63)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, buf.Bytes())
	}
}

func TestFramebuffer_Gamma(t *testing.T) {
	tests := []struct {
		value float64
		gamma float64
		want  uint8
	}{
		{0, 0.6, 0},
		{1, 0.6, 255},
		{0.25, 0.5, 127},
		{math.NaN(), 0.6, 0},
		{-0.5, 0.6, 0},
	}
	for _, tt := range tests {
		if got := encodeChannel(tt.value, tt.gamma); got != tt.want {
			t.Errorf("encodeChannel(%v, %v) = %d, want %d", tt.value, tt.gamma, got, tt.want)
		}
	}

	fb := NewFramebuffer(1, 1)
	fb.Set(0, 0, core.NewVec3(1, 0.25, 0))
	img := fb.Image(0.5)
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 127 || c.B != 0 || c.A != 255 {
		t.Errorf("unexpected image pixel %v", c)
	}
}

func TestRender_WorkersCappedByBands(t *testing.T) {
	s := scene.New("empty", 4, 6)
	s.Build()

	r, err := New(s, integrator.NewWhitted(), Options{Workers: 8, Bands: 2})
	if err != nil {
		t.Fatal(err)
	}
	_, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Workers != 2 {
		t.Errorf("expected pool of 2 workers for 2 bands, got %d", stats.Workers)
	}
	if len(stats.Bands) != 2 {
		t.Errorf("expected 2 band stats, got %d", len(stats.Bands))
	}
}
