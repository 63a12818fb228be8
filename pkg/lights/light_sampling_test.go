package lights

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

func TestAreaLightSampler_Empty(t *testing.T) {
	diffuse := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		material.NewDiffuse(core.NewVec3(1, 1, 1)))
	s := NewAreaLightSampler([]geometry.Primitive{diffuse})

	if s.Count() != 0 {
		t.Errorf("Expected no emitters, got %d", s.Count())
	}
	if _, ok := s.Sample(core.NewSeededSampler(1)); ok {
		t.Error("Expected no sample without emitters")
	}
}

func TestAreaLightSampler_AreaWeighted(t *testing.T) {
	light := material.NewEmissive(core.NewVec3(5, 5, 5))
	small := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), light)
	large := geometry.NewQuad(core.NewVec3(10, 0, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 1, 0), light)
	wall := geometry.NewQuad(core.NewVec3(0, 5, 0), core.NewVec3(9, 0, 0), core.NewVec3(0, 9, 0),
		material.NewDiffuse(core.NewVec3(1, 1, 1)))

	s := NewAreaLightSampler([]geometry.Primitive{small, wall, large})
	if s.Count() != 2 || s.TotalArea() != 4 {
		t.Fatalf("Expected 2 emitters with area 4, got %d and %v", s.Count(), s.TotalArea())
	}

	sampler := core.NewSeededSampler(12)
	const n = 20000
	onLarge := 0
	for i := 0; i < n; i++ {
		sample, ok := s.Sample(sampler)
		if !ok {
			t.Fatal("Expected a sample")
		}
		if sample.PDF != 0.25 {
			t.Fatalf("Expected pdf 1/4, got %v", sample.PDF)
		}
		if sample.Emission != core.NewVec3(5, 5, 5) {
			t.Fatalf("Expected emission (5,5,5), got %v", sample.Emission)
		}
		if sample.Point.X >= 10 {
			onLarge++
		}
	}

	if frac := float64(onLarge) / n; math.Abs(frac-0.75) > 0.02 {
		t.Errorf("Expected ~75%% of samples on the large light, got %v", frac)
	}
}
