package core

import (
	"math"
	"testing"
)

func TestSampleCosineHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	tests := []struct {
		name   string
		normal Vec3
	}{
		{"Up", NewVec3(0, 1, 0)},
		{"Along X", NewVec3(1, 0, 0)},
		{"Oblique", NewVec3(1, -2, 3).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				dir := SampleCosineHemisphere(tt.normal, sampler.Get2D())
				if math.Abs(dir.Length()-1) > 1e-9 {
					t.Fatalf("Expected unit direction, got length %v", dir.Length())
				}
				if dir.Dot(tt.normal) < 0 {
					t.Fatalf("Direction %v below the hemisphere", dir)
				}
			}
		})
	}
}

func TestSampleCosineHemisphereMean(t *testing.T) {
	// E[cos θ] under a cosine-weighted density is 2/3
	normal := NewVec3(0, 0, 1)
	sampler := NewSeededSampler(1)

	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += SampleCosineHemisphere(normal, sampler.Get2D()).Dot(normal)
	}
	if mean := sum / n; math.Abs(mean-2.0/3) > 0.02 {
		t.Errorf("Expected mean cosine near 2/3, got %v", mean)
	}
}

func TestSampleTriangle(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		b0, b1, b2 := SampleTriangle(sampler.Get2D())
		if b0 < 0 || b1 < 0 || b2 < 0 || math.Abs(b0+b1+b2-1) > 1e-12 {
			t.Fatalf("Invalid barycentrics (%v, %v, %v)", b0, b1, b2)
		}
	}
}
