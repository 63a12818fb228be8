package core

import (
	"math"
	"math/rand"
	"testing"
)

func randomBox(random *rand.Rand) AABB {
	p := func() Vec3 {
		return NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	}
	return NewAABB(p(), p())
}

func TestAABB_UnionProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		b1 := randomBox(random)
		b2 := randomBox(random)
		u := b1.Union(b2)

		for _, corner := range []Vec3{b1.Min, b1.Max, b2.Min, b2.Max} {
			if !u.Contains(corner) {
				t.Fatalf("Union %v does not contain corner %v", u, corner)
			}
		}
		if u.SurfaceArea() < math.Max(b1.SurfaceArea(), b2.SurfaceArea()) {
			t.Errorf("Union surface area %v smaller than inputs %v, %v",
				u.SurfaceArea(), b1.SurfaceArea(), b2.SurfaceArea())
		}
	}
}

func TestAABB_EmptyIsUnionIdentity(t *testing.T) {
	box := NewAABB(NewVec3(-1, 0, 2), NewVec3(3, 4, 5))

	if got := NewEmptyAABB().Union(box); got != box {
		t.Errorf("Expected %v, got %v", box, got)
	}
	if got := box.Union(NewEmptyAABB()); got != box {
		t.Errorf("Expected %v, got %v", box, got)
	}
	if !NewEmptyAABB().IsEmpty() {
		t.Error("Expected empty box to report IsEmpty")
	}
	if sa := NewEmptyAABB().SurfaceArea(); sa != 0 {
		t.Errorf("Expected zero surface area for empty box, got %v", sa)
	}
}

func TestAABB_Measures(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 2, 3))

	if sa := box.SurfaceArea(); sa != 22 {
		t.Errorf("Expected surface area 22, got %v", sa)
	}
	if axis := box.MaxExtent(); axis != AxisZ {
		t.Errorf("Expected max extent Z, got %v", axis)
	}
	if c := box.Centroid(); c != NewVec3(0.5, 1, 1.5) {
		t.Errorf("Expected centroid (0.5,1,1.5), got %v", c)
	}
	if o := box.Offset(NewVec3(0.5, 1, 3)); o != NewVec3(0.5, 0.5, 1) {
		t.Errorf("Expected offset (0.5,0.5,1), got %v", o)
	}
}

func TestAABB_Overlaps(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		other    AABB
		expected bool
	}{
		{"Overlapping", NewAABB(NewVec3(0.5, 0.5, 0.5), NewVec3(2, 2, 2)), true},
		{"Touching", NewAABB(NewVec3(1, 0, 0), NewVec3(2, 1, 1)), true},
		{"Disjoint", NewAABB(NewVec3(1.5, 0, 0), NewVec3(2, 1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_IntersectP(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"Head on", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"Pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"Miss to the side", NewRay(NewVec3(3, 0, 5), NewVec3(0, 0, -1)), false},
		{"Diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"Axis parallel outside slab", NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)), false},
		{"Two zero components", NewRay(NewVec3(0.5, 0.5, -3), NewVec3(0, 0, 1)), true},
		{"Grazing face plane", NewRay(NewVec3(1, 0, 5), NewVec3(0, 0, -1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.IntersectP(tt.ray); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_IntersectPFromInside(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		origin := NewVec3(random.Float64()*1.8-0.9, random.Float64()*1.8-0.9, random.Float64()*1.8-0.9)
		dir := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if !box.IntersectP(NewRay(origin, dir)) {
			t.Fatalf("Expected hit from inside origin %v dir %v", origin, dir)
		}
	}
}

func TestAABB_IntersectPEmpty(t *testing.T) {
	if NewEmptyAABB().IntersectP(NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))) {
		t.Error("Expected empty box never to be hit")
	}
}
