package core

import "math"

// AABB represents an axis-aligned bounding box. The zero-extent empty box
// returned by NewEmptyAABB is the identity for Union.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewEmptyAABB returns a box with Min = +inf and Max = -inf on every axis
func NewEmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABB creates a box spanning two corner points given in any order
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := NewEmptyAABB()
	for _, p := range points {
		box = box.UnionPoint(p)
	}
	return box
}

// IsEmpty reports whether the box has never been grown
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// UnionPoint returns an AABB grown to include p
func (b AABB) UnionPoint(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Diagonal returns the extent of the box along each axis
func (b AABB) Diagonal() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Centroid returns the center point of the AABB
func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// SurfaceArea returns 2(xy+xz+yz) of the diagonal, zero for an empty box
func (b AABB) SurfaceArea() float64 {
	if b.IsEmpty() {
		return 0
	}
	d := b.Diagonal()
	return 2.0 * (d.X*d.Y + d.X*d.Z + d.Y*d.Z)
}

// MaxExtent returns the axis with the largest diagonal component
func (b AABB) MaxExtent() Axis {
	d := b.Diagonal()
	if d.X > d.Y && d.X > d.Z {
		return AxisX
	}
	if d.Y > d.Z {
		return AxisY
	}
	return AxisZ
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether two boxes share any point
func (b AABB) Overlaps(other AABB) bool {
	return b.Max.X >= other.Min.X && b.Min.X <= other.Max.X &&
		b.Max.Y >= other.Min.Y && b.Min.Y <= other.Max.Y &&
		b.Max.Z >= other.Min.Z && b.Min.Z <= other.Max.Z
}

// Offset returns the position of p relative to the box corners, 0 at Min
// and 1 at Max on each axis with non-zero extent
func (b AABB) Offset(p Vec3) Vec3 {
	o := p.Subtract(b.Min)
	if b.Max.X > b.Min.X {
		o.X /= b.Max.X - b.Min.X
	}
	if b.Max.Y > b.Min.Y {
		o.Y /= b.Max.Y - b.Min.Y
	}
	if b.Max.Z > b.Min.Z {
		o.Z /= b.Max.Z - b.Min.Z
	}
	return o
}

// IntersectP tests the ray against the box with the slab method, using the
// ray's cached reciprocal direction and sign flags. It reports whether the
// interval [tEnter, tExit] is non-empty with tExit >= 0.
func (b AABB) IntersectP(ray Ray) bool {
	if b.IsEmpty() {
		return false
	}
	if b.Contains(ray.Origin) {
		return true
	}

	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	for axis := AxisX; axis <= AxisZ; axis++ {
		lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		inv := ray.InvDir.Axis(axis)
		if ray.DirIsNeg[axis] {
			lo, hi = hi, lo
		}

		tNear := (lo - origin) * inv
		tFar := (hi - origin) * inv

		// A zero direction component yields an infinite or NaN far plane;
		// the axis then only constrains the origin.
		if math.IsInf(tFar, 0) || math.IsNaN(tFar) || math.IsNaN(tNear) {
			if origin < b.Min.Axis(axis) || origin > b.Max.Axis(axis) {
				return false
			}
			continue
		}

		tEnter = math.Max(tEnter, tNear)
		tExit = math.Min(tExit, tFar)
		if tEnter > tExit {
			return false
		}
	}

	return tExit >= 0
}
