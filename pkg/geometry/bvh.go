package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
)

// noChild marks the child handles of a leaf node
const noChild = -1

// BVHNode is an entry of the BVH node arena. A leaf holds exactly one
// primitive; an internal node holds two child handles and the axis it was
// split on. Bounds of an internal node are the union of its children's.
type BVHNode struct {
	Bounds      core.AABB
	Left, Right int
	Axis        core.Axis
	Primitive   Primitive
}

// IsLeaf reports whether the node holds a primitive
func (n *BVHNode) IsLeaf() bool {
	return n.Left == noChild
}

// BVH is a bounding volume hierarchy over primitives. Nodes live in a single
// arena and refer to each other by index; the tree is immutable once built
// and safe for concurrent queries.
type BVH struct {
	nodes []BVHNode
	root  int
	count int
}

// NewBVH builds a hierarchy over prims with equal-count splits along the
// axis of greatest centroid extent. The input slice is not modified.
func NewBVH(prims []Primitive) *BVH {
	bvh := &BVH{root: noChild, count: len(prims)}
	if len(prims) == 0 {
		return bvh
	}

	work := make([]Primitive, len(prims))
	copy(work, prims)
	bvh.nodes = make([]BVHNode, 0, 2*len(prims)-1)
	bvh.root = bvh.build(work)

	return bvh
}

// build appends the subtree for prims to the arena bottom-up and returns
// the handle of its root
func (b *BVH) build(prims []Primitive) int {
	switch len(prims) {
	case 0:
		return noChild
	case 1:
		return b.leaf(prims[0])
	case 2:
		left := b.leaf(prims[0])
		right := b.leaf(prims[1])
		return b.interior(left, right, centroidAxis(prims))
	}

	axis := centroidAxis(prims)

	sort.Slice(prims, func(i, j int) bool {
		return prims[i].BoundingBox().Centroid().Axis(axis) < prims[j].BoundingBox().Centroid().Axis(axis)
	})

	mid := len(prims) / 2
	left := b.build(prims[:mid])
	right := b.build(prims[mid:])
	return b.interior(left, right, axis)
}

// centroidAxis returns the axis of greatest extent of the primitives' centroids
func centroidAxis(prims []Primitive) core.Axis {
	centroids := core.NewEmptyAABB()
	for _, p := range prims {
		centroids = centroids.UnionPoint(p.BoundingBox().Centroid())
	}
	return centroids.MaxExtent()
}

func (b *BVH) leaf(p Primitive) int {
	b.nodes = append(b.nodes, BVHNode{
		Bounds:    p.BoundingBox(),
		Left:      noChild,
		Right:     noChild,
		Primitive: p,
	})
	return len(b.nodes) - 1
}

func (b *BVH) interior(left, right int, axis core.Axis) int {
	b.nodes = append(b.nodes, BVHNode{
		Bounds: b.nodes[left].Bounds.Union(b.nodes[right].Bounds),
		Left:   left,
		Right:  right,
		Axis:   axis,
	})
	return len(b.nodes) - 1
}

// Intersect returns the nearest hit over all primitives, or a miss
func (b *BVH) Intersect(ray core.Ray, cull CullMode) Intersection {
	if b.root == noChild {
		return Miss()
	}
	return b.intersectNode(b.root, ray, cull)
}

func (b *BVH) intersectNode(index int, ray core.Ray, cull CullMode) Intersection {
	node := &b.nodes[index]
	if !node.Bounds.IntersectP(ray) {
		return Miss()
	}
	if node.IsLeaf() {
		return node.Primitive.Intersect(ray, cull)
	}

	// Visit the child on the ray's near side of the split axis first
	first, second := node.Left, node.Right
	if ray.DirIsNeg[node.Axis] {
		first, second = second, first
	}
	hit1 := b.intersectNode(first, ray, cull)
	hit2 := b.intersectNode(second, ray, cull)
	return Closer(hit1, hit2)
}

// Bounds returns the bounds of the whole hierarchy
func (b *BVH) Bounds() core.AABB {
	if b.root == noChild {
		return core.NewEmptyAABB()
	}
	return b.nodes[b.root].Bounds
}

// Len returns the number of primitives in the hierarchy
func (b *BVH) Len() int {
	return b.count
}

// Root returns the handle of the root node, -1 for an empty hierarchy
func (b *BVH) Root() int {
	return b.root
}

// Node returns the node with the given handle
func (b *BVH) Node(handle int) *BVHNode {
	return &b.nodes[handle]
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	AvgDepth   float64 // average leaf depth
	Primitives int
}

// Stats walks the hierarchy and collects node and depth counts
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{Primitives: b.count}
	if b.root == noChild {
		return stats
	}

	depthSum := 0
	var walk func(index, depth int)
	walk = func(index, depth int) {
		node := &b.nodes[index]
		stats.TotalNodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if node.IsLeaf() {
			stats.LeafNodes++
			depthSum += depth
			return
		}
		walk(node.Left, depth+1)
		walk(node.Right, depth+1)
	}
	walk(b.root, 0)

	stats.AvgDepth = float64(depthSum) / float64(stats.LeafNodes)
	return stats
}
