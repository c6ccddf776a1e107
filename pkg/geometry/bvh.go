package geometry

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Every node has exactly two children; a node built from a single object
// holds that object on both sides.
type BVHNode struct {
	Left  Hitable
	Right Hitable
	Box   core.AABB
}

// bvhItem pairs an object with its precomputed bounding box
type bvhItem struct {
	object Hitable
	box    core.AABB
}

// Slices at least this long are split across goroutines by NewBVHNodeParallel
const parallelBuildThreshold = 4096

// NewBVH builds a BVH over objects using a fresh sampler seeded with seed
func NewBVH(objects []Hitable, time0, time1 float64, seed int64) (*BVHNode, error) {
	return NewBVHNode(objects, time0, time1, core.NewSeededSampler(seed))
}

// NewBVHNode builds a BVH over objects for the shutter interval [time0, time1].
// At every level it picks a random axis, sorts by box minimum along that axis
// and splits the list in half. The caller's slice is not modified.
func NewBVHNode(objects []Hitable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	items, err := collectBoxes(objects, time0, time1)
	if err != nil {
		return nil, err
	}
	return buildBVH(items, sampler), nil
}

// NewBVHNodeParallel builds the same kind of tree as NewBVHNode, fanning large
// subtrees out to goroutines. Each goroutine gets its own sampler seeded from
// the parent, so the tree differs from a sequential build with the same seed.
func NewBVHNodeParallel(objects []Hitable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	items, err := collectBoxes(objects, time0, time1)
	if err != nil {
		return nil, err
	}
	return buildBVHParallel(items, sampler), nil
}

func collectBoxes(objects []Hitable, time0, time1 float64) ([]bvhItem, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	items := make([]bvhItem, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		items[i] = bvhItem{object: object, box: box}
	}
	return items, nil
}

// splitItems sorts items along a random axis and returns the two halves
func splitItems(items []bvhItem, sampler core.Sampler) ([]bvhItem, []bvhItem) {
	axis := int(3 * sampler.Get1D())
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})
	mid := len(items) / 2
	return items[:mid], items[mid:]
}

// buildBVH recursively builds the tree over items
func buildBVH(items []bvhItem, sampler core.Sampler) *BVHNode {
	left, right := splitItems(items, sampler)

	switch len(items) {
	case 1:
		return newBVHNode(items[0], items[0])
	case 2:
		return newBVHNode(left[0], right[0])
	}

	return newBVHNode(nodeItem(buildBVH(left, sampler)), nodeItem(buildBVH(right, sampler)))
}

func buildBVHParallel(items []bvhItem, sampler core.Sampler) *BVHNode {
	if len(items) < parallelBuildThreshold {
		return buildBVH(items, sampler)
	}

	left, right := splitItems(items, sampler)
	leftSampler := core.NewSeededSampler(int64(sampler.Get1D() * math.MaxInt64))
	rightSampler := core.NewSeededSampler(int64(sampler.Get1D() * math.MaxInt64))

	var leftNode, rightNode *BVHNode
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		leftNode = buildBVHParallel(left, leftSampler)
	}()
	go func() {
		defer wg.Done()
		rightNode = buildBVHParallel(right, rightSampler)
	}()
	wg.Wait()

	return newBVHNode(nodeItem(leftNode), nodeItem(rightNode))
}

func newBVHNode(left, right bvhItem) *BVHNode {
	return &BVHNode{
		Left:  left.object,
		Right: right.object,
		Box:   left.box.Union(right.box),
	}
}

func nodeItem(node *BVHNode) bvhItem {
	return bvhItem{object: node, box: node.Box}
}

// Hit tests the cached box and then both children over the full range,
// keeping the nearer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return material.HitRecord{}, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler)

	switch {
	case hitLeft && hitRight:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case hitLeft:
		return leftHit, true
	case hitRight:
		return rightHit, true
	}
	return material.HitRecord{}, false
}

// BoundingBox returns the box cached at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

func (*BVHNode) isHitable() {}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int       // Interior BVH nodes
	Leaves     int       // Distinct non-BVH children
	MaxDepth   int       // Deepest leaf, the root being depth 0
	AvgDepth   float64   // Mean leaf depth
	Bounds     core.AABB // Box of the root node
}

// Stats walks the tree and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{Bounds: n.Box}
	n.collectStats(0, &stats)

	if stats.Leaves > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Leaves)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	children := []Hitable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.Leaves++
		stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
