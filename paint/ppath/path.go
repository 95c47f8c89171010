// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath implements the boolean operations engine for 2D
// Bézier path regions: Unite, Intersect, Subtract, ExclusiveOr, Divide,
// and ResolveCrossings, operating on paths built from cubic Bézier
// segments with handles, in the style of paper.js's PathItem.Boolean.
//
// Geometric primitives (Vector2, Box2) come from the sibling geom
// package; curve-curve intersection is delegated to the intersect
// subpackage. Everything else — monotone decomposition, the
// intersection graph, winding propagation, contour tracing, and
// orientation fixing — lives here.
package ppath

import "github.com/cogentcore/pathbool/geom"

// FillRule selects how overlapping sub-paths of a CompoundPath combine
// to determine what is "inside" the region.
type FillRule int

const (
	// NonZero fills using the non-zero winding rule: a point is inside
	// if the sum of signed crossings of a ray from it is non-zero.
	NonZero FillRule = iota
	// EvenOdd fills using the even-odd rule: a point is inside if a ray
	// from it crosses the outline an odd number of times.
	EvenOdd
)

// Segment is a node on a Path: an anchor point plus two handle offsets,
// each relative to the anchor. The segment owns the cubic Bézier curve
// running from itself to its successor (Next). Segments form a doubly
// linked list; for a closed Path the list is circular.
//
// The unexported fields below exist only for the duration of a single
// boolean operation, on the private clone preparePath produces: they
// are never meaningful on a Path obtained any other way, and never
// escape the ppath package. This plays the role the design notes call
// a "parallel side-table keyed by segment id", just kept inline on the
// struct instead of in a separate map, since each operation clones its
// own disposable segments anyway and a map would only add an
// indirection with no encapsulation benefit in Go.
type Segment struct {
	Point     geom.Vector2
	HandleIn  geom.Vector2
	HandleOut geom.Vector2

	next, prev *Segment
	path       *Path

	intersection *CurveLocation
	winding      int
	windingSet   bool
	contour      bool
	visited      bool
}

// Next returns the segment following s, wrapping to the first segment
// of a closed path, or nil at the end of an open path.
func (s *Segment) Next() *Segment {
	if s.next != nil {
		return s.next
	}
	if s.path != nil && s.path.closed {
		return s.path.first
	}
	return nil
}

// Prev returns the segment preceding s, wrapping to the last segment
// of a closed path, or nil at the start of an open path.
func (s *Segment) Prev() *Segment {
	if s.prev != nil {
		return s.prev
	}
	if s.path != nil && s.path.closed {
		return s.path.last
	}
	return nil
}

// HasHandles reports whether s has a non-zero outgoing handle or its
// successor has a non-zero incoming handle, i.e. whether the curve
// from s is a true cubic rather than a straight line.
func (s *Segment) HasHandles() bool {
	return s.HandleOut != (geom.Vector2{}) || (s.Next() != nil && s.Next().HandleIn != (geom.Vector2{}))
}

// Path is an ordered, possibly-closed list of segments. The zero Path
// is empty and open.
type Path struct {
	first, last *Segment
	count       int
	closed      bool
	version     int
}

// NewPath returns an empty open path.
func NewPath() *Path { return &Path{} }

// Empty reports whether p has fewer than two segments (i.e. no curve).
func (p *Path) Empty() bool { return p.count < 2 }

// Closed reports whether p is closed.
func (p *Path) Closed() bool { return p.closed }

// Count returns the number of segments in p.
func (p *Path) Count() int { return p.count }

// FirstSegment returns the first segment of p, or nil if empty.
func (p *Path) FirstSegment() *Segment { return p.first }

// LastSegment returns the last segment of p, or nil if empty.
func (p *Path) LastSegment() *Segment { return p.last }

// Segments returns the segments of p in order, as a freshly allocated slice.
func (p *Path) Segments() []*Segment {
	out := make([]*Segment, 0, p.count)
	for s := p.first; s != nil; s = s.next {
		out = append(out, s)
	}
	return out
}

// add appends a new segment with the given anchor to p and returns it.
func (p *Path) add(pt geom.Vector2) *Segment {
	s := &Segment{Point: pt, path: p}
	if p.last == nil {
		p.first = s
	} else {
		p.last.next = s
		s.prev = p.last
	}
	p.last = s
	p.count++
	p.version++
	return s
}

// MoveTo starts p at (x, y) by appending its first segment. On a
// non-empty Path it appends a segment exactly as LineTo does; callers
// building compound regions should use separate Path values per sub-path.
func (p *Path) MoveTo(x, y float64) *Segment { return p.add(geom.Vec2(x, y)) }

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Segment { return p.add(geom.Vec2(x, y)) }

// CubeTo appends a segment reached by a cubic Bézier through the two
// given control points, setting handles on the previous and new segment.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) *Segment {
	c1, c2, pt := geom.Vec2(c1x, c1y), geom.Vec2(c2x, c2y), geom.Vec2(x, y)
	if p.last != nil {
		p.last.HandleOut = c1.Sub(p.last.Point)
	}
	s := p.add(pt)
	s.HandleIn = c2.Sub(pt)
	return s
}

// Close closes p, connecting the last segment back to the first via a
// (possibly curved) closing segment.
func (p *Path) Close() {
	p.closed = true
	p.version++
}

// InsertAfter splices a new segment with anchor pt immediately after s,
// returning the new segment. s must belong to p.
func (p *Path) InsertAfter(s *Segment, pt geom.Vector2) *Segment {
	n := &Segment{Point: pt, path: p, next: s.next, prev: s}
	if s.next != nil {
		s.next.prev = n
	} else {
		p.last = n
	}
	s.next = n
	p.count++
	p.version++
	return n
}

// Clone returns a deep, independent copy of p: new Segment values with
// no shared pointers to the original, engine-only fields zeroed. A
// hand-rolled clone is used (rather than a reflection-based deep-copy
// library) because Path is a cyclic structure for closed paths, which
// generic copiers do not traverse correctly.
func (p *Path) Clone() *Path {
	np := &Path{closed: p.closed}
	segs := p.Segments()
	news := make([]*Segment, len(segs))
	for i, s := range segs {
		news[i] = &Segment{Point: s.Point, HandleIn: s.HandleIn, HandleOut: s.HandleOut, path: np}
	}
	for i, n := range news {
		if i > 0 {
			n.prev = news[i-1]
		}
		if i < len(news)-1 {
			n.next = news[i+1]
		}
	}
	if len(news) > 0 {
		np.first, np.last = news[0], news[len(news)-1]
	}
	np.count = len(news)
	return np
}

// Reverse reverses the direction of p in place: segment order is
// flipped and each segment's incoming/outgoing handles are swapped.
func (p *Path) Reverse() {
	segs := p.Segments()
	n := len(segs)
	if n == 0 {
		return
	}
	for _, s := range segs {
		s.HandleIn, s.HandleOut = s.HandleOut, s.HandleIn
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	for i, s := range segs {
		s.prev, s.next = nil, nil
		if i > 0 {
			s.prev = segs[i-1]
		}
		if i < n-1 {
			s.next = segs[i+1]
		}
	}
	p.first, p.last = segs[0], segs[n-1]
	p.version++
}

// Curves returns the curves of p in order: count-1 for an open path,
// count for a closed one (the closing curve last).
func (p *Path) Curves() []Curve {
	out := make([]Curve, 0, p.count)
	for s := p.first; s != nil; s = s.next {
		n := s.Next()
		if n == nil {
			break
		}
		out = append(out, Curve{s, n})
		if n == p.first {
			break
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of p's control polygon
// handles included, which always contains the true curve bounds.
func (p *Path) Bounds() geom.Box2 {
	b := geom.BoxEmpty()
	for s := p.first; s != nil; s = s.next {
		b = b.ExpandByPoint(s.Point)
		b = b.ExpandByPoint(s.Point.Add(s.HandleIn))
		b = b.ExpandByPoint(s.Point.Add(s.HandleOut))
		if s == p.last {
			break
		}
	}
	return b
}

// Area returns the signed area of p (shoelace formula generalized to
// cubic curves via their exact polynomial integral); positive for
// clockwise paths, negative for counter-clockwise, in the y-down screen
// convention used throughout.
func (p *Path) Area() float64 {
	area := 0.0
	for _, c := range p.Curves() {
		area += c.area()
	}
	return area
}

// IsClockwise reports whether p has clockwise orientation (positive
// signed area in the standard y-down screen convention used throughout).
func (p *Path) IsClockwise() bool { return p.Area() > 0 }

// SetClockwise sets p's orientation, reversing it only if needed.
func (p *Path) SetClockwise(cw bool) {
	if p.IsClockwise() != cw {
		p.Reverse()
	}
}

// Contains reports whether pt is inside p under the non-zero rule,
// using the same ray-cast winding query the engine uses internally.
func (p *Path) Contains(pt geom.Vector2) bool {
	w, onContour := getWinding(pt, globalMonotoneCurves([]*Path{p}), false)
	return w != 0 || onContour
}

// CompoundPath is an ordered list of child Paths sharing a fill rule.
type CompoundPath struct {
	Children []*Path
	Fill     FillRule
}

// NewCompoundPath returns a CompoundPath with the given children and
// fill rule.
func NewCompoundPath(fill FillRule, children ...*Path) *CompoundPath {
	return &CompoundPath{Children: children, Fill: fill}
}

// Bounds returns the union of all children's bounds.
func (cp *CompoundPath) Bounds() geom.Box2 {
	b := geom.BoxEmpty()
	for _, c := range cp.Children {
		b = b.Union(c.Bounds())
	}
	return b
}

// Area returns the sum of the children's signed areas.
func (cp *CompoundPath) Area() float64 {
	a := 0.0
	for _, c := range cp.Children {
		a += c.Area()
	}
	return a
}

// PathItem is implemented by both Path and CompoundPath: it is the
// operand and result type of every boolean operation in this package.
type PathItem interface {
	paths() []*Path
	Bounds() geom.Box2
	Area() float64
}

func (p *Path) paths() []*Path { return []*Path{p} }

func (cp *CompoundPath) paths() []*Path { return cp.Children }

// AsCompound normalizes any PathItem to a *CompoundPath, the form the
// engine's internals operate on uniformly.
func AsCompound(item PathItem) *CompoundPath {
	if cp, ok := item.(*CompoundPath); ok {
		return cp
	}
	return &CompoundPath{Children: item.paths(), Fill: NonZero}
}

// simplifyResult collapses a single-child CompoundPath back down to a
// plain *Path, whatever the shape of the operands was; a multi-child
// (or empty) result stays a *CompoundPath.
func simplifyResult(cp *CompoundPath) PathItem {
	if len(cp.Children) == 1 {
		return cp.Children[0]
	}
	return cp
}
