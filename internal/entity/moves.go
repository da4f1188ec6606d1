package entity

import "strings"

// MoveSet is a set of unique points that remembers insertion order.
type MoveSet struct {
	order []Point
	index map[Point]struct{}
}

func NewMoveSet() *MoveSet {
	return &MoveSet{
		index: make(map[Point]struct{}),
	}
}

// Add inserts point. Adding a point that is already present is a no-op.
func (that *MoveSet) Add(point Point) {
	if that.index == nil {
		that.index = make(map[Point]struct{})
	}

	if _, ok := that.index[point]; ok {
		return
	}

	that.order = append(that.order, point)
	that.index[point] = struct{}{}
}

func (that *MoveSet) Contains(point Point) bool {
	_, ok := that.index[point]
	return ok
}

// Last returns the most recently added point.
func (that *MoveSet) Last() (Point, bool) {
	if len(that.order) == 0 {
		return Point{}, false
	}

	return that.order[len(that.order)-1], true
}

// RemoveLast drops the most recently added point.
func (that *MoveSet) RemoveLast() (Point, bool) {
	last, ok := that.Last()
	if !ok {
		return Point{}, false
	}

	that.order = that.order[:len(that.order)-1]
	delete(that.index, last)

	return last, true
}

func (that *MoveSet) Len() int {
	return len(that.order)
}

// Points returns a copy of the points in insertion order.
func (that *MoveSet) Points() []Point {
	points := make([]Point, len(that.order))
	copy(points, that.order)

	return points
}

func (that *MoveSet) String() string {
	parts := make([]string, 0, len(that.order))
	for _, point := range that.order {
		parts = append(parts, point.String())
	}

	return strings.Join(parts, ",")
}
