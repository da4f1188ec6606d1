package entity

import "fmt"

// Point is a board cell. X is the row, Y is the column.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point shifted by delta.
func (that Point) Add(delta Point) Point {
	return Point{X: that.X + delta.X, Y: that.Y + delta.Y}
}

func (that Point) String() string {
	return fmt.Sprintf("{%d,%d}", that.X, that.Y)
}
