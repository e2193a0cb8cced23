package geo

import "math"

// BBox 代表包围盒
type BBox struct {
	Min, Max Coordinate
}

// EmptyBBox 返回一个不包含任何点的包围盒，可用于 Extend 累加
func EmptyBBox() BBox {
	return BBox{
		Min: Coordinate{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Coordinate{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

func PointBBox(points ...Coordinate) BBox {
	box := EmptyBBox()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}

func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b BBox) Extend(p Coordinate) BBox {
	b.Min.X, b.Min.Y, b.Min.Z = math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)
	b.Max.X, b.Max.Y, b.Max.Z = math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)
	return b
}

func (b BBox) Merge(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Corners 返回 8 个角点
func (b BBox) Corners() []Coordinate {
	return []Coordinate{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

func (b BBox) Contains(p Coordinate) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
