package dxfrw

import (
	"math"

	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/geo"
)

func coord(p core.Point) geo.Coordinate {
	return geo.Coordinate{X: p.X, Y: p.Y, Z: p.Z}
}

func coords(points []core.Point) []geo.Coordinate {
	if points == nil {
		return nil
	}
	list := make([]geo.Coordinate, len(points))
	for i, p := range points {
		list[i] = coord(p)
	}
	return list
}

func toPoint(c geo.Coordinate) core.Point {
	return core.Point{X: c.X, Y: c.Y, Z: c.Z}
}

func toPoints(list []geo.Coordinate) []core.Point {
	if list == nil {
		return nil
	}
	points := make([]core.Point, len(list))
	for i, c := range list {
		points[i] = toPoint(c)
	}
	return points
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// trimKnots 去掉首尾两个节点，少于两个时原样返回
func trimKnots(knots []float64) []float64 {
	if len(knots) < 2 {
		return knots
	}
	return append([]float64(nil), knots[1:len(knots)-1]...)
}

// padKnots trimKnots 的逆操作：重复首尾节点，空列表原样返回
func padKnots(knots []float64) []float64 {
	if len(knots) == 0 {
		return knots
	}
	list := make([]float64, 0, len(knots)+2)
	list = append(list, knots[0])
	list = append(list, knots...)
	return append(list, knots[len(knots)-1])
}
