// Package geo 内部几何坐标
package geo

import (
	"math"

	"github.com/zooyer/golib/xmath"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinate 内部三维坐标，底层与 r3.Vec 相同，可以直接转换
type Coordinate struct {
	X, Y, Z float64
}

func (c Coordinate) Vec() r3.Vec { return r3.Vec(c) }

func FromVec(v r3.Vec) Coordinate { return Coordinate(v) }

func (c Coordinate) Add(o Coordinate) Coordinate { return FromVec(r3.Add(c.Vec(), o.Vec())) }

func (c Coordinate) Sub(o Coordinate) Coordinate { return FromVec(r3.Sub(c.Vec(), o.Vec())) }

func (c Coordinate) Scale(f float64) Coordinate { return FromVec(r3.Scale(f, c.Vec())) }

// Magnitude 向量长度
func (c Coordinate) Magnitude() float64 { return r3.Norm(c.Vec()) }

func (c Coordinate) DistanceTo(o Coordinate) float64 { return c.Sub(o).Magnitude() }

// Angle XY 平面内的方向角（弧度）
func (c Coordinate) Angle() float64 { return math.Atan2(c.Y, c.X) }

// Rotate 绕原点在 XY 平面内旋转
func (c Coordinate) Rotate(rad float64) Coordinate {
	sin, cos := math.Sincos(rad)
	return Coordinate{X: c.X*cos - c.Y*sin, Y: c.X*sin + c.Y*cos, Z: c.Z}
}

// Equal 按容差比较
func (c Coordinate) Equal(o Coordinate, epsilon float64) bool {
	return xmath.Equal(c.X, o.X, epsilon) && xmath.Equal(c.Y, o.Y, epsilon) && xmath.Equal(c.Z, o.Z, epsilon)
}
