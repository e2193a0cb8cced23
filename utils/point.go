package utils

import (
	"math"

	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/geo"
)

// TransformPoint 将局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p geo.Coordinate, ins *document.Insert) geo.Coordinate {
	cos, sin := math.Cos(ins.Rotation), math.Sin(ins.Rotation)

	// 1. 缩放（相对块基点）
	var base geo.Coordinate
	if ins.DisplayBlock != nil {
		base = ins.DisplayBlock.Base
	}
	local := p.Sub(base)
	tx := local.X * ins.Scale.X
	ty := local.Y * ins.Scale.Y
	tz := local.Z * ins.Scale.Z

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return geo.Coordinate{X: rx, Y: ry, Z: tz}.Add(ins.Position)
}
