package utils

import (
	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/geo"
)

// CombineInserts 合并嵌套块的变换：子块先做自己的变换，再做父块的变换
func CombineInserts(parent, child *document.Insert) *document.Insert {
	// 1. 旋转叠加
	combinedRotation := parent.Rotation + child.Rotation

	// 2. 缩放叠加
	combinedScale := geo.Coordinate{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}

	// 3. 插入点叠加：子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
	combinedPosition := TransformPoint(child.Position, parent)

	return &document.Insert{
		DisplayBlock: child.DisplayBlock,
		BlockName:    child.Name(),
		Rotation:     combinedRotation,
		Scale:        combinedScale,
		Position:     combinedPosition,
	}
}
