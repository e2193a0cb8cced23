package document

import (
	"github.com/zooyer/dxfrw/geo"
	"github.com/zooyer/dxfrw/meta"
)

// Layer 图层，名称区分大小写且在文档内唯一
type Layer struct {
	Name        string
	Color       meta.Color
	LineWidth   meta.LineWidth
	LinePattern *meta.LinePattern
	Frozen      bool
}

func NewLayer(name string, width meta.LineWidth, color meta.Color) *Layer {
	return &Layer{Name: name, LineWidth: width, Color: color}
}

func (l *Layer) MetaName() string { return l.Name }

// Block 块定义。颜色、线宽、线型为 nil 时表示未覆盖
type Block struct {
	Name        string
	Base        geo.Coordinate
	Color       *meta.Color
	LineWidth   *meta.LineWidth
	LinePattern *meta.LinePattern
}

func NewBlock(name string, base geo.Coordinate) *Block {
	return &Block{Name: name, Base: base}
}

func (b *Block) MetaName() string { return b.Name }

// MetaData 可以通过 Builder 追加到文档的非实体对象
type MetaData interface {
	MetaName() string
}
