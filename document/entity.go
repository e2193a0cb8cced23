package document

import (
	"github.com/google/uuid"

	"github.com/zooyer/dxfrw/meta"
)

// Entity 文档中的几何/标注实体。实现仅限本包内的类型
type Entity interface {
	ID() uuid.UUID
	Layer() *Layer
	// Block 为 nil 表示模型空间
	Block() *Block
	// MetaInfo 为 nil 表示全部样式继承图层/块
	MetaInfo() *meta.Info
	Accept(v Visitor)
	base() *Base
}

// Visitor 每增加一种实体都要在这里加一个方法，所有实现都会因此编译失败直到补齐
type Visitor interface {
	VisitPoint(*Point)
	VisitLine(*Line)
	VisitCircle(*Circle)
	VisitArc(*Arc)
	VisitEllipse(*Ellipse)
	VisitSpline(*Spline)
	VisitText(*Text)
	VisitLWPolyline(*LWPolyline)
	VisitImage(*Image)
	VisitInsert(*Insert)
	VisitDimAligned(*DimAligned)
	VisitDimLinear(*DimLinear)
	VisitDimRadial(*DimRadial)
	VisitDimDiametric(*DimDiametric)
	VisitDimAngular(*DimAngular)
}

// Base 所有实体共有的属性
type Base struct {
	id    uuid.UUID
	layer *Layer
	block *Block
	info  *meta.Info
}

func NewBase(layer *Layer, block *Block, info *meta.Info) Base {
	return Base{id: uuid.New(), layer: layer, block: block, info: info}
}

func (b *Base) ID() uuid.UUID        { return b.id }
func (b *Base) Layer() *Layer        { return b.layer }
func (b *Base) Block() *Block        { return b.block }
func (b *Base) MetaInfo() *meta.Info { return b.info }
func (b *Base) base() *Base          { return b }
