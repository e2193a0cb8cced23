package document

import "github.com/zooyer/dxfrw/geo"

// AttachmentPoint 标注文字的对齐点 (1..9)
type AttachmentPoint int

const (
	TopLeft AttachmentPoint = iota + 1
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

type LineSpacingStyle int

const (
	AtLeast LineSpacingStyle = iota + 1
	Exact
)

// Dimension 各类标注共有的部分
type Dimension struct {
	DefinitionPoint   geo.Coordinate
	MiddleOfText      geo.Coordinate
	Attachment        AttachmentPoint
	TextAngle         float64
	LineSpacingFactor float64
	LineSpacingStyle  LineSpacingStyle
	Explicit          string
}

type DimAligned struct {
	Base
	Dimension
	DefinitionPoint2 geo.Coordinate
	DefinitionPoint3 geo.Coordinate
}

type DimLinear struct {
	Base
	Dimension
	DefinitionPoint2 geo.Coordinate
	DefinitionPoint3 geo.Coordinate
	Angle            float64
	Oblique          float64
}

type DimRadial struct {
	Base
	Dimension
	DefinitionPoint2 geo.Coordinate
	Leader           float64
}

type DimDiametric struct {
	Base
	Dimension
	DefinitionPoint2 geo.Coordinate
	Leader           float64
}

type DimAngular struct {
	Base
	Dimension
	DefLine11 geo.Coordinate
	DefLine12 geo.Coordinate
	DefLine21 geo.Coordinate
	DefLine22 geo.Coordinate
}

func (d *DimAligned) Accept(v Visitor)   { v.VisitDimAligned(d) }
func (d *DimLinear) Accept(v Visitor)    { v.VisitDimLinear(d) }
func (d *DimRadial) Accept(v Visitor)    { v.VisitDimRadial(d) }
func (d *DimDiametric) Accept(v Visitor) { v.VisitDimDiametric(d) }
func (d *DimAngular) Accept(v Visitor)   { v.VisitDimAngular(d) }
