package document

import (
	"math"

	"github.com/zooyer/dxfrw/geo"
)

type Point struct {
	Base
	Position geo.Coordinate
}

type Line struct {
	Base
	Start, End geo.Coordinate
}

type Circle struct {
	Base
	Center geo.Coordinate
	Radius float64
}

// Arc 角度为弧度
type Arc struct {
	Base
	Center     geo.Coordinate
	Radius     float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

// Ellipse MajorPoint 为相对圆心的长轴向量，Reversed 为 true 时顺时针
type Ellipse struct {
	Base
	Center      geo.Coordinate
	MajorPoint  geo.Coordinate
	MinorRadius float64
	StartAngle  float64
	EndAngle    float64
	Reversed    bool
}

func (e *Ellipse) MajorRadius() float64 { return e.MajorPoint.Magnitude() }

// Ratio 短轴与长轴之比
func (e *Ellipse) Ratio() float64 {
	major := e.MajorRadius()
	if major == 0 {
		return 0
	}
	return e.MinorRadius / major
}

// SplineFlag 组码 70 的位标志
type SplineFlag int

const (
	SplineClosed   SplineFlag = 1
	SplinePeriodic SplineFlag = 2
	SplineRational SplineFlag = 4
	SplinePlanar   SplineFlag = 8
	SplineLinear   SplineFlag = 16
)

type Spline struct {
	Base
	ControlPoints []geo.Coordinate
	Knots         []float64
	FitPoints     []geo.Coordinate
	Degree        int
	Closed        bool
	FitTolerance  float64
	StartTangent  geo.Coordinate
	EndTangent    geo.Coordinate
	Normal        geo.Coordinate
	Flags         SplineFlag
}

// DrawingDirection 文字生成标志
type DrawingDirection int

const (
	DirectionNone       DrawingDirection = 0
	DirectionBackward   DrawingDirection = 2
	DirectionUpsideDown DrawingDirection = 4
)

type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
	HAlignAligned
	HAlignMiddle
	HAlignFit
)

type VAlign int

const (
	VAlignBaseline VAlign = iota
	VAlignBottom
	VAlignMiddle
	VAlignTop
)

type Text struct {
	Base
	Insertion geo.Coordinate
	Text      string
	Height    float64
	Angle     float64
	Style     string
	Direction DrawingDirection
	HAlign    HAlign
	VAlign    VAlign
}

type LWVertex struct {
	Location   geo.Coordinate
	Bulge      float64
	StartWidth float64
	EndWidth   float64
}

type LWPolyline struct {
	Base
	Vertices  []LWVertex
	Width     float64
	Elevation float64
	Thickness float64
	Closed    bool
	Extrusion geo.Coordinate
}

// Image 光栅图像，Width/Height 为像素尺寸
type Image struct {
	Base
	Name       string
	Position   geo.Coordinate
	UVector    geo.Coordinate
	VVector    geo.Coordinate
	Width      float64
	Height     float64
	Brightness int
	Contrast   int
	Fade       int
}

// Insert 块参照。DisplayBlock 解析失败时为 nil，BlockName 保留原始名称以便之后修复
type Insert struct {
	Base
	Position     geo.Coordinate
	Scale        geo.Coordinate
	Rotation     float64
	DisplayBlock *Block
	BlockName    string
}

// Name 参照的块名
func (i *Insert) Name() string {
	if i.DisplayBlock != nil {
		return i.DisplayBlock.Name
	}
	return i.BlockName
}

func (p *Point) Accept(v Visitor)      { v.VisitPoint(p) }
func (l *Line) Accept(v Visitor)       { v.VisitLine(l) }
func (c *Circle) Accept(v Visitor)     { v.VisitCircle(c) }
func (a *Arc) Accept(v Visitor)        { v.VisitArc(a) }
func (e *Ellipse) Accept(v Visitor)    { v.VisitEllipse(e) }
func (s *Spline) Accept(v Visitor)     { v.VisitSpline(s) }
func (t *Text) Accept(v Visitor)       { v.VisitText(t) }
func (p *LWPolyline) Accept(v Visitor) { v.VisitLWPolyline(p) }
func (i *Image) Accept(v Visitor)      { v.VisitImage(i) }
func (i *Insert) Accept(v Visitor)     { v.VisitInsert(i) }

// NormalizeAngle 把弧度规范到 [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
