package entities

import "github.com/zooyer/dxfrw/core"

// Ellipse MajorAxis 为相对圆心的长轴端点，参数为弧度
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point
	Ratio      float64
	StartParam float64
	EndParam   float64
}

func init() {
	Register("ELLIPSE", func() Entity { return &Ellipse{BaseEntity: NewBase("ELLIPSE"), Ratio: 1} })
}

func (e *Ellipse) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch {
		case parsePoint(&e.Center, 10, t):
		case parsePoint(&e.MajorAxis, 11, t):
		case t.Code == 40:
			e.Ratio = t.AsFloat()
		case t.Code == 41:
			e.StartParam = t.AsFloat()
		case t.Code == 42:
			e.EndParam = t.AsFloat()
		default:
			e.parseCommon(t)
		}
	})
}

func (e *Ellipse) Encode(w *core.Writer) {
	e.encodeCommon(w)
	w.Subclass("AcDbEllipse")
	w.WritePoint(10, e.Center)
	w.WritePoint(11, e.MajorAxis)
	w.WriteFloat(40, e.Ratio)
	w.WriteFloat(41, e.StartParam)
	w.WriteFloat(42, e.EndParam)
}
