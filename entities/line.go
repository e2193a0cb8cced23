package entities

import (
	"github.com/zooyer/dxfrw/core"
)

type Point struct {
	BaseEntity
	Location core.Point
}

type Line struct {
	BaseEntity
	Start, End core.Point
}

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

// Arc 起止角为角度制，DXF 中始终按逆时针解释
type Arc struct {
	Circle
	StartAngle float64
	EndAngle   float64
	IsCCW      bool
}

func init() {
	Register("POINT", func() Entity { return &Point{BaseEntity: NewBase("POINT")} })
	Register("LINE", func() Entity { return &Line{BaseEntity: NewBase("LINE")} })
	Register("CIRCLE", func() Entity { return &Circle{BaseEntity: NewBase("CIRCLE")} })
	Register("ARC", func() Entity { return NewArc() })
}

func NewArc() *Arc {
	return &Arc{Circle: Circle{BaseEntity: NewBase("ARC")}, IsCCW: true}
}

func (p *Point) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		if !parsePoint(&p.Location, 10, t) {
			p.parseCommon(t)
		}
	})
}

func (p *Point) Encode(w *core.Writer) {
	p.encodeCommon(w)
	w.Subclass("AcDbPoint")
	w.WritePoint(10, p.Location)
}

func (l *Line) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch {
		case parsePoint(&l.Start, 10, t):
		case parsePoint(&l.End, 11, t):
		default:
			l.parseCommon(t)
		}
	})
}

func (l *Line) Encode(w *core.Writer) {
	l.encodeCommon(w)
	w.Subclass("AcDbLine")
	w.WritePoint(10, l.Start)
	w.WritePoint(11, l.End)
}

func (c *Circle) parseCircle(t core.Tag) {
	switch {
	case parsePoint(&c.Center, 10, t):
	case t.Code == 40:
		c.Radius = t.AsFloat()
	default:
		c.parseCommon(t)
	}
}

func (c *Circle) encodeCircle(w *core.Writer) {
	c.encodeCommon(w)
	w.Subclass("AcDbCircle")
	w.WritePoint(10, c.Center)
	w.WriteFloat(40, c.Radius)
}

func (c *Circle) Parse(s *core.Scanner) error {
	return parseLoop(s, c.parseCircle)
}

func (c *Circle) Encode(w *core.Writer) {
	c.encodeCircle(w)
}

func (a *Arc) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		default:
			a.parseCircle(t)
		}
	})
}

func (a *Arc) Encode(w *core.Writer) {
	a.encodeCircle(w)
	w.Subclass("AcDbArc")
	w.WriteFloat(50, a.StartAngle)
	w.WriteFloat(51, a.EndAngle)
}
