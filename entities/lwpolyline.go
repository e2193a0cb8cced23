package entities

import (
	"github.com/zooyer/dxfrw/core"
)

type Vertex2D struct {
	X, Y       float64
	StartWidth float64
	EndWidth   float64
	Bulge      float64
}

type LWPolyline struct {
	BaseEntity
	Vertices  []Vertex2D
	Flags     int
	Width     float64
	Elevation float64
	Thickness float64
	Extrusion core.Point
}

func init() {
	Register("LWPOLYLINE", func() Entity {
		return &LWPolyline{BaseEntity: NewBase("LWPOLYLINE"), Extrusion: core.Point{Z: 1}}
	})
}

// Closed 组码 70 第 1 位
func (l *LWPolyline) Closed() bool { return l.Flags&0x01 != 0 }

func (l *LWPolyline) last() *Vertex2D {
	if len(l.Vertices) == 0 {
		return &Vertex2D{}
	}
	return &l.Vertices[len(l.Vertices)-1]
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 10:
			l.Vertices = append(l.Vertices, Vertex2D{X: t.AsFloat()})
		case 20:
			l.last().Y = t.AsFloat()
		case 40:
			l.last().StartWidth = t.AsFloat()
		case 41:
			l.last().EndWidth = t.AsFloat()
		case 42:
			l.last().Bulge = t.AsFloat()
		case 70:
			l.Flags = t.AsInt()
		case 43:
			l.Width = t.AsFloat()
		case 38:
			l.Elevation = t.AsFloat()
		case 39:
			l.Thickness = t.AsFloat()
		case 90:
			// 顶点数由列表长度决定
		default:
			if !parsePoint(&l.Extrusion, 210, t) {
				l.parseCommon(t)
			}
		}
	})
}

func (l *LWPolyline) Encode(w *core.Writer) {
	l.encodeCommon(w)
	w.Subclass("AcDbPolyline")
	w.WriteInt(90, len(l.Vertices))
	w.WriteInt(70, l.Flags)
	if l.Width != 0 {
		w.WriteFloat(43, l.Width)
	}
	if l.Elevation != 0 {
		w.WriteFloat(38, l.Elevation)
	}
	if l.Thickness != 0 {
		w.WriteFloat(39, l.Thickness)
	}
	for _, v := range l.Vertices {
		w.WriteFloat(10, v.X)
		w.WriteFloat(20, v.Y)
		if v.StartWidth != 0 || v.EndWidth != 0 {
			w.WriteFloat(40, v.StartWidth)
			w.WriteFloat(41, v.EndWidth)
		}
		if v.Bulge != 0 {
			w.WriteFloat(42, v.Bulge)
		}
	}
	if l.Extrusion != (core.Point{Z: 1}) && l.Extrusion != (core.Point{}) {
		w.WritePoint(210, l.Extrusion)
	}
}
