package entities

import "github.com/zooyer/dxfrw/core"

type Spline struct {
	BaseEntity
	Normal       core.Point
	StartTangent core.Point
	EndTangent   core.Point
	Flags        int
	Degree       int
	KnotTol      float64
	ControlTol   float64
	FitTol       float64
	Knots        []float64
	Weights      []float64
	Controls     []core.Point
	Fits         []core.Point
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: NewBase("SPLINE"), Normal: core.Point{Z: 1}} })
}

func (sp *Spline) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 10:
			sp.Controls = append(sp.Controls, core.Point{X: t.AsFloat()})
		case 20, 30:
			if n := len(sp.Controls); n > 0 {
				parsePoint(&sp.Controls[n-1], 10, t)
			}
		case 11:
			sp.Fits = append(sp.Fits, core.Point{X: t.AsFloat()})
		case 21, 31:
			if n := len(sp.Fits); n > 0 {
				parsePoint(&sp.Fits[n-1], 11, t)
			}
		case 40:
			sp.Knots = append(sp.Knots, t.AsFloat())
		case 41:
			sp.Weights = append(sp.Weights, t.AsFloat())
		case 70:
			sp.Flags = t.AsInt()
		case 71:
			sp.Degree = t.AsInt()
		case 42:
			sp.KnotTol = t.AsFloat()
		case 43:
			sp.ControlTol = t.AsFloat()
		case 44:
			sp.FitTol = t.AsFloat()
		case 72, 73, 74:
			// 数量由列表长度决定
		default:
			switch {
			case parsePoint(&sp.StartTangent, 12, t):
			case parsePoint(&sp.EndTangent, 13, t):
			case parsePoint(&sp.Normal, 210, t):
			default:
				sp.parseCommon(t)
			}
		}
	})
}

func (sp *Spline) Encode(w *core.Writer) {
	sp.encodeCommon(w)
	w.Subclass("AcDbSpline")
	w.WritePoint(210, sp.Normal)
	w.WriteInt(70, sp.Flags)
	w.WriteInt(71, sp.Degree)
	w.WriteInt(72, len(sp.Knots))
	w.WriteInt(73, len(sp.Controls))
	w.WriteInt(74, len(sp.Fits))
	w.WriteFloat(42, sp.KnotTol)
	w.WriteFloat(43, sp.ControlTol)
	w.WriteFloat(44, sp.FitTol)
	if sp.StartTangent != (core.Point{}) {
		w.WritePoint(12, sp.StartTangent)
	}
	if sp.EndTangent != (core.Point{}) {
		w.WritePoint(13, sp.EndTangent)
	}
	for _, k := range sp.Knots {
		w.WriteFloat(40, k)
	}
	for _, wt := range sp.Weights {
		w.WriteFloat(41, wt)
	}
	for _, p := range sp.Controls {
		w.WritePoint(10, p)
	}
	for _, p := range sp.Fits {
		w.WritePoint(11, p)
	}
}
