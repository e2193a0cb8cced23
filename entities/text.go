package entities

import "github.com/zooyer/dxfrw/core"

// Text 单行文字，Angle 为角度制
type Text struct {
	BaseEntity
	Location    core.Point
	SecondPoint core.Point
	Text        string
	Height      float64
	Angle       float64
	WidthScale  float64
	Style       string
	TextGen     int
	AlignH      int
	AlignV      int
}

func init() {
	Register("TEXT", func() Entity {
		return &Text{BaseEntity: NewBase("TEXT"), Style: "STANDARD", WidthScale: 1}
	})
}

func (tx *Text) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 1:
			tx.Text = t.Value
		case 7:
			tx.Style = t.AsString()
		case 40:
			tx.Height = t.AsFloat()
		case 41:
			tx.WidthScale = t.AsFloat()
		case 50:
			tx.Angle = t.AsFloat()
		case 71:
			tx.TextGen = t.AsInt()
		case 72:
			tx.AlignH = t.AsInt()
		case 73:
			tx.AlignV = t.AsInt()
		default:
			if !parsePoint(&tx.Location, 10, t) && !parsePoint(&tx.SecondPoint, 11, t) {
				tx.parseCommon(t)
			}
		}
	})
}

func (tx *Text) Encode(w *core.Writer) {
	tx.encodeCommon(w)
	w.Subclass("AcDbText")
	w.WritePoint(10, tx.Location)
	w.WriteFloat(40, tx.Height)
	w.WriteString(1, tx.Text)
	w.WriteFloat(50, tx.Angle)
	w.WriteFloat(41, tx.WidthScale)
	w.WriteString(7, tx.Style)
	w.WriteInt(71, tx.TextGen)
	w.WriteInt(72, tx.AlignH)
	w.WritePoint(11, tx.SecondPoint)
	w.Subclass("AcDbText")
	w.WriteInt(73, tx.AlignV)
}
