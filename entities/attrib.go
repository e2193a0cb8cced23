package entities

import "github.com/zooyer/dxfrw/core"

type Attrib struct {
	BaseEntity
	Location core.Point
	Tag      string // 属性标签，如 "序号"
	Text     string // 属性值
	Height   float64
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{BaseEntity: NewBase("ATTRIB")}
	})
}

func (a *Attrib) Parse(scanner *core.Scanner) error {
	return parseLoop(scanner, func(tag core.Tag) {
		switch tag.Code {
		case 40:
			a.Height = tag.AsFloat()
		case 1:
			a.Text = tag.AsString()
		case 2:
			a.Tag = tag.AsString()
		default:
			if !parsePoint(&a.Location, 10, tag) {
				a.parseCommon(tag)
			}
		}
	})
}

func (a *Attrib) Encode(w *core.Writer) {
	a.encodeCommon(w)
	w.Subclass("AcDbText")
	w.WritePoint(10, a.Location)
	w.WriteFloat(40, a.Height)
	w.WriteString(1, a.Text)
	w.Subclass("AcDbAttribute")
	w.WriteString(2, a.Tag)
	w.WriteInt(70, 0)
}
