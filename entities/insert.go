package entities

import "github.com/zooyer/dxfrw/core"

// Insert 块参照，Rotation 为角度制
type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity { return NewInsert() })
}

func NewInsert() *Insert {
	return &Insert{
		BaseEntity: NewBase("INSERT"),
		Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		Attributes: []*Attrib{},
	}
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	hasAttributes := false

	err := parseLoop(scanner, func(tag core.Tag) {
		switch tag.Code {
		case 2:
			i.BlockName = tag.AsString()
		case 41:
			i.Scale.X = tag.AsFloat()
		case 42:
			i.Scale.Y = tag.AsFloat()
		case 43:
			i.Scale.Z = tag.AsFloat()
		case 50:
			i.Rotation = tag.AsFloat()
		case 66:
			if tag.AsInt() == 1 {
				hasAttributes = true
			}
		default:
			if !parsePoint(&i.InsertionPoint, 10, tag) {
				i.parseCommon(tag)
			}
		}
	})
	if err != nil || !hasAttributes {
		return err
	}

	// 核心逻辑：如果标记了有属性，则继续在当前流中抓取 ATTRIB 直到 SEQEND
	for !scanner.Done() && scanner.LastTag.Code == 0 {
		tag := scanner.LastTag
		if tag.Is("SEQEND") {
			// 消耗掉 SEQEND 及其属性，停在下一条记录上
			for scanner.Next() && scanner.LastTag.Code != 0 {
			}
			break
		}
		attr, ok := CreateEntity(tag.AsString()).(*Attrib)
		if !ok {
			// 缺少 SEQEND 时遇到其它记录直接结束
			break
		}
		if err = attr.Parse(scanner); err != nil {
			return err
		}
		i.Attributes = append(i.Attributes, attr)
	}
	return scanner.Err()
}

func (i *Insert) Encode(w *core.Writer) {
	i.encodeCommon(w)
	w.Subclass("AcDbBlockReference")
	if len(i.Attributes) > 0 {
		w.WriteInt(66, 1)
	}
	w.WriteString(2, i.BlockName)
	w.WritePoint(10, i.InsertionPoint)
	if i.Scale != (core.Point{X: 1, Y: 1, Z: 1}) {
		w.WriteFloat(41, i.Scale.X)
		w.WriteFloat(42, i.Scale.Y)
		w.WriteFloat(43, i.Scale.Z)
	}
	if i.Rotation != 0 {
		w.WriteFloat(50, i.Rotation)
	}
	if len(i.Attributes) == 0 {
		return
	}
	for _, a := range i.Attributes {
		a.Encode(w)
	}
	w.WriteString(0, "SEQEND")
	w.WriteString(8, i.LayerName)
}
