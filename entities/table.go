package entities

import (
	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/meta"
)

// TableEntry 符号表记录的公共部分
type TableEntry struct {
	Handle string
	Name   string
	Flags  int
}

func (e *TableEntry) parseEntry(t core.Tag) bool {
	switch t.Code {
	case 5:
		e.Handle = t.AsString()
	case 2:
		e.Name = t.AsString()
	case 70:
		e.Flags = t.AsInt()
	default:
		return false
	}
	return true
}

func (e *TableEntry) encodeEntry(w *core.Writer, typeName, subclass string) {
	w.WriteString(0, typeName)
	if e.Handle != "" {
		w.WriteString(5, e.Handle)
	}
	w.Subclass("AcDbSymbolTableRecord")
	w.Subclass(subclass)
	w.WriteString(2, e.Name)
	w.WriteInt(70, e.Flags)
}

// Layer 图层表记录，颜色为负表示图层关闭
type Layer struct {
	TableEntry
	Color    int
	LineType string
	LWeight  meta.LineWeight
	Plot     bool
}

func NewLayer(name string) *Layer {
	return &Layer{
		TableEntry: TableEntry{Name: name},
		Color:      7,
		LineType:   meta.PatternContinuous,
		LWeight:    meta.LineWeightDefault,
		Plot:       true,
	}
}

func (l *Layer) Type() string { return "LAYER" }

// Frozen 组码 70 第 1 位
func (l *Layer) Frozen() bool { return l.Flags&0x01 != 0 }

// Off 颜色为负时图层关闭
func (l *Layer) Off() bool { return l.Color < 0 }

func (l *Layer) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 62:
			l.Color = t.AsInt()
		case 6:
			l.LineType = t.AsString()
		case 370:
			l.LWeight = meta.FromDXF(t.AsInt())
		case 290:
			l.Plot = t.AsInt() != 0
		default:
			l.parseEntry(t)
		}
	})
}

func (l *Layer) Encode(w *core.Writer) {
	l.encodeEntry(w, "LAYER", "AcDbLayerTableRecord")
	w.WriteInt(62, l.Color)
	w.WriteString(6, l.LineType)
	if w.Markers {
		if !l.Plot {
			w.WriteInt(290, 0)
		}
		w.WriteInt(370, l.LWeight.DXF())
	}
}

// LineType 线型表记录，Path 中正数为实线段，负数为空白，0 为点
type LineType struct {
	TableEntry
	Description string
	Length      float64
	Path        []float64
}

func (lt *LineType) Type() string { return "LTYPE" }

func (lt *LineType) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 3:
			lt.Description = t.Value
		case 40:
			lt.Length = t.AsFloat()
		case 49:
			lt.Path = append(lt.Path, t.AsFloat())
		default:
			lt.parseEntry(t)
		}
	})
}

func (lt *LineType) Encode(w *core.Writer) {
	lt.encodeEntry(w, "LTYPE", "AcDbLinetypeTableRecord")
	w.WriteString(3, lt.Description)
	w.WriteInt(72, 65)
	w.WriteInt(73, len(lt.Path))
	w.WriteFloat(40, lt.Length)
	for _, v := range lt.Path {
		w.WriteFloat(49, v)
		if w.Markers {
			w.WriteInt(74, 0)
		}
	}
}

// AppID 注册应用名
type AppID struct {
	TableEntry
}

func (a *AppID) Type() string { return "APPID" }

func (a *AppID) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) { a.parseEntry(t) })
}

func (a *AppID) Encode(w *core.Writer) {
	a.encodeEntry(w, "APPID", "AcDbRegAppTableRecord")
}

// BlockRecord 块表记录（R13 及以上）
type BlockRecord struct {
	TableEntry
}

func (b *BlockRecord) Type() string { return "BLOCK_RECORD" }

func (b *BlockRecord) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) { b.parseEntry(t) })
}

func (b *BlockRecord) Encode(w *core.Writer) {
	w.WriteString(0, "BLOCK_RECORD")
	if b.Handle != "" {
		w.WriteString(5, b.Handle)
	}
	w.Subclass("AcDbSymbolTableRecord")
	w.Subclass("AcDbBlockTableRecord")
	w.WriteString(2, b.Name)
}

// Block BLOCKS 段中的块定义开始
type Block struct {
	BaseEntity
	Name  string
	Flags int
	Base  core.Point
}

func NewBlock(name string) *Block {
	return &Block{BaseEntity: NewBase("BLOCK"), Name: name}
}

func (b *Block) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 2:
			b.Name = t.AsString()
		case 3:
			if b.Name == "" {
				b.Name = t.AsString()
			}
		case 70:
			b.Flags = t.AsInt()
		default:
			if !parsePoint(&b.Base, 10, t) {
				b.parseCommon(t)
			}
		}
	})
}

func (b *Block) Encode(w *core.Writer) {
	b.encodeCommon(w)
	w.Subclass("AcDbBlockBegin")
	w.WriteString(2, b.Name)
	w.WriteInt(70, b.Flags)
	w.WritePoint(10, b.Base)
	w.WriteString(3, b.Name)
	w.WriteString(1, "")
}

// EncodeEnd 写出与块对应的 ENDBLK
func (b *Block) EncodeEnd(w *core.Writer, handle string) {
	w.WriteString(0, "ENDBLK")
	if handle != "" {
		w.WriteString(5, handle)
	}
	w.Subclass("AcDbEntity")
	w.WriteString(8, b.LayerName)
	w.Subclass("AcDbBlockEnd")
}

// NewTableRecord 按表名创建记录，未知表返回 nil
func NewTableRecord(table string) Record {
	switch table {
	case "LAYER":
		return NewLayer("")
	case "LTYPE":
		return &LineType{}
	case "APPID":
		return &AppID{}
	case "BLOCK_RECORD":
		return &BlockRecord{}
	}
	return nil
}
