package entities

import (
	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/meta"
)

// Record 外部交换格式中的一条记录
type Record interface {
	Parse(scanner *core.Scanner) error
	Encode(w *core.Writer)
	Type() string
}

// Entity 是一切几何实体记录的接口
type Entity interface {
	Record
	Layer() string
	Common() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
	LineType  string          // 组码 6，默认 BYLAYER
	Color     int             // 组码 62，默认 256 (BYLAYER)
	LWeight   meta.LineWeight // 组码 370
}

// NewBase 带默认值（全部随层）的公共属性
func NewBase(typeName string) BaseEntity {
	return BaseEntity{
		TypeName:  typeName,
		LayerName: "0",
		LineType:  meta.PatternByLayer,
		Color:     meta.ColorByLayer,
		LWeight:   meta.LineWeightByLayer,
	}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Common() *BaseEntity { return b }

// parseCommon 处理公共组码，返回是否已处理
func (b *BaseEntity) parseCommon(t core.Tag) bool {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 8:
		b.LayerName = t.AsString()
	case 6:
		b.LineType = t.AsString()
	case 62:
		b.Color = t.AsInt()
	case 370:
		b.LWeight = meta.FromDXF(t.AsInt())
	default:
		return false
	}
	return true
}

// encodeCommon 写出记录头和公共属性，随层的属性省略
func (b *BaseEntity) encodeCommon(w *core.Writer) {
	w.WriteString(0, b.TypeName)
	if b.Handle != "" {
		w.WriteString(5, b.Handle)
	}
	w.Subclass("AcDbEntity")
	w.WriteString(8, b.LayerName)
	if b.LineType != "" && !equalFold(b.LineType, meta.PatternByLayer) {
		w.WriteString(6, b.LineType)
	}
	if b.Color != meta.ColorByLayer {
		w.WriteInt(62, b.Color)
	}
	if b.LWeight != meta.LineWeightByLayer {
		w.WriteInt(370, b.LWeight.DXF())
	}
}

func equalFold(a, b string) bool {
	return meta.FoldName(a) == meta.FoldName(b)
}

// parsePoint 处理 base, base+10, base+20 三个坐标组码
func parsePoint(p *core.Point, base int, t core.Tag) bool {
	switch t.Code {
	case base:
		p.X = t.AsFloat()
	case base + 10:
		p.Y = t.AsFloat()
	case base + 20:
		p.Z = t.AsFloat()
	default:
		return false
	}
	return true
}

// parseLoop 逐个读取标签直到下一条记录（组码 0）
func parseLoop(s *core.Scanner, handle func(t core.Tag)) error {
	for {
		handle(s.LastTag)
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}
