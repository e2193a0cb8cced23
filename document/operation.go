package document

import (
	"errors"

	"github.com/google/uuid"

	"github.com/zooyer/dxfrw/meta"
)

// Operation 对文档的一次修改，立即同步执行
type Operation interface {
	Execute() error
}

type AddLayer struct {
	doc   *Document
	layer *Layer
	// Overwrite 为 true 时同名图层以最后一次为准，否则返回 ErrLayerExists
	Overwrite bool
}

func NewAddLayer(doc *Document, layer *Layer) *AddLayer {
	return &AddLayer{doc: doc, layer: layer}
}

func (op *AddLayer) Execute() error {
	if op.Overwrite {
		op.doc.setLayer(op.layer)
		return nil
	}
	return op.doc.addLayer(op.layer)
}

type AddLinePattern struct {
	doc     *Document
	pattern *meta.LinePattern
	// Overwrite 同 AddLayer
	Overwrite bool
}

func NewAddLinePattern(doc *Document, pattern *meta.LinePattern) *AddLinePattern {
	return &AddLinePattern{doc: doc, pattern: pattern}
}

func (op *AddLinePattern) Execute() error {
	if op.Overwrite {
		op.doc.setLinePattern(op.pattern)
		return nil
	}
	return op.doc.addLinePattern(op.pattern)
}

// Builder 收集实体与块，Execute 时一次性提交到文档
type Builder struct {
	doc      *Document
	metaData []MetaData
	entities []Entity
	seen     map[uuid.UUID]struct{}
}

func NewBuilder(doc *Document) *Builder {
	return &Builder{doc: doc, seen: make(map[uuid.UUID]struct{})}
}

// Append 以实体 ID 去重，同一个实体只会追加一次
func (b *Builder) Append(e Entity) *Builder {
	if e == nil {
		return b
	}
	if _, ok := b.seen[e.ID()]; ok {
		return b
	}
	b.seen[e.ID()] = struct{}{}
	b.entities = append(b.entities, e)
	return b
}

func (b *Builder) AppendMetaData(m MetaData) *Builder {
	if m != nil {
		b.metaData = append(b.metaData, m)
	}
	return b
}

// Discard 移除尚未提交且满足条件的实体，返回移除的个数
func (b *Builder) Discard(drop func(Entity) bool) int {
	kept := b.entities[:0]
	for _, e := range b.entities {
		if drop(e) {
			delete(b.seen, e.ID())
			continue
		}
		kept = append(kept, e)
	}
	n := len(b.entities) - len(kept)
	clear(b.entities[len(kept):])
	b.entities = kept
	return n
}

// Len 待提交的实体数
func (b *Builder) Len() int { return len(b.entities) }

// Execute 先提交块/图层再提交实体，然后清空。重复的图层会返回错误但不影响其它对象
func (b *Builder) Execute() error {
	var errs []error
	for _, m := range b.metaData {
		switch v := m.(type) {
		case *Layer:
			if err := b.doc.addLayer(v); err != nil {
				errs = append(errs, err)
			}
		case *Block:
			b.doc.addBlock(v)
		}
	}
	for _, e := range b.entities {
		b.doc.addEntity(e)
	}

	b.metaData, b.entities = nil, nil
	b.seen = make(map[uuid.UUID]struct{})
	return errors.Join(errs...)
}
