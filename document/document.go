// Package document 图形编辑使用的内部文档模型。
//
// Document 本身不加锁：一次完整的导入或导出期间，调用方需要独占文档。
package document

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zooyer/dxfrw/meta"
)

var (
	ErrLayerExists       = errors.New("layer already exists")
	ErrLinePatternExists = errors.New("line pattern already exists")
)

type Document struct {
	layers     map[string]*Layer
	layerOrder []*Layer

	patterns     map[string]*meta.LinePattern
	patternOrder []*meta.LinePattern

	blocks     map[string]*Block
	blockOrder []*Block

	entities []Entity
	ids      map[uuid.UUID]struct{}

	Units       meta.Units
	AngleFormat meta.AngleFormat
}

func New() *Document {
	return &Document{
		layers:   make(map[string]*Layer),
		patterns: make(map[string]*meta.LinePattern),
		blocks:   make(map[string]*Block),
		ids:      make(map[uuid.UUID]struct{}),
	}
}

func (d *Document) LayerByName(name string) *Layer {
	return d.layers[name]
}

// LinePatternByName 线型名不区分大小写
func (d *Document) LinePatternByName(name string) *meta.LinePattern {
	return d.patterns[meta.FoldName(name)]
}

func (d *Document) BlockByName(name string) *Block {
	return d.blocks[name]
}

// Layers 按添加顺序返回
func (d *Document) Layers() []*Layer {
	return append([]*Layer(nil), d.layerOrder...)
}

func (d *Document) LinePatterns() []*meta.LinePattern {
	return append([]*meta.LinePattern(nil), d.patternOrder...)
}

// Blocks 按首次出现的顺序返回，同名块只保留最后一次的定义
func (d *Document) Blocks() []*Block {
	return append([]*Block(nil), d.blockOrder...)
}

func (d *Document) Entities() []Entity {
	return append([]Entity(nil), d.entities...)
}

// EntitiesByBlock 块内实体，保持文档顺序。block 为 nil 时返回模型空间实体
func (d *Document) EntitiesByBlock(block *Block) []Entity {
	var list []Entity
	for _, e := range d.entities {
		if e.Block() == block {
			list = append(list, e)
		}
	}
	return list
}

func (d *Document) addLayer(layer *Layer) error {
	if _, ok := d.layers[layer.Name]; ok {
		return fmt.Errorf("%w: %q", ErrLayerExists, layer.Name)
	}
	d.layers[layer.Name] = layer
	d.layerOrder = append(d.layerOrder, layer)
	return nil
}

// setLayer 同名图层已存在时原地覆盖，已有的引用看到新定义
func (d *Document) setLayer(layer *Layer) {
	if old, ok := d.layers[layer.Name]; ok {
		*old = *layer
		return
	}
	d.layers[layer.Name] = layer
	d.layerOrder = append(d.layerOrder, layer)
}

func (d *Document) addLinePattern(lp *meta.LinePattern) error {
	key := meta.FoldName(lp.Name)
	if _, ok := d.patterns[key]; ok {
		return fmt.Errorf("%w: %q", ErrLinePatternExists, lp.Name)
	}
	d.patterns[key] = lp
	d.patternOrder = append(d.patternOrder, lp)
	return nil
}

func (d *Document) setLinePattern(lp *meta.LinePattern) {
	key := meta.FoldName(lp.Name)
	if old, ok := d.patterns[key]; ok {
		*old = *lp
		return
	}
	d.patterns[key] = lp
	d.patternOrder = append(d.patternOrder, lp)
}

// addBlock 同名块以最后一次为准，位置保持首次出现的顺序
func (d *Document) addBlock(block *Block) {
	if old, ok := d.blocks[block.Name]; ok {
		for i, b := range d.blockOrder {
			if b == old {
				d.blockOrder[i] = block
			}
		}
	} else {
		d.blockOrder = append(d.blockOrder, block)
	}
	d.blocks[block.Name] = block
}

// addEntity 同一个实体只会加入一次
func (d *Document) addEntity(e Entity) bool {
	if _, ok := d.ids[e.ID()]; ok {
		return false
	}
	d.ids[e.ID()] = struct{}{}
	d.entities = append(d.entities, e)
	return true
}
