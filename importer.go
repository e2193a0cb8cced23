package dxfrw

import (
	"fmt"
	"sort"

	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/entities"
	"github.com/zooyer/dxfrw/geo"
	"github.com/zooyer/dxfrw/meta"
)

// ImportOptions 颜色索引与解析失败时的默认值
type ImportOptions struct {
	Colors meta.ColorIndex
	// 显式颜色/线宽无法解析时使用，为 nil 则不加入样式集合
	DefaultColor     *meta.Color
	DefaultLineWidth *meta.LineWidth
}

// Summary 一次导入的统计
type Summary struct {
	Added int
	// 缺少图层，或所属的块被同名块覆盖
	Dropped   int
	Discarded int
	// 找不到 IMAGEDEF 的图像句柄
	UnresolvedImages []string
	// 找不到块定义的插入
	UnresolvedInserts []string
	// 被重复定义的块名，只保留最后一次
	RedefinedBlocks []string
}

// importScope 实体所属的块，block 为 nil 表示模型空间
type importScope struct {
	block *document.Block
}

type pendingImage struct {
	record *entities.Image
	scope  importScope
}

// Importer 把外部记录逐条转换为文档实体，最后调用 Finish 提交
type Importer struct {
	doc     *document.Document
	builder *document.Builder
	opts    ImportOptions

	scope  importScope
	inside bool
	blocks map[string]*document.Block
	// 被同名块覆盖的旧块
	replaced map[*document.Block]bool

	defs    map[string]*entities.ImageDef
	linked  map[string]bool
	pending map[string][]pendingImage
	inserts []*document.Insert

	summary Summary
}

var _ Handler = (*Importer)(nil)

func NewImporter(doc *document.Document, opts ImportOptions) *Importer {
	if opts.Colors == nil {
		opts.Colors = meta.ACI
	}
	return &Importer{
		doc:      doc,
		builder:  document.NewBuilder(doc),
		opts:     opts,
		blocks:   make(map[string]*document.Block),
		replaced: make(map[*document.Block]bool),
		defs:     make(map[string]*entities.ImageDef),
		linked:   make(map[string]bool),
		pending:  make(map[string][]pendingImage),
	}
}

// Import 读取文件并提交到文档
func Import(path string, doc *document.Document, opts ImportOptions) (Summary, error) {
	im := NewImporter(doc, opts)
	if err := Open(path, im); err != nil {
		return Summary{}, err
	}
	return im.Finish()
}

func (im *Importer) color(code int) (meta.Color, bool) {
	if code == meta.ColorByLayer || code == meta.ColorByBlock {
		return meta.Color{}, false
	}
	if c, ok := im.opts.Colors.IntToColor(code); ok {
		return c, true
	}
	if im.opts.DefaultColor != nil {
		return *im.opts.DefaultColor, true
	}
	return meta.Color{}, false
}

func (im *Importer) lineWidth(lw meta.LineWeight) (meta.LineWidth, bool) {
	if lw == meta.LineWeightByLayer || lw == meta.LineWeightDefault {
		return meta.LineWidth{}, false
	}
	if w, ok := lw.LineWidth(); ok {
		return w, true
	}
	if im.opts.DefaultLineWidth != nil {
		return *im.opts.DefaultLineWidth, true
	}
	return meta.LineWidth{}, false
}

func (im *Importer) linePattern(name string) *meta.LinePattern {
	if name == "" || meta.IsInherited(name) {
		return nil
	}
	lp := im.doc.LinePatternByName(name)
	if lp == nil {
		Diagf("line pattern %q not found", name)
	}
	return lp
}

// getMetaInfo 只有出现显式属性时才创建样式集合
func (im *Importer) getMetaInfo(b *entities.BaseEntity) *meta.Info {
	var info *meta.Info
	if w, ok := im.lineWidth(b.LWeight); ok {
		info = info.Add(w)
	}
	if c, ok := im.color(b.Color); ok {
		info = info.Add(c)
	}
	if lp := im.linePattern(b.LineType); lp != nil {
		info = info.Add(lp)
	}
	return info
}

// base 解析图层并生成实体公共部分，图层不存在时丢弃记录
func (im *Importer) base(rec entities.Entity, scope importScope) (document.Base, bool) {
	b := rec.Common()
	layer := im.doc.LayerByName(b.LayerName)
	if layer == nil {
		Diagf("drop %s %s: layer %q not found", b.TypeName, b.Handle, b.LayerName)
		im.summary.Dropped++
		return document.Base{}, false
	}
	return document.NewBase(layer, scope.block, im.getMetaInfo(b)), true
}

func (im *Importer) append(e document.Entity) {
	Tracef("add %T %s", e, e.ID())
	im.builder.Append(e)
	im.summary.Added++
}

func (im *Importer) AddHeader(h *entities.Header) {
	if h.HasUnits {
		im.doc.Units = NumberToUnit(h.InsUnits)
	}
	if h.HasAngle {
		im.doc.AngleFormat = NumberToAngleFormat(h.AUnits)
	}
}

func (im *Importer) AddLineType(lt *entities.LineType) {
	pattern := meta.NewLinePattern(lt.Name, lt.Description, lt.Path, lt.Length)
	if im.doc.LinePatternByName(lt.Name) != nil {
		Diagf("line type %q redefined", lt.Name)
	}
	op := document.NewAddLinePattern(im.doc, pattern)
	op.Overwrite = true
	if err := op.Execute(); err != nil {
		Opsf("line type: %v", err)
	}
}

// AddLayer 以 * 开头的系统图层直接跳过
func (im *Importer) AddLayer(l *entities.Layer) {
	if l.Name == "" || l.Name[0] == '*' {
		Diagf("skip layer %q", l.Name)
		return
	}

	code := l.Color
	if code < 0 {
		code = -code
	}
	col, ok := im.opts.Colors.IntToColor(code)
	if !ok {
		col, _ = im.opts.Colors.IntToColor(meta.ColorDefault)
	}

	width, ok := l.LWeight.LineWidth()
	if !ok || width.ByBlock {
		width, _ = meta.IntToLW(0)
	}

	layer := document.NewLayer(l.Name, width, col)
	layer.Frozen = l.Frozen()
	layer.LinePattern = im.linePattern(l.LineType)
	if im.doc.LayerByName(l.Name) != nil {
		Diagf("layer %q redefined", l.Name)
	}
	// 同名图层以最后一次为准
	op := document.NewAddLayer(im.doc, layer)
	op.Overwrite = true
	if err := op.Execute(); err != nil {
		Opsf("layer: %v", err)
	}
}

// BeginBlock 同名块以最后一次为准
func (im *Importer) BeginBlock(b *entities.Block) {
	if im.inside {
		Opsf("block %q begins inside block %q", b.Name, im.scope.block.Name)
	}

	block := document.NewBlock(b.Name, coord(b.Base))
	if c, ok := im.color(b.Color); ok {
		block.Color = &c
	}
	if w, ok := im.lineWidth(b.LWeight); ok {
		block.LineWidth = &w
	}
	block.LinePattern = im.linePattern(b.LineType)

	if old := im.blocks[b.Name]; old != nil {
		Diagf("block %q redefined", b.Name)
		im.replaced[old] = true
		im.summary.RedefinedBlocks = append(im.summary.RedefinedBlocks, b.Name)
	}
	im.blocks[b.Name] = block
	im.builder.AppendMetaData(block)
	im.scope, im.inside = importScope{block: block}, true
}

func (im *Importer) EndBlock() {
	if !im.inside {
		Opsf("end of block without a block")
		return
	}
	im.scope, im.inside = importScope{}, false
}

func (im *Importer) AddPoint(p *entities.Point) {
	if base, ok := im.base(p, im.scope); ok {
		im.append(&document.Point{Base: base, Position: coord(p.Location)})
	}
}

func (im *Importer) AddLine(l *entities.Line) {
	if base, ok := im.base(l, im.scope); ok {
		im.append(&document.Line{Base: base, Start: coord(l.Start), End: coord(l.End)})
	}
}

func (im *Importer) AddCircle(c *entities.Circle) {
	if base, ok := im.base(c, im.scope); ok {
		im.append(&document.Circle{Base: base, Center: coord(c.Center), Radius: c.Radius})
	}
}

func (im *Importer) AddArc(a *entities.Arc) {
	base, ok := im.base(a, im.scope)
	if !ok {
		return
	}
	im.append(&document.Arc{
		Base:       base,
		Center:     coord(a.Center),
		Radius:     a.Radius,
		StartAngle: radians(a.StartAngle),
		EndAngle:   radians(a.EndAngle),
		CCW:        a.IsCCW,
	})
}

// AddEllipse 短轴 = 长轴长度 × 比例
func (im *Importer) AddEllipse(e *entities.Ellipse) {
	base, ok := im.base(e, im.scope)
	if !ok {
		return
	}
	major := coord(e.MajorAxis)
	im.append(&document.Ellipse{
		Base:        base,
		Center:      coord(e.Center),
		MajorPoint:  major,
		MinorRadius: major.Magnitude() * e.Ratio,
		StartAngle:  e.StartParam,
		EndAngle:    e.EndParam,
	})
}

func (im *Importer) AddSpline(s *entities.Spline) {
	base, ok := im.base(s, im.scope)
	if !ok {
		return
	}
	im.append(&document.Spline{
		Base:          base,
		ControlPoints: coords(s.Controls),
		Knots:         trimKnots(s.Knots),
		FitPoints:     coords(s.Fits),
		Degree:        s.Degree,
		Closed:        document.SplineFlag(s.Flags)&document.SplineClosed != 0,
		FitTolerance:  s.FitTol,
		StartTangent:  coord(s.StartTangent),
		EndTangent:    coord(s.EndTangent),
		Normal:        coord(s.Normal),
		Flags:         document.SplineFlag(s.Flags),
	})
}

func (im *Importer) AddText(t *entities.Text) {
	base, ok := im.base(t, im.scope)
	if !ok {
		return
	}
	im.append(&document.Text{
		Base:      base,
		Insertion: coord(t.Location),
		Text:      t.Text,
		Height:    t.Height,
		Angle:     t.Angle,
		Style:     t.Style,
		Direction: document.DrawingDirection(t.TextGen),
		HAlign:    document.HAlign(t.AlignH),
		VAlign:    document.VAlign(t.AlignV),
	})
}

func (im *Importer) AddLWPolyline(p *entities.LWPolyline) {
	base, ok := im.base(p, im.scope)
	if !ok {
		return
	}
	vertices := make([]document.LWVertex, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		vertices = append(vertices, document.LWVertex{
			Location:   geo.Coordinate{X: v.X, Y: v.Y},
			Bulge:      v.Bulge,
			StartWidth: v.StartWidth,
			EndWidth:   v.EndWidth,
		})
	}
	im.append(&document.LWPolyline{
		Base:      base,
		Vertices:  vertices,
		Width:     p.Width,
		Elevation: p.Elevation,
		Thickness: p.Thickness,
		Closed:    p.Closed(),
		Extrusion: coord(p.Extrusion),
	})
}

// AddInsert 块尚未出现时保留块名，Finish 时再修复
func (im *Importer) AddInsert(i *entities.Insert) {
	base, ok := im.base(i, im.scope)
	if !ok {
		return
	}
	ins := &document.Insert{
		Base:         base,
		Position:     coord(i.InsertionPoint),
		Scale:        coord(i.Scale),
		Rotation:     radians(i.Rotation),
		DisplayBlock: im.blocks[i.BlockName],
		BlockName:    i.BlockName,
	}
	// 后面可能出现同名块，Finish 时统一重新绑定
	im.inserts = append(im.inserts, ins)
	im.append(ins)
}

// AddImage 定义已经链接时立即生成，否则等待 LinkImage 或 Finish
func (im *Importer) AddImage(i *entities.Image) {
	p := pendingImage{record: i, scope: im.scope}
	key := entities.HandleKey(i.Ref)
	if im.linked[key] {
		im.resolveImage(p, im.defs[key])
		return
	}
	im.pending[key] = append(im.pending[key], p)
}

// AddImageDef 只登记定义，不解析等待中的图像
func (im *Importer) AddImageDef(d *entities.ImageDef) {
	im.defs[entities.HandleKey(d.Handle)] = d
}

func (im *Importer) LinkImage(d *entities.ImageDef) {
	key := entities.HandleKey(d.Handle)
	im.defs[key], im.linked[key] = d, true
	for _, p := range im.pending[key] {
		im.resolveImage(p, d)
	}
	delete(im.pending, key)
}

// resolveImage 图层不存在时只丢弃这一张图像
func (im *Importer) resolveImage(p pendingImage, def *entities.ImageDef) {
	base, ok := im.base(p.record, p.scope)
	if !ok {
		return
	}
	im.append(&document.Image{
		Base:       base,
		Name:       def.FileName,
		Position:   coord(p.record.Location),
		UVector:    coord(p.record.UVector),
		VVector:    coord(p.record.VVector),
		Width:      p.record.SizeU,
		Height:     p.record.SizeV,
		Brightness: p.record.Brightness,
		Contrast:   p.record.Contrast,
		Fade:       p.record.Fade,
	})
}

func (im *Importer) dimension(d *entities.Dimension) document.Dimension {
	return document.Dimension{
		DefinitionPoint:   coord(d.DefPoint),
		MiddleOfText:      coord(d.TextMidPoint),
		Attachment:        document.AttachmentPoint(d.Attachment),
		TextAngle:         d.TextAngle,
		LineSpacingFactor: d.LineFactor,
		LineSpacingStyle:  document.LineSpacingStyle(d.LineStyle),
		Explicit:          d.Text,
	}
}

func (im *Importer) AddDimAligned(d *entities.Dimension) {
	if base, ok := im.base(d, im.scope); ok {
		im.append(&document.DimAligned{
			Base:             base,
			Dimension:        im.dimension(d),
			DefinitionPoint2: coord(d.MeasureStart),
			DefinitionPoint3: coord(d.MeasureEnd),
		})
	}
}

func (im *Importer) AddDimLinear(d *entities.Dimension) {
	if base, ok := im.base(d, im.scope); ok {
		im.append(&document.DimLinear{
			Base:             base,
			Dimension:        im.dimension(d),
			DefinitionPoint2: coord(d.MeasureStart),
			DefinitionPoint3: coord(d.MeasureEnd),
			Angle:            d.Angle,
			Oblique:          d.Oblique,
		})
	}
}

func (im *Importer) AddDimRadial(d *entities.Dimension) {
	if base, ok := im.base(d, im.scope); ok {
		im.append(&document.DimRadial{
			Base:             base,
			Dimension:        im.dimension(d),
			DefinitionPoint2: coord(d.Point15),
			Leader:           d.Leader,
		})
	}
}

// AddDimDiametric 定义点为直径的两端：15 与 10
func (im *Importer) AddDimDiametric(d *entities.Dimension) {
	if base, ok := im.base(d, im.scope); ok {
		dim := im.dimension(d)
		dim.DefinitionPoint = coord(d.Point15)
		im.append(&document.DimDiametric{
			Base:             base,
			Dimension:        dim,
			DefinitionPoint2: coord(d.DefPoint),
			Leader:           d.Leader,
		})
	}
}

func (im *Importer) AddDimAngular(d *entities.Dimension) {
	if base, ok := im.base(d, im.scope); ok {
		im.append(&document.DimAngular{
			Base:      base,
			Dimension: im.dimension(d),
			DefLine11: coord(d.MeasureStart),
			DefLine12: coord(d.MeasureEnd),
			DefLine21: coord(d.Point15),
			DefLine22: coord(d.DefPoint),
		})
	}
}

func (im *Importer) discard(kind string) {
	Diagf("discard unsupported %s", kind)
	im.summary.Discarded++
}

func (im *Importer) AddDimAngular3P(*entities.Dimension) { im.discard("angular 3P dimension") }
func (im *Importer) AddDimOrdinate(*entities.Dimension)  { im.discard("ordinate dimension") }
func (im *Importer) AddPolyline(*entities.Polyline)      { im.discard("POLYLINE") }
func (im *Importer) AddMText(*entities.Unsupported)      { im.discard("MTEXT") }
func (im *Importer) AddHatch(*entities.Unsupported)      { im.discard("HATCH") }

// Finish 解析剩余的图像与插入，然后提交到文档。未解析的引用只记录警告
func (im *Importer) Finish() (Summary, error) {
	if im.inside {
		Opsf("block %q was not closed", im.scope.block.Name)
		im.scope, im.inside = importScope{}, false
	}

	keys := make([]string, 0, len(im.pending))
	for key := range im.pending {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		def, ok := im.defs[key]
		if !ok {
			Opsf("image definition %q not found for %d image(s)", key, len(im.pending[key]))
			im.summary.UnresolvedImages = append(im.summary.UnresolvedImages, key)
			continue
		}
		for _, p := range im.pending[key] {
			im.resolveImage(p, def)
		}
		delete(im.pending, key)
	}

	// 旧块中的实体不再导出
	if len(im.replaced) > 0 {
		n := im.builder.Discard(func(e document.Entity) bool { return im.replaced[e.Block()] })
		if n > 0 {
			Diagf("drop %d entities of redefined blocks", n)
		}
		im.summary.Added -= n
		im.summary.Dropped += n
	}

	for _, ins := range im.inserts {
		if im.replaced[ins.Block()] {
			continue
		}
		if block := im.blocks[ins.BlockName]; block != nil {
			ins.DisplayBlock = block
			continue
		}
		Opsf("block %q not found for insert %s", ins.BlockName, ins.ID())
		im.summary.UnresolvedInserts = append(im.summary.UnresolvedInserts, ins.BlockName)
	}
	im.inserts = nil

	summary := im.summary
	if err := im.builder.Execute(); err != nil {
		return summary, fmt.Errorf("dxfrw: commit: %w", err)
	}
	return summary, nil
}
