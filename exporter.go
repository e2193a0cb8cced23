package dxfrw

import (
	"fmt"

	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/entities"
	"github.com/zooyer/dxfrw/meta"
	"github.com/zooyer/dxfrw/utils"
)

// DefaultAppID 写出的注册应用名
const DefaultAppID = "DXFRW"

// Exporter 遍历文档并把每个实体交给 Sink
type Exporter struct {
	doc    *document.Document
	colors meta.ColorIndex
	AppID  string

	sink Sink
	err  error
}

var _ document.Visitor = (*Exporter)(nil)

func NewExporter(doc *document.Document, colors meta.ColorIndex) *Exporter {
	if colors == nil {
		colors = meta.ACI
	}
	return &Exporter{doc: doc, colors: colors, AppID: DefaultAppID}
}

// WriteDXF 按文件类型选择版本与编码，写到 path
func (ex *Exporter) WriteDXF(path string, t FileType) (err error) {
	version, binary := VersionOf(t)
	fw, err := Create(path)
	if err != nil {
		return fmt.Errorf("dxfrw: create %s: %w", path, err)
	}
	defer func() {
		if e := fw.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return ex.Write(fw, version, binary)
}

// Write 顺序固定：头、应用名、线型表、图层、块表记录、块（紧跟块内实体）、模型空间实体。
// 第一次写出失败后立即停止并返回该错误
func (ex *Exporter) Write(sink Sink, version Version, binary bool) error {
	ex.sink, ex.err = sink, nil
	defer func() { ex.sink = nil }()

	ex.emit(sink.Begin(version, binary))
	ex.writeHeader(version)
	if ex.err == nil {
		ex.emit(sink.WriteAppID(&entities.AppID{TableEntry: entities.TableEntry{Name: ex.AppID}}))
	}
	for _, lt := range LineTypeCatalogue() {
		if ex.err != nil {
			break
		}
		ex.emit(sink.WriteLineType(lt))
	}
	for _, layer := range ex.doc.Layers() {
		ex.writeLayer(layer)
	}

	blocks := ex.doc.Blocks()
	for _, block := range blocks {
		if ex.err != nil {
			break
		}
		ex.emit(sink.WriteBlockRecord(&entities.BlockRecord{TableEntry: entities.TableEntry{Name: block.Name}}))
	}
	for _, block := range blocks {
		ex.writeBlock(block)
	}

	for _, e := range ex.doc.EntitiesByBlock(nil) {
		if ex.err != nil {
			break
		}
		e.Accept(ex)
	}
	if ex.err == nil {
		ex.emit(sink.End())
	}

	if ex.err != nil {
		Opsf("export: %v", ex.err)
		return fmt.Errorf("dxfrw: write: %w", ex.err)
	}
	return nil
}

func (ex *Exporter) emit(err error) {
	if ex.err == nil {
		ex.err = err
	}
}

func (ex *Exporter) writeHeader(version Version) {
	if ex.err != nil {
		return
	}
	box := utils.Extents(ex.doc)
	ex.emit(ex.sink.WriteHeader(&entities.Header{
		Version:  string(version),
		InsUnits: UnitToNumber(ex.doc.Units),
		AUnits:   AngleFormatToNumber(ex.doc.AngleFormat),
		ExtMin:   toPoint(box.Min),
		ExtMax:   toPoint(box.Max),
		HasUnits: true,
		HasAngle: true,
	}))
}

func (ex *Exporter) writeLayer(layer *document.Layer) {
	if ex.err != nil {
		return
	}
	rec := entities.NewLayer(layer.Name)
	rec.Color = ex.colors.ColorToInt(layer.Color)
	rec.LWeight = meta.WeightOf(layer.LineWidth)
	if layer.Frozen {
		rec.Flags |= 0x01
	}
	if layer.LinePattern != nil {
		rec.LineType = layer.LinePattern.Name
	}
	ex.emit(ex.sink.WriteLayer(rec))
}

func (ex *Exporter) writeBlock(block *document.Block) {
	if ex.err != nil {
		return
	}
	rec := entities.NewBlock(block.Name)
	rec.Base = toPoint(block.Base)
	if block.Color != nil {
		rec.Color = ex.colors.ColorToInt(*block.Color)
	}
	if block.LinePattern != nil {
		rec.LineType = block.LinePattern.Name
	}
	if block.LineWidth != nil {
		rec.LWeight = meta.WeightOf(*block.LineWidth)
	}
	ex.emit(ex.sink.WriteBlock(rec))

	for _, e := range ex.doc.EntitiesByBlock(block) {
		if ex.err != nil {
			return
		}
		e.Accept(ex)
	}
	ex.emit(ex.sink.EndBlock())
}

// attributes 图层名以及样式集合中的显式颜色、线型、线宽
func (ex *Exporter) attributes(typeName string, e document.Entity) entities.BaseEntity {
	b := entities.NewBase(typeName)
	if layer := e.Layer(); layer != nil {
		b.LayerName = layer.Name
	}
	info := e.MetaInfo()
	if c, ok := info.Color(); ok {
		b.Color = ex.colors.ColorToInt(c)
	}
	if lp := info.LinePattern(); lp != nil {
		b.LineType = lp.Name
	}
	if w, ok := info.LineWidth(); ok {
		b.LWeight = meta.WeightOf(w)
	}
	return b
}

func (ex *Exporter) VisitPoint(p *document.Point) {
	ex.emit(ex.sink.WritePoint(&entities.Point{
		BaseEntity: ex.attributes("POINT", p),
		Location:   toPoint(p.Position),
	}))
}

func (ex *Exporter) VisitLine(l *document.Line) {
	ex.emit(ex.sink.WriteLine(&entities.Line{
		BaseEntity: ex.attributes("LINE", l),
		Start:      toPoint(l.Start),
		End:        toPoint(l.End),
	}))
}

func (ex *Exporter) VisitCircle(c *document.Circle) {
	ex.emit(ex.sink.WriteCircle(&entities.Circle{
		BaseEntity: ex.attributes("CIRCLE", c),
		Center:     toPoint(c.Center),
		Radius:     c.Radius,
	}))
}

// VisitArc 外部格式固定为逆时针，顺时针的圆弧交换起止角
func (ex *Exporter) VisitArc(a *document.Arc) {
	rec := entities.NewArc()
	rec.BaseEntity = ex.attributes("ARC", a)
	rec.Center, rec.Radius = toPoint(a.Center), a.Radius
	start, end := degrees(a.StartAngle), degrees(a.EndAngle)
	if !a.CCW {
		start, end = end, start
	}
	rec.StartAngle, rec.EndAngle = start, end
	ex.emit(ex.sink.WriteArc(rec))
}

func (ex *Exporter) VisitEllipse(e *document.Ellipse) {
	start, end := e.StartAngle, e.EndAngle
	if e.Reversed {
		start, end = end, start
	}
	ex.emit(ex.sink.WriteEllipse(&entities.Ellipse{
		BaseEntity: ex.attributes("ELLIPSE", e),
		Center:     toPoint(e.Center),
		MajorAxis:  toPoint(e.MajorPoint),
		Ratio:      e.Ratio(),
		StartParam: start,
		EndParam:   end,
	}))
}

func (ex *Exporter) VisitSpline(s *document.Spline) {
	flags := s.Flags
	if s.Closed {
		flags |= document.SplineClosed
	}
	ex.emit(ex.sink.WriteSpline(&entities.Spline{
		BaseEntity:   ex.attributes("SPLINE", s),
		Normal:       toPoint(s.Normal),
		StartTangent: toPoint(s.StartTangent),
		EndTangent:   toPoint(s.EndTangent),
		Flags:        int(flags),
		Degree:       s.Degree,
		FitTol:       s.FitTolerance,
		Knots:        padKnots(s.Knots),
		Controls:     toPoints(s.ControlPoints),
		Fits:         toPoints(s.FitPoints),
	}))
}

func (ex *Exporter) VisitInsert(i *document.Insert) {
	rec := entities.NewInsert()
	rec.BaseEntity = ex.attributes("INSERT", i)
	rec.BlockName = i.Name()
	rec.InsertionPoint = toPoint(i.Position)
	rec.Scale = toPoint(i.Scale)
	rec.Rotation = degrees(i.Rotation)
	ex.emit(ex.sink.WriteInsert(rec))
}

// 以下类型只写出公共属性

func (ex *Exporter) VisitText(t *document.Text) {
	ex.emit(ex.sink.WriteText(&entities.Text{BaseEntity: ex.attributes("TEXT", t)}))
}

func (ex *Exporter) VisitLWPolyline(p *document.LWPolyline) {
	ex.emit(ex.sink.WriteLWPolyline(&entities.LWPolyline{BaseEntity: ex.attributes("LWPOLYLINE", p)}))
}

func (ex *Exporter) VisitImage(i *document.Image) {
	ex.emit(ex.sink.WriteImage(&entities.Image{BaseEntity: ex.attributes("IMAGE", i)}))
}

func (ex *Exporter) dimension(e document.Entity, dimType int) {
	ex.emit(ex.sink.WriteDimension(&entities.Dimension{
		BaseEntity: ex.attributes("DIMENSION", e),
		DimType:    dimType,
	}))
}

func (ex *Exporter) VisitDimAligned(d *document.DimAligned) {
	ex.dimension(d, entities.DimAligned)
}

func (ex *Exporter) VisitDimLinear(d *document.DimLinear) {
	ex.dimension(d, entities.DimLinear)
}

func (ex *Exporter) VisitDimRadial(d *document.DimRadial) {
	ex.dimension(d, entities.DimRadius)
}

func (ex *Exporter) VisitDimDiametric(d *document.DimDiametric) {
	ex.dimension(d, entities.DimDiameter)
}

func (ex *Exporter) VisitDimAngular(d *document.DimAngular) {
	ex.dimension(d, entities.DimAngular)
}
