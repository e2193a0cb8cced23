// Package utils 文档实体的包围盒与块参照变换
package utils

import (
	"math"

	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/geo"
)

// maxDepth 块嵌套的最大层数，防止自引用的块无限递归
const maxDepth = 16

// TransformBBox 执行矩阵变换：将局部坐标变换到插入点所在的世界坐标
func TransformBBox(local geo.BBox, ins *document.Insert) geo.BBox {
	if local.IsEmpty() {
		return local
	}
	box := geo.EmptyBBox()
	for _, p := range local.Corners() {
		box = box.Extend(TransformPoint(p, ins))
	}
	return box
}

// BBox 实体在所属空间中的包围盒，块参照会展开块内实体
func BBox(doc *document.Document, e document.Entity) geo.BBox {
	b := &boxer{doc: doc, box: geo.EmptyBBox()}
	e.Accept(b)
	return b.box
}

// Extents 模型空间全部实体的范围，空文档返回零值
func Extents(doc *document.Document) geo.BBox {
	box := geo.EmptyBBox()
	for _, e := range doc.EntitiesByBlock(nil) {
		box = box.Merge(BBox(doc, e))
	}
	if box.IsEmpty() {
		return geo.BBox{}
	}
	return box
}

type boxer struct {
	doc *document.Document
	box geo.BBox
}

func (b *boxer) add(points ...geo.Coordinate) {
	for _, p := range points {
		b.box = b.box.Extend(p)
	}
}

func (b *boxer) VisitPoint(p *document.Point) { b.add(p.Position) }

func (b *boxer) VisitLine(l *document.Line) { b.add(l.Start, l.End) }

func (b *boxer) VisitCircle(c *document.Circle) {
	r := geo.Coordinate{X: c.Radius, Y: c.Radius}
	b.add(c.Center.Sub(r), c.Center.Add(r))
}

// VisitArc 端点加上扫过的象限点
func (b *boxer) VisitArc(a *document.Arc) {
	start, end := a.StartAngle, a.EndAngle
	if !a.CCW {
		start, end = end, start
	}
	start = document.NormalizeAngle(start)
	sweep := document.NormalizeAngle(end - start)
	if sweep == 0 {
		sweep = 2 * math.Pi
	}
	on := func(angle float64) geo.Coordinate {
		return a.Center.Add(geo.Coordinate{X: a.Radius * math.Cos(angle), Y: a.Radius * math.Sin(angle)})
	}
	b.add(on(start), on(start+sweep))
	for k := 0; k < 4; k++ {
		q := float64(k) * math.Pi / 2
		if document.NormalizeAngle(q-start) <= sweep {
			b.add(on(q))
		}
	}
}

// VisitEllipse 沿参数采样
func (b *boxer) VisitEllipse(e *document.Ellipse) {
	start, end := e.StartAngle, e.EndAngle
	if e.Reversed {
		start, end = end, start
	}
	sweep := document.NormalizeAngle(end - start)
	if sweep == 0 {
		sweep = 2 * math.Pi
	}
	major := e.MajorPoint
	minor := geo.Coordinate{X: -major.Y, Y: major.X}.Scale(e.Ratio())
	const steps = 64
	for i := 0; i <= steps; i++ {
		t := start + sweep*float64(i)/steps
		b.add(e.Center.Add(major.Scale(math.Cos(t))).Add(minor.Scale(math.Sin(t))))
	}
}

// VisitSpline 控制点的凸包包含整条曲线
func (b *boxer) VisitSpline(s *document.Spline) {
	b.add(s.ControlPoints...)
	b.add(s.FitPoints...)
}

func (b *boxer) VisitText(t *document.Text) {
	b.add(t.Insertion, t.Insertion.Add(geo.Coordinate{Y: t.Height}.Rotate(t.Angle*math.Pi/180)))
}

func (b *boxer) VisitLWPolyline(p *document.LWPolyline) {
	for _, v := range p.Vertices {
		b.add(v.Location)
	}
}

func (b *boxer) VisitImage(i *document.Image) {
	u, v := i.UVector.Scale(i.Width), i.VVector.Scale(i.Height)
	b.add(i.Position, i.Position.Add(u), i.Position.Add(v), i.Position.Add(u).Add(v))
}

// VisitInsert 块内实体的包围盒经插入变换后合并，块为空时取插入点
func (b *boxer) VisitInsert(ins *document.Insert) {
	b.insert(ins, 0)
}

// insert 嵌套的块参照先与父级变换合并，再展开
func (b *boxer) insert(ins *document.Insert, depth int) {
	if ins.DisplayBlock == nil || depth >= maxDepth {
		b.add(ins.Position)
		return
	}

	local, empty := geo.EmptyBBox(), true
	for _, sub := range b.doc.EntitiesByBlock(ins.DisplayBlock) {
		empty = false
		if child, ok := sub.(*document.Insert); ok {
			b.insert(CombineInserts(ins, child), depth+1)
			continue
		}
		nested := &boxer{doc: b.doc, box: geo.EmptyBBox()}
		sub.Accept(nested)
		local = local.Merge(nested.box)
	}
	if empty {
		b.add(ins.Position)
		return
	}
	b.box = b.box.Merge(TransformBBox(local, ins))
}

func (b *boxer) VisitDimAligned(d *document.DimAligned) {
	b.add(d.DefinitionPoint, d.MiddleOfText, d.DefinitionPoint2, d.DefinitionPoint3)
}

// VisitDimLinear 包含测量点、文字以及测量点在标注线上的投影
func (b *boxer) VisitDimLinear(d *document.DimLinear) {
	c2, c3 := ExtensionPoints(d)
	b.add(d.DefinitionPoint2, d.DefinitionPoint3, c2, c3, d.MiddleOfText)
}

func (b *boxer) VisitDimRadial(d *document.DimRadial) {
	b.add(d.DefinitionPoint, d.DefinitionPoint2, d.MiddleOfText)
}

func (b *boxer) VisitDimDiametric(d *document.DimDiametric) {
	b.add(d.DefinitionPoint, d.DefinitionPoint2, d.MiddleOfText)
}

func (b *boxer) VisitDimAngular(d *document.DimAngular) {
	b.add(d.DefLine11, d.DefLine12, d.DefLine21, d.DefLine22, d.MiddleOfText)
}

// ExtensionPoints 计算标注线上的两个转角点，角度为角度制
// 返回：对应 DefinitionPoint2 的转角点, 对应 DefinitionPoint3 的转角点
func ExtensionPoints(d *document.DimLinear) (c2, c3 geo.Coordinate) {
	rad := d.Angle * math.Pi / 180.0
	// 标注线的单位方向向量
	v := geo.Coordinate{X: math.Cos(rad), Y: math.Sin(rad)}

	// 测量点相对标注线起点的向量在方向向量 v 上的投影
	project := func(p geo.Coordinate) geo.Coordinate {
		delta := p.Sub(d.DefinitionPoint)
		dot := delta.X*v.X + delta.Y*v.Y
		return geo.Coordinate{X: d.DefinitionPoint.X + v.X*dot, Y: d.DefinitionPoint.Y + v.Y*dot}
	}
	return project(d.DefinitionPoint2), project(d.DefinitionPoint3)
}
