package dxfrw

import "github.com/zooyer/dxfrw/entities"

// Handler 读取驱动按文件顺序对每条记录调用一次。
// BeginBlock 与 EndBlock 之间的实体属于该块；LinkImage 可能出现在对应 AddImage 之前或之后。
type Handler interface {
	AddHeader(h *entities.Header)
	AddLineType(lt *entities.LineType)
	AddLayer(l *entities.Layer)
	BeginBlock(b *entities.Block)
	EndBlock()

	AddPoint(p *entities.Point)
	AddLine(l *entities.Line)
	AddCircle(c *entities.Circle)
	AddArc(a *entities.Arc)
	AddEllipse(e *entities.Ellipse)
	AddSpline(s *entities.Spline)
	AddText(t *entities.Text)
	AddLWPolyline(p *entities.LWPolyline)
	AddInsert(i *entities.Insert)
	AddImage(i *entities.Image)
	AddImageDef(d *entities.ImageDef)
	LinkImage(d *entities.ImageDef)

	AddDimAligned(d *entities.Dimension)
	AddDimLinear(d *entities.Dimension)
	AddDimRadial(d *entities.Dimension)
	AddDimDiametric(d *entities.Dimension)
	AddDimAngular(d *entities.Dimension)

	// 以下类型只接收不转换
	AddDimAngular3P(d *entities.Dimension)
	AddDimOrdinate(d *entities.Dimension)
	AddPolyline(p *entities.Polyline)
	AddMText(m *entities.Unsupported)
	AddHatch(h *entities.Unsupported)
}
