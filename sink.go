package dxfrw

import "github.com/zooyer/dxfrw/entities"

// Sink 导出时按顺序接收每条记录，调用顺序即写出顺序
type Sink interface {
	Begin(version Version, binary bool) error
	WriteHeader(h *entities.Header) error
	WriteAppID(a *entities.AppID) error
	WriteLineType(lt *entities.LineType) error
	WriteLayer(l *entities.Layer) error
	WriteBlockRecord(br *entities.BlockRecord) error
	WriteBlock(b *entities.Block) error
	EndBlock() error

	WritePoint(p *entities.Point) error
	WriteLine(l *entities.Line) error
	WriteCircle(c *entities.Circle) error
	WriteArc(a *entities.Arc) error
	WriteEllipse(e *entities.Ellipse) error
	WriteSpline(s *entities.Spline) error
	WriteText(t *entities.Text) error
	WriteLWPolyline(p *entities.LWPolyline) error
	WriteImage(i *entities.Image) error
	WriteInsert(i *entities.Insert) error
	WriteDimension(d *entities.Dimension) error

	End() error
}
