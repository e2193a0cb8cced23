// Package record 在内存中记录导出的记录流，用于测试与转储
package record

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zooyer/dxfrw"
	"github.com/zooyer/dxfrw/entities"
)

// 记录类型
const (
	KindBegin       = "BEGIN"
	KindHeader      = "HEADER"
	KindAppID       = "APPID"
	KindLineType    = "LTYPE"
	KindLayer       = "LAYER"
	KindBlockRecord = "BLOCK_RECORD"
	KindBlock       = "BLOCK"
	KindEndBlock    = "ENDBLK"
	KindEnd         = "END"
)

type Record struct {
	Kind string `msgpack:"kind"`
	Name string `msgpack:"name,omitempty"` // 表记录名或实体所在图层
	Data any    `msgpack:"data,omitempty"`
}

// Begin 的参数
type Begin struct {
	Version dxfrw.Version `msgpack:"version"`
	Binary  bool          `msgpack:"binary"`
}

// Recorder 按调用顺序保存记录
type Recorder struct {
	Records []Record
}

var _ dxfrw.Sink = (*Recorder)(nil)

func (r *Recorder) add(kind, name string, data any) error {
	r.Records = append(r.Records, Record{Kind: kind, Name: name, Data: data})
	return nil
}

// Kinds 记录类型序列
func (r *Recorder) Kinds() []string {
	kinds := make([]string, len(r.Records))
	for i, rec := range r.Records {
		kinds[i] = rec.Kind
	}
	return kinds
}

// Of 指定类型的全部记录
func (r *Recorder) Of(kind string) []Record {
	var list []Record
	for _, rec := range r.Records {
		if rec.Kind == kind {
			list = append(list, rec)
		}
	}
	return list
}

func (r *Recorder) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(r.Records)
}

// Dump 以 msgpack 写出全部记录
func (r *Recorder) Dump(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(r.Records)
}

func (r *Recorder) Begin(version dxfrw.Version, binary bool) error {
	r.Records = r.Records[:0]
	return r.add(KindBegin, string(version), Begin{Version: version, Binary: binary})
}

func (r *Recorder) WriteHeader(h *entities.Header) error { return r.add(KindHeader, h.Version, h) }
func (r *Recorder) WriteAppID(a *entities.AppID) error   { return r.add(KindAppID, a.Name, a) }
func (r *Recorder) WriteLayer(l *entities.Layer) error   { return r.add(KindLayer, l.Name, l) }
func (r *Recorder) WriteBlock(b *entities.Block) error   { return r.add(KindBlock, b.Name, b) }
func (r *Recorder) EndBlock() error                      { return r.add(KindEndBlock, "", nil) }

func (r *Recorder) WriteLineType(lt *entities.LineType) error {
	return r.add(KindLineType, lt.Name, lt)
}

func (r *Recorder) WriteBlockRecord(br *entities.BlockRecord) error {
	return r.add(KindBlockRecord, br.Name, br)
}

func (r *Recorder) entity(e entities.Entity) error { return r.add(e.Type(), e.Layer(), e) }

func (r *Recorder) WritePoint(p *entities.Point) error           { return r.entity(p) }
func (r *Recorder) WriteLine(l *entities.Line) error             { return r.entity(l) }
func (r *Recorder) WriteCircle(c *entities.Circle) error         { return r.entity(c) }
func (r *Recorder) WriteArc(a *entities.Arc) error               { return r.entity(a) }
func (r *Recorder) WriteEllipse(e *entities.Ellipse) error       { return r.entity(e) }
func (r *Recorder) WriteSpline(s *entities.Spline) error         { return r.entity(s) }
func (r *Recorder) WriteText(t *entities.Text) error             { return r.entity(t) }
func (r *Recorder) WriteLWPolyline(p *entities.LWPolyline) error { return r.entity(p) }
func (r *Recorder) WriteImage(i *entities.Image) error           { return r.entity(i) }
func (r *Recorder) WriteInsert(i *entities.Insert) error         { return r.entity(i) }
func (r *Recorder) WriteDimension(d *entities.Dimension) error   { return r.entity(d) }

func (r *Recorder) End() error { return r.add(KindEnd, "", nil) }
