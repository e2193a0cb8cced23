package dxfrw

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/entities"
)

var ErrNotStarted = errors.New("dxfrw: writer not started")

// FileWriter 把记录写成 DXF 文件，按记录类型自动开闭段与表
type FileWriter struct {
	out    io.Writer
	closer io.Closer
	w      *core.Writer

	version Version
	section string
	table   string
	block   *entities.Block
	handle  int
}

var _ Sink = (*FileWriter)(nil)

func NewFileWriter(out io.Writer) *FileWriter {
	return &FileWriter{out: out}
}

// Create 创建或截断文件
func Create(path string) (*FileWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	fw := NewFileWriter(file)
	fw.closer = file
	return fw, nil
}

func (fw *FileWriter) Close() error {
	if fw.closer == nil {
		return nil
	}
	return fw.closer.Close()
}

// Begin R12 的二进制格式组码只占 1 个字节
func (fw *FileWriter) Begin(version Version, binary bool) error {
	fw.version = version
	if binary {
		fw.w = core.NewBinaryWriter(fw.out, version == AC1009)
	} else {
		fw.w = core.NewWriter(fw.out)
	}
	fw.w.Markers = version.HasSubclassMarkers()
	fw.handle = 0x20
	return fw.w.Err()
}

func (fw *FileWriter) nextHandle() string {
	h := fmt.Sprintf("%X", fw.handle)
	fw.handle++
	return h
}

func (fw *FileWriter) closeBlock() {
	if fw.block != nil {
		fw.block.EncodeEnd(fw.w, fw.nextHandle())
		fw.block = nil
	}
}

func (fw *FileWriter) closeTable() {
	if fw.table != "" {
		fw.w.WriteString(0, "ENDTAB")
		fw.table = ""
	}
}

func (fw *FileWriter) closeSection() {
	fw.closeBlock()
	fw.closeTable()
	if fw.section != "" {
		fw.w.WriteString(0, "ENDSEC")
		fw.section = ""
	}
}

func (fw *FileWriter) openSection(name string) {
	if fw.section == name {
		return
	}
	fw.closeSection()
	fw.w.WriteString(0, "SECTION")
	fw.w.WriteString(2, name)
	fw.section = name
}

func (fw *FileWriter) openTable(name string) {
	fw.openSection("TABLES")
	if fw.table == name {
		return
	}
	fw.closeTable()
	fw.w.WriteString(0, "TABLE")
	fw.w.WriteString(2, name)
	if fw.w.Markers {
		fw.w.WriteString(5, fw.nextHandle())
	}
	fw.w.Subclass("AcDbSymbolTable")
	fw.w.WriteInt(70, 0)
	fw.table = name
}

func (fw *FileWriter) check() error {
	if fw.w == nil {
		return ErrNotStarted
	}
	return fw.w.Err()
}

func (fw *FileWriter) WriteHeader(h *entities.Header) error {
	if err := fw.check(); err != nil {
		return err
	}
	fw.openSection("HEADER")
	h.Encode(fw.w)
	fw.w.WriteString(9, "$HANDSEED")
	fw.w.WriteString(5, "FFFF")
	fw.closeSection()
	return fw.w.Err()
}

func (fw *FileWriter) tableRecord(table string, e *entities.TableEntry, r entities.Record) error {
	if err := fw.check(); err != nil {
		return err
	}
	fw.openTable(table)
	if fw.w.Markers && e.Handle == "" {
		e.Handle = fw.nextHandle()
	}
	r.Encode(fw.w)
	return fw.w.Err()
}

func (fw *FileWriter) WriteAppID(a *entities.AppID) error {
	return fw.tableRecord("APPID", &a.TableEntry, a)
}

func (fw *FileWriter) WriteLineType(lt *entities.LineType) error {
	return fw.tableRecord("LTYPE", &lt.TableEntry, lt)
}

func (fw *FileWriter) WriteLayer(l *entities.Layer) error {
	return fw.tableRecord("LAYER", &l.TableEntry, l)
}

// WriteBlockRecord R12 没有块表记录，直接忽略
func (fw *FileWriter) WriteBlockRecord(br *entities.BlockRecord) error {
	if err := fw.check(); err != nil || !fw.w.Markers {
		return err
	}
	return fw.tableRecord("BLOCK_RECORD", &br.TableEntry, br)
}

func (fw *FileWriter) WriteBlock(b *entities.Block) error {
	if err := fw.check(); err != nil {
		return err
	}
	fw.openSection("BLOCKS")
	fw.closeBlock()
	if fw.w.Markers && b.Handle == "" {
		b.Handle = fw.nextHandle()
	}
	b.Encode(fw.w)
	fw.block = b
	return fw.w.Err()
}

func (fw *FileWriter) EndBlock() error {
	if err := fw.check(); err != nil {
		return err
	}
	fw.closeBlock()
	return fw.w.Err()
}

// entity 块打开时写入块内，否则写入 ENTITIES 段
func (fw *FileWriter) entity(e entities.Entity) error {
	if err := fw.check(); err != nil {
		return err
	}
	if fw.block == nil {
		fw.openSection("ENTITIES")
	}
	if b := e.Common(); fw.w.Markers && b.Handle == "" {
		b.Handle = fw.nextHandle()
	}
	e.Encode(fw.w)
	return fw.w.Err()
}

func (fw *FileWriter) WritePoint(p *entities.Point) error           { return fw.entity(p) }
func (fw *FileWriter) WriteLine(l *entities.Line) error             { return fw.entity(l) }
func (fw *FileWriter) WriteCircle(c *entities.Circle) error         { return fw.entity(c) }
func (fw *FileWriter) WriteArc(a *entities.Arc) error               { return fw.entity(a) }
func (fw *FileWriter) WriteEllipse(e *entities.Ellipse) error       { return fw.entity(e) }
func (fw *FileWriter) WriteSpline(s *entities.Spline) error         { return fw.entity(s) }
func (fw *FileWriter) WriteText(t *entities.Text) error             { return fw.entity(t) }
func (fw *FileWriter) WriteLWPolyline(p *entities.LWPolyline) error { return fw.entity(p) }
func (fw *FileWriter) WriteImage(i *entities.Image) error           { return fw.entity(i) }
func (fw *FileWriter) WriteInsert(i *entities.Insert) error         { return fw.entity(i) }
func (fw *FileWriter) WriteDimension(d *entities.Dimension) error   { return fw.entity(d) }

// End 关闭所有打开的段并写出 EOF
func (fw *FileWriter) End() error {
	if err := fw.check(); err != nil {
		return err
	}
	if fw.section != "ENTITIES" {
		fw.openSection("ENTITIES")
	}
	fw.closeSection()
	fw.w.WriteString(0, "EOF")
	return fw.w.Flush()
}
