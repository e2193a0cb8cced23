package dxfrw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/entities"
)

// tags 把文本输出拆成 "code value" 形式
func tags(out string) []string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var list []string
	for i := 0; i+1 < len(lines); i += 2 {
		list = append(list, strings.TrimSpace(lines[i])+" "+lines[i+1])
	}
	return list
}

func writeSample(t *testing.T, fw *FileWriter, version Version) {
	t.Helper()
	require.NoError(t, fw.Begin(version, false))
	require.NoError(t, fw.WriteHeader(&entities.Header{Version: string(version)}))
	require.NoError(t, fw.WriteAppID(&entities.AppID{TableEntry: entities.TableEntry{Name: "DXFRW"}}))
	require.NoError(t, fw.WriteLayer(entities.NewLayer("0")))
	require.NoError(t, fw.WriteBlockRecord(&entities.BlockRecord{TableEntry: entities.TableEntry{Name: "B"}}))
	require.NoError(t, fw.WriteBlock(entities.NewBlock("B")))
	l := entities.CreateEntity("LINE").(*entities.Line)
	require.NoError(t, fw.WriteLine(l))
	require.NoError(t, fw.EndBlock())
	require.NoError(t, fw.WriteCircle(entities.CreateEntity("CIRCLE").(*entities.Circle)))
	require.NoError(t, fw.End())
}

func TestFileWriterR12(t *testing.T) {
	var buf bytes.Buffer
	writeSample(t, NewFileWriter(&buf), AC1009)
	list := tags(buf.String())

	assert.Equal(t, []string{"0 SECTION", "2 HEADER", "9 $ACADVER", "1 AC1009"}, list[:4])
	assert.NotContains(t, list, "0 BLOCK_RECORD")
	assert.NotContains(t, list, "100 AcDbEntity")
	assert.Contains(t, list, "0 ENDBLK")
	assert.Equal(t, []string{"0 ENDSEC", "0 EOF"}, list[len(list)-2:])

	// 圆在 ENTITIES 段中，块内的直线在 BLOCKS 段中
	text := buf.String()
	blocks := strings.Index(text, "BLOCKS")
	ents := strings.Index(text, "ENTITIES")
	require.True(t, blocks > 0 && ents > blocks)
	assert.Less(t, strings.Index(text, "LINE"), ents)
	assert.Greater(t, strings.Index(text, "CIRCLE"), ents)
}

func TestFileWriterR2000(t *testing.T) {
	var buf bytes.Buffer
	writeSample(t, NewFileWriter(&buf), AC1015)
	list := tags(buf.String())

	assert.Contains(t, list, "0 BLOCK_RECORD")
	assert.Contains(t, list, "100 AcDbEntity")
	assert.Contains(t, list, "100 AcDbSymbolTable")
	assert.Contains(t, list, "9 $HANDSEED")
	assert.Contains(t, list, "5 20", "handles start at 0x20")
	assert.Equal(t, "0 EOF", list[len(list)-1])

	// 每个表只打开一次
	n := 0
	for _, tag := range list {
		if tag == "0 TABLE" {
			n++
		}
	}
	assert.Equal(t, 3, n)
}

func TestFileWriterReadBack(t *testing.T) {
	var buf bytes.Buffer
	writeSample(t, NewFileWriter(&buf), AC1015)

	h := &recordingHandler{}
	require.NoError(t, Load(&buf, h))
	assert.Equal(t, []string{"HEADER", "LAYER", "BLOCK", "LINE", "ENDBLK", "CIRCLE"}, h.calls)
}

func TestFileWriterBinary(t *testing.T) {
	var r12, r2000 bytes.Buffer
	for _, c := range []struct {
		buf     *bytes.Buffer
		version Version
	}{{&r12, AC1009}, {&r2000, AC1015}} {
		fw := NewFileWriter(c.buf)
		require.NoError(t, fw.Begin(c.version, true))
		require.NoError(t, fw.WritePoint(entities.CreateEntity("POINT").(*entities.Point)))
		require.NoError(t, fw.End())
	}

	require.True(t, bytes.HasPrefix(r12.Bytes(), []byte(core.BinarySentinel)))
	require.True(t, bytes.HasPrefix(r2000.Bytes(), []byte(core.BinarySentinel)))

	n := len(core.BinarySentinel)
	assert.Equal(t, append([]byte{0}, "SECTION\x00"...), r12.Bytes()[n:n+9], "1-byte codes for R12")
	assert.Equal(t, append([]byte{0, 0}, "SECTION\x00"...), r2000.Bytes()[n:n+10], "2-byte codes otherwise")
}

func TestFileWriterNotStarted(t *testing.T) {
	fw := NewFileWriter(&bytes.Buffer{})
	assert.ErrorIs(t, fw.WriteLine(entities.CreateEntity("LINE").(*entities.Line)), ErrNotStarted)
	assert.ErrorIs(t, fw.End(), ErrNotStarted)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFileWriterFailure(t *testing.T) {
	fw := NewFileWriter(failingWriter{})
	require.NoError(t, fw.Begin(AC1015, false))
	assert.EqualError(t, fw.End(), "disk full")
}

// recordingHandler 只记录回调顺序
type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) add(name string) { h.calls = append(h.calls, name) }

func (h *recordingHandler) AddHeader(*entities.Header)          { h.add("HEADER") }
func (h *recordingHandler) AddLineType(*entities.LineType)      { h.add("LTYPE") }
func (h *recordingHandler) AddLayer(*entities.Layer)            { h.add("LAYER") }
func (h *recordingHandler) BeginBlock(*entities.Block)          { h.add("BLOCK") }
func (h *recordingHandler) EndBlock()                           { h.add("ENDBLK") }
func (h *recordingHandler) AddPoint(*entities.Point)            { h.add("POINT") }
func (h *recordingHandler) AddLine(*entities.Line)              { h.add("LINE") }
func (h *recordingHandler) AddCircle(*entities.Circle)          { h.add("CIRCLE") }
func (h *recordingHandler) AddArc(*entities.Arc)                { h.add("ARC") }
func (h *recordingHandler) AddEllipse(*entities.Ellipse)        { h.add("ELLIPSE") }
func (h *recordingHandler) AddSpline(*entities.Spline)          { h.add("SPLINE") }
func (h *recordingHandler) AddText(*entities.Text)              { h.add("TEXT") }
func (h *recordingHandler) AddLWPolyline(*entities.LWPolyline)  { h.add("LWPOLYLINE") }
func (h *recordingHandler) AddInsert(*entities.Insert)          { h.add("INSERT") }
func (h *recordingHandler) AddImage(*entities.Image)            { h.add("IMAGE") }
func (h *recordingHandler) AddImageDef(*entities.ImageDef)      { h.add("IMAGEDEF") }
func (h *recordingHandler) LinkImage(*entities.ImageDef)        { h.add("LINK") }
func (h *recordingHandler) AddDimAligned(*entities.Dimension)   { h.add("DIM_ALIGNED") }
func (h *recordingHandler) AddDimLinear(*entities.Dimension)    { h.add("DIM_LINEAR") }
func (h *recordingHandler) AddDimRadial(*entities.Dimension)    { h.add("DIM_RADIAL") }
func (h *recordingHandler) AddDimDiametric(*entities.Dimension) { h.add("DIM_DIAMETRIC") }
func (h *recordingHandler) AddDimAngular(*entities.Dimension)   { h.add("DIM_ANGULAR") }
func (h *recordingHandler) AddDimAngular3P(*entities.Dimension) { h.add("DIM_ANGULAR3P") }
func (h *recordingHandler) AddDimOrdinate(*entities.Dimension)  { h.add("DIM_ORDINATE") }
func (h *recordingHandler) AddPolyline(*entities.Polyline)      { h.add("POLYLINE") }
func (h *recordingHandler) AddMText(*entities.Unsupported)      { h.add("MTEXT") }
func (h *recordingHandler) AddHatch(*entities.Unsupported)      { h.add("HATCH") }
