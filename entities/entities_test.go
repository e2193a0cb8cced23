package entities

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/meta"
)

func dxf(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// parse 读取第一条记录，返回记录与停下时的扫描器
func parse(t *testing.T, data string) (Entity, *core.Scanner) {
	t.Helper()
	s := core.NewScanner(strings.NewReader(data))
	require.True(t, s.Next())
	e := CreateEntity(s.LastTag.AsString())
	require.NotNil(t, e, "未注册的实体 %q", s.LastTag.Value)
	require.NoError(t, e.Parse(s))
	return e, s
}

func encode(r Record, markers bool) string {
	var buf bytes.Buffer
	w := core.NewWriter(&buf)
	w.Markers = markers
	r.Encode(w)
	_ = w.Flush()
	return buf.String()
}

func TestLine_ParseCommon(t *testing.T) {
	e, s := parse(t, dxf(
		"0", "LINE", "5", "2A", "8", "walls", "6", "DASHED", "62", "1", "370", "25",
		"10", "1", "20", "2", "30", "3", "11", "4", "21", "5", "31", "6",
		"0", "EOF",
	))
	line := e.(*Line)
	assert.Equal(t, "walls", line.Layer())
	assert.Equal(t, "2A", line.Handle)
	assert.Equal(t, "DASHED", line.LineType)
	assert.Equal(t, 1, line.Color)
	assert.Equal(t, meta.LineWeight(7), line.LWeight)
	assert.Equal(t, core.Point{X: 1, Y: 2, Z: 3}, line.Start)
	assert.Equal(t, core.Point{X: 4, Y: 5, Z: 6}, line.End)
	assert.True(t, s.LastTag.Is("EOF"), "应停在下一条记录上")
}

func TestLine_Defaults(t *testing.T) {
	e, _ := parse(t, dxf("0", "LINE", "8", "0", "10", "0", "20", "0", "11", "1", "21", "1"))
	b := e.Common()
	assert.Equal(t, meta.PatternByLayer, b.LineType)
	assert.Equal(t, meta.ColorByLayer, b.Color)
	assert.Equal(t, meta.LineWeightByLayer, b.LWeight)
}

func TestArc_Parse(t *testing.T) {
	e, _ := parse(t, dxf("0", "ARC", "8", "0", "10", "1", "20", "1", "40", "2.5", "50", "30", "51", "120"))
	arc := e.(*Arc)
	assert.Equal(t, "ARC", arc.Type())
	assert.Equal(t, 2.5, arc.Radius)
	assert.Equal(t, 30.0, arc.StartAngle)
	assert.Equal(t, 120.0, arc.EndAngle)
	assert.True(t, arc.IsCCW)
}

func TestSpline_Parse(t *testing.T) {
	e, _ := parse(t, dxf(
		"0", "SPLINE", "8", "0", "70", "8", "71", "3",
		"40", "0", "40", "0", "40", "1", "40", "1",
		"10", "0", "20", "0", "30", "0",
		"10", "5", "20", "5", "30", "0",
		"11", "1", "21", "2", "31", "0",
	))
	sp := e.(*Spline)
	assert.Equal(t, 3, sp.Degree)
	assert.Equal(t, []float64{0, 0, 1, 1}, sp.Knots)
	require.Len(t, sp.Controls, 2)
	assert.Equal(t, core.Point{X: 5, Y: 5}, sp.Controls[1])
	assert.Equal(t, []core.Point{{X: 1, Y: 2}}, sp.Fits)
	assert.Equal(t, core.Point{Z: 1}, sp.Normal)
}

func TestLWPolyline_Parse(t *testing.T) {
	e, _ := parse(t, dxf(
		"0", "LWPOLYLINE", "8", "0", "90", "2", "70", "1", "43", "0.5",
		"10", "0", "20", "0", "42", "1",
		"10", "10", "20", "0", "40", "0.2", "41", "0.3",
	))
	pl := e.(*LWPolyline)
	assert.True(t, pl.Closed())
	assert.Equal(t, 0.5, pl.Width)
	assert.Equal(t, []Vertex2D{
		{X: 0, Y: 0, Bulge: 1},
		{X: 10, Y: 0, StartWidth: 0.2, EndWidth: 0.3},
	}, pl.Vertices)
}

func TestInsert_Attributes(t *testing.T) {
	e, s := parse(t, dxf(
		"0", "INSERT", "8", "0", "66", "1", "2", "DOOR", "10", "1", "20", "2", "50", "90",
		"0", "ATTRIB", "8", "0", "2", "序号", "1", "A1", "40", "2.5",
		"0", "SEQEND", "8", "0",
		"0", "LINE",
	))
	ins := e.(*Insert)
	assert.Equal(t, "DOOR", ins.BlockName)
	assert.Equal(t, core.Point{X: 1, Y: 1, Z: 1}, ins.Scale)
	assert.Equal(t, 90.0, ins.Rotation)
	require.Len(t, ins.Attributes, 1)
	assert.Equal(t, "序号", ins.Attributes[0].Tag)
	assert.Equal(t, "A1", ins.Attributes[0].Text)
	assert.True(t, s.LastTag.Is("LINE"))
}

func TestInsert_TruncatedAttributes(t *testing.T) {
	e, s := parse(t, dxf("0", "INSERT", "66", "1", "2", "B", "0", "ATTRIB"))
	assert.Len(t, e.(*Insert).Attributes, 1)
	assert.True(t, s.Done())
}

func TestPolyline_SkipsVertices(t *testing.T) {
	e, s := parse(t, dxf(
		"0", "POLYLINE", "8", "0", "66", "1",
		"0", "VERTEX", "10", "0", "20", "0",
		"0", "VERTEX", "10", "1", "20", "1",
		"0", "SEQEND",
		"0", "CIRCLE",
	))
	assert.Equal(t, 2, e.(*Polyline).Vertices)
	assert.True(t, s.LastTag.Is("CIRCLE"))
}

func TestDimension_Parse(t *testing.T) {
	e, _ := parse(t, dxf(
		"0", "DIMENSION", "8", "0", "70", "33", "1", "<>", "3", "ISO-25", "42", "12.5",
		"10", "1", "20", "2", "11", "3", "21", "4", "13", "5", "23", "6", "14", "7", "24", "8",
		"15", "9", "25", "10", "16", "11", "26", "12", "50", "45", "52", "15", "53", "5",
		"71", "2", "72", "2", "41", "1.5",
	))
	d := e.(*Dimension)
	assert.Equal(t, DimAligned, d.DimType)
	assert.Equal(t, 33, d.Flags)
	assert.Equal(t, "ISO-25", d.StyleName)
	assert.Equal(t, core.Point{X: 5, Y: 6}, d.MeasureStart)
	assert.Equal(t, core.Point{X: 9, Y: 10}, d.Point15)
	assert.Equal(t, core.Point{X: 11, Y: 12}, d.ArcPoint)
	assert.Equal(t, 45.0, d.Angle)
	assert.Equal(t, 15.0, d.Oblique)
	assert.Equal(t, 5.0, d.TextAngle)
	assert.Equal(t, 2, d.Attachment)
	assert.Equal(t, 1.5, d.LineFactor)
	assert.Equal(t, 12.5, d.CleanValue())
}

func TestDimension_CleanValue(t *testing.T) {
	d := &Dimension{Text: `\A1;250`}
	assert.Equal(t, 250.0, d.CleanValue())
}

func TestImage_Parse(t *testing.T) {
	e, _ := parse(t, dxf(
		"0", "IMAGE", "8", "0", "10", "1", "20", "1", "11", "0.1", "21", "0", "12", "0", "22", "0.1",
		"13", "640", "23", "480", "340", "7", "281", "60",
	))
	im := e.(*Image)
	assert.Equal(t, "7", im.Ref)
	assert.Equal(t, 640.0, im.SizeU)
	assert.Equal(t, 480.0, im.SizeV)
	assert.Equal(t, 60, im.Brightness)
	assert.Equal(t, 50, im.Contrast)
}

func TestHandleKey(t *testing.T) {
	assert.Equal(t, "2A", HandleKey(" 002a"))
	assert.Equal(t, HandleKey("7"), HandleKey("07"))
}

func TestTableRecords_Parse(t *testing.T) {
	s := core.NewScanner(strings.NewReader(dxf(
		"0", "LAYER", "5", "10", "2", "walls", "70", "1", "62", "-3", "6", "DASHED", "370", "50",
		"0", "LTYPE", "2", "DASHED", "3", "Dashed __ __", "72", "65", "73", "2", "40", "19.05", "49", "12.7", "49", "-6.35",
		"0", "ENDTAB",
	)))
	require.True(t, s.Next())
	layer := NewTableRecord("LAYER").(*Layer)
	require.NoError(t, layer.Parse(s))
	assert.Equal(t, "walls", layer.Name)
	assert.True(t, layer.Frozen())
	assert.True(t, layer.Off())
	assert.Equal(t, "DASHED", layer.LineType)
	assert.Equal(t, meta.LineWeight(11), layer.LWeight)

	lt := NewTableRecord("LTYPE").(*LineType)
	require.NoError(t, lt.Parse(s))
	assert.Equal(t, "DASHED", lt.Name)
	assert.Equal(t, "Dashed __ __", lt.Description)
	assert.Equal(t, 19.05, lt.Length)
	assert.Equal(t, []float64{12.7, -6.35}, lt.Path)
	assert.True(t, s.LastTag.Is("ENDTAB"))

	assert.Nil(t, NewTableRecord("VIEW"))
}

func TestHeader_Parse(t *testing.T) {
	s := core.NewScanner(strings.NewReader(dxf(
		"9", "$ACADVER", "1", "AC1015",
		"9", "$INSUNITS", "70", "4",
		"9", "$EXTMIN", "10", "-1", "20", "-2", "30", "0",
		"9", "$LTSCALE", "40", "1",
		"0", "ENDSEC",
	)))
	require.True(t, s.Next())
	var h Header
	require.NoError(t, h.Parse(s))
	assert.Equal(t, "AC1015", h.Version)
	assert.Equal(t, 4, h.InsUnits)
	assert.True(t, h.HasUnits)
	assert.False(t, h.HasAngle)
	assert.Equal(t, core.Point{X: -1, Y: -2}, h.ExtMin)
	assert.True(t, s.LastTag.Is("ENDSEC"))
}

func TestEncode_CommonAttributes(t *testing.T) {
	l := &Line{BaseEntity: NewBase("LINE"), End: core.Point{X: 1}}
	l.LayerName = "walls"
	got := encode(l, false)
	assert.Equal(t, dxf(
		"  0", "LINE", "  8", "walls",
		" 10", "0.0", " 20", "0.0", " 30", "0.0",
		" 11", "1.0", " 21", "0.0", " 31", "0.0",
	), got)

	l.Color, l.LineType, l.LWeight = 1, "DASHED", 5
	got = encode(l, true)
	assert.Contains(t, got, "100\nAcDbEntity\n")
	assert.Contains(t, got, "100\nAcDbLine\n")
	assert.Contains(t, got, "  6\nDASHED\n")
	assert.Contains(t, got, " 62\n1\n")
	assert.Contains(t, got, "370\n18\n")
}

func TestEncode_AttributeOnly(t *testing.T) {
	d := CreateEntity("DIMENSION").(*Dimension)
	d.DefPoint = core.Point{X: 3}
	got := encode(d, false)
	assert.Equal(t, dxf("  0", "DIMENSION", "  8", "0", " 70", "0"), got)

	im := CreateEntity("IMAGE").(*Image)
	im.Color = 3
	assert.Equal(t, dxf("  0", "IMAGE", "  8", "0", " 62", "3"), encode(im, false))
}

func TestEncode_LineType(t *testing.T) {
	lt := &LineType{TableEntry: TableEntry{Name: "DOT"}, Description: "Dot . . .", Length: 6.35, Path: []float64{0, -6.35}}
	assert.Equal(t, dxf(
		"  0", "LTYPE", "  2", "DOT", " 70", "0", "  3", "Dot . . .",
		" 72", "65", " 73", "2", " 40", "6.35", " 49", "0.0", " 49", "-6.35",
	), encode(lt, false))
}

func TestEncode_Block(t *testing.T) {
	b := NewBlock("B")
	b.Base = core.Point{X: 1, Y: 2}
	var buf bytes.Buffer
	w := core.NewWriter(&buf)
	b.Encode(w)
	b.EncodeEnd(w, "")
	require.NoError(t, w.Flush())
	assert.Equal(t, dxf(
		"  0", "BLOCK", "  8", "0", "  2", "B", " 70", "0",
		" 10", "1.0", " 20", "2.0", " 30", "0.0", "  3", "B", "  1", "",
		"  0", "ENDBLK", "  8", "0",
	), buf.String())
}
