package dxfrw_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfrw"
	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/entities"
	"github.com/zooyer/dxfrw/meta"
	"github.com/zooyer/dxfrw/record"
)

func dashedLine() *entities.Line {
	l := entities.CreateEntity("LINE").(*entities.Line)
	l.End = core.Point{X: 1}
	l.LWeight = meta.FromDXF(18)
	l.Color = 3
	l.LineType = "DASHED"
	return l
}

func circle(x, y, r float64) *entities.Circle {
	c := entities.CreateEntity("CIRCLE").(*entities.Circle)
	c.Center = core.Point{X: x, Y: y}
	c.Radius = r
	return c
}

// importDrawing 图层 0，块 B 中有一条带显式属性的直线，模型空间中有一个圆
func importDrawing(t *testing.T) *document.Document {
	t.Helper()
	doc := document.New()
	im := dxfrw.NewImporter(doc, dxfrw.ImportOptions{})
	im.AddLineType(&entities.LineType{TableEntry: entities.TableEntry{Name: "DASHED"}, Path: []float64{0.5, -0.25}})
	im.AddLayer(entities.NewLayer("0"))
	im.BeginBlock(entities.NewBlock("B"))
	im.AddLine(dashedLine())
	im.EndBlock()
	im.AddCircle(circle(5, 5, 1))

	summary, err := im.Finish()
	require.NoError(t, err)
	require.Equal(t, 2, summary.Added)
	return doc
}

func TestImportExport(t *testing.T) {
	doc := importDrawing(t)
	rec := &record.Recorder{}
	require.NoError(t, dxfrw.NewExporter(doc, nil).Write(rec, dxfrw.AC1015, false))

	want := []string{record.KindBegin, record.KindHeader, record.KindAppID}
	for i := 0; i < 21; i++ {
		want = append(want, record.KindLineType)
	}
	want = append(want,
		record.KindLayer,
		record.KindBlockRecord,
		record.KindBlock, "LINE", record.KindEndBlock,
		"CIRCLE",
		record.KindEnd,
	)
	if diff := cmp.Diff(want, rec.Kinds()); diff != "" {
		t.Fatalf("record kinds (-want +got):\n%s", diff)
	}

	// 370=18 导入为索引 5，导出时仍为索引 5
	line := rec.Of("LINE")[0].Data.(*entities.Line)
	assert.Equal(t, meta.LineWeight(5), line.LWeight)
	assert.Equal(t, 3, line.Color)
	assert.Equal(t, "DASHED", line.LineType)

	c := rec.Of("CIRCLE")[0].Data.(*entities.Circle)
	assert.Equal(t, meta.LineWeightByLayer, c.LWeight)
	assert.Equal(t, meta.ColorByLayer, c.Color)
}

func TestImportExportFile(t *testing.T) {
	doc := importDrawing(t)
	path := filepath.Join(t.TempDir(), "out.dxf")
	require.NoError(t, dxfrw.NewExporter(doc, nil).WriteDXF(path, dxfrw.DXF_R2000))

	back := document.New()
	summary, err := dxfrw.Import(path, back, dxfrw.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Added)

	block := back.BlockByName("B")
	require.NotNil(t, block)
	members := back.EntitiesByBlock(block)
	require.Len(t, members, 1)
	line := members[0].(*document.Line)

	info := line.MetaInfo()
	require.NotNil(t, info)
	w, ok := info.LineWidth()
	require.True(t, ok)
	assert.Equal(t, 5, meta.WidthToInt(w.Width))
	c, ok := info.Color()
	require.True(t, ok)
	assert.Equal(t, 3, c.Index)
	lp := info.LinePattern()
	require.NotNil(t, lp)
	assert.Equal(t, "DASHED", lp.Name)

	model := back.EntitiesByBlock(nil)
	require.Len(t, model, 1)
	assert.Nil(t, model[0].MetaInfo())
}

func TestSplineKnotsRoundTrip(t *testing.T) {
	doc := document.New()
	im := dxfrw.NewImporter(doc, dxfrw.ImportOptions{})
	im.AddLayer(entities.NewLayer("0"))
	sp := entities.CreateEntity("SPLINE").(*entities.Spline)
	sp.Degree = 2
	sp.Knots = []float64{0, 0, 0, 1, 1, 1}
	sp.Controls = []core.Point{{}, {X: 1, Y: 1}, {X: 2}}
	im.AddSpline(sp)
	_, err := im.Finish()
	require.NoError(t, err)

	// 多次导出再导入，节点不会继续减少
	for round := 0; round < 2; round++ {
		path := filepath.Join(t.TempDir(), "spline.dxf")
		require.NoError(t, dxfrw.NewExporter(doc, nil).WriteDXF(path, dxfrw.DXF_R2000))

		back := document.New()
		_, err = dxfrw.Import(path, back, dxfrw.ImportOptions{})
		require.NoError(t, err)
		require.Len(t, back.Entities(), 1)
		assert.Equal(t, []float64{0, 0, 1, 1}, back.Entities()[0].(*document.Spline).Knots, "round %d", round)
		doc = back
	}
}

func TestRedefinedBlockExport(t *testing.T) {
	doc := document.New()
	im := dxfrw.NewImporter(doc, dxfrw.ImportOptions{})
	im.AddLayer(entities.NewLayer("0"))

	far := entities.CreateEntity("LINE").(*entities.Line)
	far.End = core.Point{X: 100}
	im.BeginBlock(entities.NewBlock("B"))
	im.AddLine(far)
	im.EndBlock()

	ins := entities.NewInsert()
	ins.BlockName = "B"
	im.AddInsert(ins)

	im.BeginBlock(entities.NewBlock("B"))
	im.AddCircle(circle(0, 0, 1))
	im.EndBlock()

	summary, err := im.Finish()
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, summary.RedefinedBlocks)

	rec := &record.Recorder{}
	require.NoError(t, dxfrw.NewExporter(doc, nil).Write(rec, dxfrw.AC1015, false))
	kinds := rec.Kinds()
	assert.Equal(t, []string{
		record.KindBlock, "CIRCLE", record.KindEndBlock, "INSERT", record.KindEnd,
	}, kinds[len(kinds)-5:])
	assert.NotContains(t, kinds, "LINE")

	// 范围只包含最后一次定义的几何
	header := rec.Of(record.KindHeader)[0].Data.(*entities.Header)
	assert.Equal(t, core.Point{X: -1, Y: -1}, header.ExtMin)
	assert.Equal(t, core.Point{X: 1, Y: 1}, header.ExtMax)
}
