package dxfrw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/meta"
)

// dxf 每两行组成一个标签
func dxf(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var drawing = dxf(
	"0", "SECTION", "2", "HEADER",
	"9", "$ACADVER", "1", "AC1015",
	"9", "$INSUNITS", "70", "6",
	"9", "$AUNITS", "70", "2",
	"0", "ENDSEC",
	"0", "SECTION", "2", "CLASSES",
	"0", "CLASS", "1", "IGNORED",
	"0", "ENDSEC",
	"0", "SECTION", "2", "TABLES",
	"0", "TABLE", "2", "LTYPE", "70", "1",
	"0", "LTYPE", "2", "DASHED", "3", "Dashed", "72", "65", "73", "2", "40", "0.75", "49", "0.5", "49", "-0.25",
	"0", "ENDTAB",
	"0", "TABLE", "2", "LAYER", "70", "3",
	"0", "LAYER", "2", "0", "70", "0", "62", "7", "6", "CONTINUOUS",
	"0", "LAYER", "2", "walls", "70", "1", "62", "-1", "6", "DASHED", "370", "18",
	"0", "LAYER", "2", "*Model_Space", "70", "0", "62", "7",
	"0", "ENDTAB",
	"0", "TABLE", "2", "STYLE", "70", "1",
	"0", "STYLE", "2", "STANDARD",
	"0", "ENDTAB",
	"0", "ENDSEC",
	"0", "SECTION", "2", "BLOCKS",
	"0", "BLOCK", "8", "0", "2", "B", "70", "0", "10", "1.0", "20", "0.0", "30", "0.0", "3", "B",
	"0", "LINE", "8", "0", "10", "0", "20", "0", "30", "0", "11", "1", "21", "1", "31", "0",
	"0", "ENDBLK", "8", "0",
	"0", "ENDSEC",
	"0", "SECTION", "2", "ENTITIES",
	"0", "CIRCLE", "8", "walls", "62", "1", "10", "2", "20", "3", "30", "0", "40", "4",
	"0", "INSERT", "8", "0", "2", "B", "10", "5", "20", "5", "30", "0", "50", "90",
	"0", "IMAGE", "8", "0", "10", "0", "20", "0", "30", "0", "13", "64", "23", "32", "340", "2A",
	"0", "DIMENSION", "8", "0", "70", "35", "10", "1", "20", "0", "30", "0", "15", "-1", "25", "0", "35", "0",
	"0", "DIMENSION", "8", "0", "70", "6", "10", "1", "20", "0", "30", "0",
	"0", "MTEXT", "8", "0", "1", "discarded",
	"0", "WIPEOUT", "8", "0",
	"0", "LINE", "8", "missing", "10", "0", "20", "0", "30", "0", "11", "1", "21", "1", "31", "0",
	"0", "ENDSEC",
	"0", "SECTION", "2", "OBJECTS",
	"0", "DICTIONARY", "5", "C",
	"0", "IMAGEDEF", "5", "2A", "1", "plan.png", "10", "64", "20", "32",
	"0", "ENDSEC",
	"0", "EOF",
)

func TestLoad(t *testing.T) {
	doc := document.New()
	im := NewImporter(doc, ImportOptions{})
	require.NoError(t, Load(strings.NewReader(drawing), im))
	summary, err := im.Finish()
	require.NoError(t, err)

	assert.Equal(t, meta.UnitsMeter, doc.Units)
	assert.Equal(t, meta.Gradians, doc.AngleFormat)

	require.Len(t, doc.Layers(), 2)
	walls := doc.LayerByName("walls")
	require.NotNil(t, walls)
	assert.True(t, walls.Frozen)
	assert.Equal(t, 1, walls.Color.Index)
	assert.Equal(t, 0.18, walls.LineWidth.Width)
	require.NotNil(t, walls.LinePattern)
	assert.Equal(t, []float64{0.5, -0.25}, walls.LinePattern.Path)

	block := doc.BlockByName("B")
	require.NotNil(t, block)
	assert.Equal(t, 1.0, block.Base.X)
	require.Len(t, doc.EntitiesByBlock(block), 1)
	assert.IsType(t, &document.Line{}, doc.EntitiesByBlock(block)[0])

	model := doc.EntitiesByBlock(nil)
	require.Len(t, model, 4)
	circle := model[0].(*document.Circle)
	assert.Equal(t, 4.0, circle.Radius)
	c, ok := circle.MetaInfo().Color()
	require.True(t, ok)
	assert.Equal(t, 1, c.Index)

	ins := model[1].(*document.Insert)
	assert.Same(t, block, ins.DisplayBlock)

	// 图像在 OBJECTS 段中链接，排在标注之后
	dia := model[2].(*document.DimDiametric)
	assert.Equal(t, -1.0, dia.DefinitionPoint.X)
	img := model[3].(*document.Image)
	assert.Equal(t, "plan.png", img.Name)
	assert.Equal(t, 64.0, img.Width)

	assert.Equal(t, 5, summary.Added)
	assert.Equal(t, 1, summary.Dropped)
	assert.Equal(t, 2, summary.Discarded)
	assert.Empty(t, summary.UnresolvedImages)
}

func TestLoadTruncated(t *testing.T) {
	doc := document.New()
	im := NewImporter(doc, ImportOptions{})
	input := dxf(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "0",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "0", "11", "2",
		"0", "INSERT", "8", "0", "2", "B", "66", "1",
		"0", "ATTRIB", "8", "0", "2", "TAG",
	)
	require.NoError(t, Load(strings.NewReader(input), im))
	summary, err := im.Finish()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, []string{"B"}, summary.UnresolvedInserts)
}

func TestLoadLineWeightOutOfRange(t *testing.T) {
	thin := meta.LineWidth{Width: 0.05}
	doc := document.New()
	im := NewImporter(doc, ImportOptions{DefaultLineWidth: &thin})
	input := dxf(
		"0", "SECTION", "2", "TABLES",
		"0", "TABLE", "2", "LAYER",
		"0", "LAYER", "2", "0", "370", "250",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "0", "370", "250",
		"0", "LINE", "8", "0", "370", "-3",
		"0", "ENDSEC",
		"0", "EOF",
	)
	require.NoError(t, Load(strings.NewReader(input), im))
	_, err := im.Finish()
	require.NoError(t, err)

	// 图层线宽无法解析时取 0 号宽度
	assert.Equal(t, meta.LineWidth{}, doc.LayerByName("0").LineWidth)

	list := doc.Entities()
	require.Len(t, list, 2)
	w, ok := list[0].MetaInfo().LineWidth()
	require.True(t, ok)
	assert.Equal(t, thin, w)
	assert.Nil(t, list[1].MetaInfo(), "DEFAULT is not an explicit width")
}

func TestOpenMissingFile(t *testing.T) {
	err := Open(t.TempDir()+"/missing.dxf", NewImporter(document.New(), ImportOptions{}))
	assert.Error(t, err)
}
