package dxfrw

import "github.com/zooyer/dxfrw/entities"

// lineTypes 每次导出都会写出的标准线型表
var lineTypes = []struct {
	name, desc string
	length     float64
	path       []float64
}{
	{"CONTINUOUS", "Solid line", 0, nil},
	{"ByLayer", "Solid line", 0, nil},
	{"ByBlock", "Solid line", 0, nil},
	{"DOT", "Dot . . . . . . . . . . . . . . . . . . . . . .", 6.35, []float64{0, -6.35}},
	{"DOT2", "Dot (.5x) .....................................", 3.175, []float64{0, -3.175}},
	{"DOTX2", "Dot (2x) .  .  .  .  .  .  .  .  .  .  .  .  .", 12.7, []float64{0, -12.7}},
	{"DASHED", "Dashed _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _", 19.05, []float64{12.7, -6.35}},
	{"DASHED2", "Dashed (.5x) _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _", 9.525, []float64{6.35, -3.175}},
	{"DASHEDX2", "Dashed (2x) ____  ____  ____  ____  ____  ___", 38.1, []float64{25.4, -12.7}},
	{"DASHDOT", "Dash dot __ . __ . __ . __ . __ . __ . __ . __", 25.4, []float64{12.7, -6.35, 0, -6.35}},
	{"DASHDOT2", "Dash dot (.5x) _._._._._._._._._._._._._._._.", 12.7, []float64{6.35, -3.175, 0, -3.175}},
	{"DASHDOTX2", "Dash dot (2x) ____  .  ____  .  ____  .  ___", 50.8, []float64{25.4, -12.7, 0, -12.7}},
	{"DIVIDE", "Divide ____ . . ____ . . ____ . . ____ . . ____", 31.75, []float64{12.7, -6.35, 0, -6.35, 0, -6.35}},
	{"DIVIDE2", "Divide (.5x) __..__..__..__..__..__..__..__.._", 15.875, []float64{6.35, -3.175, 0, -3.175, 0, -3.175}},
	{"DIVIDEX2", "Divide (2x) ________  .  .  ________  .  .  _", 63.5, []float64{25.4, -12.7, 0, -12.7, 0, -12.7}},
	{"BORDER", "Border __ __ . __ __ . __ __ . __ __ . __ __ .", 44.45, []float64{12.7, -6.35, 12.7, -6.35, 0, -6.35}},
	{"BORDER2", "Border (.5x) __.__.__.__.__.__.__.__.__.__.__.", 22.225, []float64{6.35, -3.175, 6.35, -3.175, 0, -3.175}},
	{"BORDERX2", "Border (2x) ____  ____  .  ____  ____  .  ___", 88.9, []float64{25.4, -12.7, 25.4, -12.7, 0, -12.7}},
	{"CENTER", "Center ____ _ ____ _ ____ _ ____ _ ____ _ ____", 50.8, []float64{31.75, -6.35, 6.35, -6.35}},
	{"CENTER2", "Center (.5x) ___ _ ___ _ ___ _ ___ _ ___ _ ___", 28.575, []float64{19.05, -3.175, 3.175, -3.175}},
	{"CENTERX2", "Center (2x) ________  __  ________  __  _____", 101.6, []float64{63.5, -12.7, 12.7, -12.7}},
}

// LineTypeCatalogue 标准线型表的副本
func LineTypeCatalogue() []*entities.LineType {
	list := make([]*entities.LineType, 0, len(lineTypes))
	for _, lt := range lineTypes {
		list = append(list, &entities.LineType{
			TableEntry:  entities.TableEntry{Name: lt.name},
			Description: lt.desc,
			Length:      lt.length,
			Path:        append([]float64(nil), lt.path...),
		})
	}
	return list
}
