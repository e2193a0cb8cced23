package dxfrw

import "github.com/zooyer/dxfrw/meta"

// NumberToUnit $INSUNITS → 单位，未知值为无单位
func NumberToUnit(n int) meta.Units {
	if n < int(meta.UnitsNone) || n > int(meta.UnitsParsec) {
		return meta.UnitsNone
	}
	return meta.Units(n)
}

func UnitToNumber(u meta.Units) int {
	if u < meta.UnitsNone || u > meta.UnitsParsec {
		return 0
	}
	return int(u)
}

// NumberToAngleFormat $AUNITS → 角度格式，未知值为十进制度
func NumberToAngleFormat(n int) meta.AngleFormat {
	switch n {
	case 1:
		return meta.DegreesMinutesSeconds
	case 2:
		return meta.Gradians
	case 3:
		return meta.Radians
	case 4:
		return meta.Surveyors
	}
	return meta.DegreesDecimal
}

func AngleFormatToNumber(af meta.AngleFormat) int {
	switch af {
	case meta.DegreesMinutesSeconds:
		return 1
	case meta.Gradians:
		return 2
	case meta.Radians:
		return 3
	case meta.Surveyors:
		return 4
	}
	return 0
}
