package meta

// Units 图形单位
type Units int

const (
	UnitsNone Units = iota
	UnitsInch
	UnitsFoot
	UnitsMile
	UnitsMillimeter
	UnitsCentimeter
	UnitsMeter
	UnitsKilometer
	UnitsMicroinch
	UnitsMil
	UnitsYard
	UnitsAngstrom
	UnitsNanometer
	UnitsMicron
	UnitsDecimeter
	UnitsDecameter
	UnitsHectometer
	UnitsGigameter
	UnitsAstro
	UnitsLightyear
	UnitsParsec
)

var unitNames = [...]string{
	"none", "inch", "foot", "mile", "millimeter", "centimeter", "meter", "kilometer",
	"microinch", "mil", "yard", "angstrom", "nanometer", "micron", "decimeter",
	"decameter", "hectometer", "gigameter", "astro", "lightyear", "parsec",
}

func (u Units) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// AngleFormat 角度显示格式
type AngleFormat int

const (
	DegreesDecimal AngleFormat = iota
	DegreesMinutesSeconds
	Gradians
	Radians
	Surveyors
)

func (af AngleFormat) String() string {
	switch af {
	case DegreesDecimal:
		return "degrees"
	case DegreesMinutesSeconds:
		return "dms"
	case Gradians:
		return "gradians"
	case Radians:
		return "radians"
	case Surveyors:
		return "surveyors"
	default:
		return "unknown"
	}
}
