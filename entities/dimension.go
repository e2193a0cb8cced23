package entities

import (
	"regexp"
	"strconv"

	"github.com/zooyer/dxfrw/core"
)

// 组码 70 低 3 位的标注类型
const (
	DimLinear = iota
	DimAligned
	DimAngular
	DimDiameter
	DimRadius
	DimAngular3Point
	DimOrdinate
)

type Dimension struct {
	BaseEntity
	DimType           int        // 组码 70 (关键：区分标注类型)
	Flags             int        // 组码 70 原值
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	Oblique           float64    // 组码 52
	TextAngle         float64    // 组码 53
	Leader            float64    // 组码 40
	LineFactor        float64    // 组码 41
	Attachment        int        // 组码 71
	LineStyle         int        // 组码 72
	DefPoint          core.Point // 组码 10 (标注线起点)
	TextMidPoint      core.Point // 组码 11 (中间的点)
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)
	Point15           core.Point // 组码 15 (半径/直径/角度的定义点)
	ArcPoint          core.Point // 组码 16 (角度标注的圆弧点)
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: NewBase("DIMENSION"), StyleName: "STANDARD", Attachment: 5, LineStyle: 1, LineFactor: 1}
	})
}

func (d *Dimension) Parse(scanner *core.Scanner) error {
	return parseLoop(scanner, func(tag core.Tag) {
		switch tag.Code {
		case 3:
			d.StyleName = tag.AsString()
		case 1:
			d.Text = tag.Value
		case 42:
			d.ActualMeasurement = tag.AsFloat()
		case 50:
			d.Angle = tag.AsFloat()
		case 52:
			d.Oblique = tag.AsFloat()
		case 53:
			d.TextAngle = tag.AsFloat()
		case 40:
			d.Leader = tag.AsFloat()
		case 41:
			d.LineFactor = tag.AsFloat()
		case 71:
			d.Attachment = tag.AsInt()
		case 72:
			d.LineStyle = tag.AsInt()
		case 70:
			// 组码 70 包含了很多信息，我们只需要低 3 位来判定类型
			d.Flags = tag.AsInt()
			d.DimType = d.Flags & 0x07
		default:
			switch {
			case parsePoint(&d.DefPoint, 10, tag):
			case parsePoint(&d.TextMidPoint, 11, tag):
			case parsePoint(&d.MeasureStart, 13, tag):
			case parsePoint(&d.MeasureEnd, 14, tag):
			case parsePoint(&d.Point15, 15, tag):
			case parsePoint(&d.ArcPoint, 16, tag):
			default:
				d.parseCommon(tag)
			}
		}
	})
}

// Encode 只写出公共属性与类型位
func (d *Dimension) Encode(w *core.Writer) {
	d.encodeCommon(w)
	w.Subclass("AcDbDimension")
	w.WriteInt(70, d.DimType)
}

var (
	reFormat = regexp.MustCompile(`\\[A-Z].*?;`)
	reNum    = regexp.MustCompile(`[0-9.]+`)
)

// CleanValue 测量值缺失时从标注文字中提取数值
func (d *Dimension) CleanValue() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}
