package meta

// LineWeight 外部记录使用的线宽枚举：0..23 对应固定宽度表，其余为特殊值
type LineWeight int

const (
	LineWeightByLayer LineWeight = 29
	LineWeightByBlock LineWeight = 30
	LineWeightDefault LineWeight = 31
)

// NotFound WidthToInt 查找失败时的返回值
const NotFound = -1

// LineWeightInvalid 不在表内的线宽：组码 370 超出范围，或显式宽度查不到索引
const LineWeightInvalid LineWeight = NotFound

// widths 24 档线宽，单位毫米
var widths = [24]float64{
	0.00, 0.05, 0.09, 0.13, 0.15, 0.18, 0.20, 0.25,
	0.30, 0.35, 0.40, 0.50, 0.53, 0.60, 0.70, 0.80,
	0.90, 1.00, 1.06, 1.20, 1.40, 1.58, 2.00, 2.11,
}

// dxfValues 组码 370 中的取值（百分之一毫米）
var dxfValues = [24]int{
	0, 5, 9, 13, 15, 18, 20, 25,
	30, 35, 40, 50, 53, 60, 70, 80,
	90, 100, 106, 120, 140, 158, 200, 211,
}

// LineWidth 显式线宽
type LineWidth struct {
	Width   float64
	ByBlock bool
}

// IntToLW 把 0..23 的索引转换为线宽，越界返回 false
func IntToLW(i int) (LineWidth, bool) {
	if i < 0 || i >= len(widths) {
		return LineWidth{}, false
	}
	return LineWidth{Width: widths[i]}, true
}

// WidthToInt 线性查找第一个宽度完全相等的索引，找不到返回 NotFound
func WidthToInt(width float64) int {
	for i := range widths {
		if w, _ := IntToLW(i); w.Width == width {
			return i
		}
	}
	return NotFound
}

// LineWidth 把外部线宽转换为显式线宽；BYLAYER、DEFAULT 与未知值返回 false
func (lw LineWeight) LineWidth() (LineWidth, bool) {
	switch lw {
	case LineWeightByBlock:
		return LineWidth{ByBlock: true}, true
	case LineWeightByLayer, LineWeightDefault:
		return LineWidth{}, false
	}
	return IntToLW(int(lw))
}

// WeightOf 显式线宽的反向转换，宽度不在表内时返回 NotFound
func WeightOf(w LineWidth) LineWeight {
	if w.ByBlock {
		return LineWeightByBlock
	}
	return LineWeight(WidthToInt(w.Width))
}

// FromDXF 组码 370 → 枚举，超出范围的取值返回 LineWeightInvalid
func FromDXF(v int) LineWeight {
	switch v {
	case -1:
		return LineWeightByLayer
	case -2:
		return LineWeightByBlock
	case -3:
		return LineWeightDefault
	}
	if v < 0 {
		return LineWeightInvalid
	}
	for i, d := range dxfValues {
		if v <= d {
			return LineWeight(i)
		}
	}
	return LineWeightInvalid
}

// DXF 枚举 → 组码 370
func (lw LineWeight) DXF() int {
	switch lw {
	case LineWeightByLayer:
		return -1
	case LineWeightByBlock:
		return -2
	}
	if lw >= 0 && int(lw) < len(dxfValues) {
		return dxfValues[lw]
	}
	return -3
}
