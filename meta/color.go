// Package meta 实体与图层的样式属性：颜色、线宽、线型
package meta

import "math"

// 颜色索引中的特殊值
const (
	ColorByBlock = 0
	ColorByLayer = 256
	// ColorDefault 图层颜色解析失败时使用的白色
	ColorDefault = 255
)

// Color 显式颜色，Index 记录来源的颜色索引（0 表示未知）
type Color struct {
	R, G, B, A uint8
	Index      int
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA 实现 image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r, g, b, a = uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}

// SameRGB 忽略索引比较颜色值
func (c Color) SameRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// ColorIndex 颜色与颜色索引之间的转换策略
type ColorIndex interface {
	// IntToColor 特殊值 (BYBLOCK/BYLAYER) 与越界值返回 false
	IntToColor(index int) (Color, bool)
	// ColorToInt 总能返回 1..255 之间的索引
	ColorToInt(c Color) int
}

// ACI AutoCAD 颜色索引
var ACI ColorIndex = aci{}

type aci struct{}

var aciTable = buildACI()

func (aci) IntToColor(index int) (Color, bool) {
	if index <= ColorByBlock || index >= ColorByLayer {
		return Color{}, false
	}
	c := aciTable[index]
	c.Index = index
	return c, true
}

func (aci) ColorToInt(c Color) int {
	if c.Index > ColorByBlock && c.Index < ColorByLayer && aciTable[c.Index].SameRGB(c) {
		return c.Index
	}

	best, dist := 7, math.MaxInt
	for i := 1; i < ColorByLayer; i++ {
		e := aciTable[i]
		dr, dg, db := int(e.R)-int(c.R), int(e.G)-int(c.G), int(e.B)-int(c.B)
		if d := dr*dr + dg*dg + db*db; d < dist {
			best, dist = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// buildACI 生成 256 色表：1-9 为标准色，10-249 为 24 个色相 × 5 档亮度 × 深浅两种，250-255 为灰度
func buildACI() [256]Color {
	var table [256]Color
	table[0] = RGB(0, 0, 0)
	standard := []Color{
		RGB(255, 0, 0), RGB(255, 255, 0), RGB(0, 255, 0), RGB(0, 255, 255),
		RGB(0, 0, 255), RGB(255, 0, 255), RGB(255, 255, 255), RGB(128, 128, 128), RGB(192, 192, 192),
	}
	copy(table[1:], standard)

	values := []float64{255, 165, 127, 76, 38}
	for i := 10; i < 250; i++ {
		hue := float64((i-10)/10) * 15
		row := (i - 10) % 10
		v := values[row/2]
		r, g, b := hsv(hue, v)
		if row%2 == 1 {
			half := math.Floor(v / 2)
			r, g, b = math.Round(half+r/2), math.Round(half+g/2), math.Round(half+b/2)
		}
		table[i] = RGB(uint8(r), uint8(g), uint8(b))
	}

	for i, v := range []uint8{51, 91, 132, 173, 214, 255} {
		table[250+i] = RGB(v, v, v)
	}
	return table
}

// hsv 饱和度为 1 时的 HSV → RGB
func hsv(hue, v float64) (r, g, b float64) {
	h := hue / 60
	x := v * (1 - math.Abs(math.Mod(h, 2)-1))
	switch int(h) {
	case 0:
		return v, x, 0
	case 1:
		return x, v, 0
	case 2:
		return 0, v, x
	case 3:
		return 0, x, v
	case 4:
		return x, 0, v
	default:
		return v, 0, x
	}
}
