package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Is 判断是否为指定的 0 组码记录（不区分大小写）
func (t Tag) Is(name string) bool {
	return t.Code == 0 && strings.EqualFold(t.AsString(), name)
}

// Point 代表外部记录中的三维坐标
type Point struct {
	X, Y, Z float64
}
