package meta

import (
	"golang.org/x/text/cases"
)

// 线型名中表示“继承”的哨兵值
const (
	PatternByLayer    = "BYLAYER"
	PatternByBlock    = "BYBLOCK"
	PatternContinuous = "CONTINUOUS"
)

// FoldName 线型名不区分大小写，统一折叠后作为键
func FoldName(name string) string {
	// Caser 有状态，不能在 goroutine 之间共享
	return cases.Fold().String(name)
}

// IsInherited 线型名是否为 BYLAYER / BYBLOCK / CONTINUOUS 之一
func IsInherited(name string) bool {
	f := FoldName(name)
	for _, s := range []string{PatternByLayer, PatternByBlock, PatternContinuous} {
		if f == FoldName(s) {
			return true
		}
	}
	return false
}

// LinePattern 线型：虚线段与空白交替，正数为实线长度，负数为空白
type LinePattern struct {
	Name        string
	Description string
	Path        []float64
	Length      float64
}

func NewLinePattern(name, description string, path []float64, length float64) *LinePattern {
	if length == 0 {
		for _, p := range path {
			if p < 0 {
				length -= p
			} else {
				length += p
			}
		}
	}
	return &LinePattern{Name: name, Description: description, Path: path, Length: length}
}
