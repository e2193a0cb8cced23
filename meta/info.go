package meta

// Info 实体上显式指定的样式集合。为 nil 表示全部继承图层/块
type Info struct {
	color   *Color
	width   *LineWidth
	pattern *LinePattern
}

// Add 向集合中加入属性，info 为 nil 时才会创建，保证只有显式属性时才存在集合
func (info *Info) Add(attr any) *Info {
	if attr == nil {
		return info
	}
	if info == nil {
		info = &Info{}
	}
	switch a := attr.(type) {
	case Color:
		info.color = &a
	case LineWidth:
		info.width = &a
	case *LinePattern:
		if a == nil {
			return info
		}
		info.pattern = a
	}
	return info
}

func (info *Info) Color() (Color, bool) {
	if info == nil || info.color == nil {
		return Color{}, false
	}
	return *info.color, true
}

func (info *Info) LineWidth() (LineWidth, bool) {
	if info == nil || info.width == nil {
		return LineWidth{}, false
	}
	return *info.width, true
}

func (info *Info) LinePattern() *LinePattern {
	if info == nil {
		return nil
	}
	return info.pattern
}

func (info *Info) Len() int {
	if info == nil {
		return 0
	}
	n := 0
	if info.color != nil {
		n++
	}
	if info.width != nil {
		n++
	}
	if info.pattern != nil {
		n++
	}
	return n
}
