package dxfrw

// FileType 导出的目标格式：文本 DXF 或二进制 DXB，加上版本
type FileType int

const (
	DXF_R12 FileType = iota
	DXF_R14
	DXF_R2000
	DXF_R2004
	DXF_R2007
	DXF_R2010
	DXF_R2013
	DXB_R12
	DXB_R14
	DXB_R2000
	DXB_R2004
	DXB_R2007
	DXB_R2010
	DXB_R2013
)

// Version DXF 文件版本，即 $ACADVER 的取值
type Version string

const (
	AC1009 Version = "AC1009" // R12
	AC1014 Version = "AC1014" // R14
	AC1015 Version = "AC1015" // R2000
	AC1018 Version = "AC1018" // R2004
	AC1021 Version = "AC1021" // R2007
	AC1024 Version = "AC1024" // R2010
	AC1027 Version = "AC1027" // R2013
)

var fileTypeNames = map[string]FileType{
	"dxf12": DXF_R12, "dxf14": DXF_R14, "dxf2000": DXF_R2000, "dxf2004": DXF_R2004,
	"dxf2007": DXF_R2007, "dxf2010": DXF_R2010, "dxf2013": DXF_R2013,
	"dxb12": DXB_R12, "dxb14": DXB_R14, "dxb2000": DXB_R2000, "dxb2004": DXB_R2004,
	"dxb2007": DXB_R2007, "dxb2010": DXB_R2010, "dxb2013": DXB_R2013,
}

// ParseFileType 解析 "dxf2010"、"dxb12" 形式的名称
func ParseFileType(name string) (FileType, bool) {
	t, ok := fileTypeNames[name]
	return t, ok
}

// VersionOf 未知的类型按 R2010 文本格式处理
func VersionOf(t FileType) (Version, bool) {
	switch t {
	case DXF_R12, DXB_R12:
		return AC1009, t == DXB_R12
	case DXF_R14, DXB_R14:
		return AC1014, t == DXB_R14
	case DXF_R2000, DXB_R2000:
		return AC1015, t == DXB_R2000
	case DXF_R2004, DXB_R2004:
		return AC1018, t == DXB_R2004
	case DXF_R2007, DXB_R2007:
		return AC1021, t == DXB_R2007
	case DXF_R2010, DXB_R2010:
		return AC1024, t == DXB_R2010
	case DXF_R2013, DXB_R2013:
		return AC1027, t == DXB_R2013
	}
	return AC1024, false
}

// HasSubclassMarkers R13 之后的版本才写 100 组码与块表记录
func (v Version) HasSubclassMarkers() bool {
	return v != AC1009
}
