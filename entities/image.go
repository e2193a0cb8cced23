package entities

import (
	"strings"

	"github.com/zooyer/dxfrw/core"
)

// Image 光栅图像的放置，像素定义通过 Ref 指向 IMAGEDEF
type Image struct {
	BaseEntity
	Location   core.Point
	UVector    core.Point
	VVector    core.Point
	SizeU      float64
	SizeV      float64
	Ref        string // 组码 340，IMAGEDEF 句柄
	Display    int
	Clipping   int
	Brightness int
	Contrast   int
	Fade       int
}

// ImageDef 图像定义对象（OBJECTS 段）
type ImageDef struct {
	Handle     string
	FileName   string
	SizeU      float64
	SizeV      float64
	PixelU     float64
	PixelV     float64
	Loaded     int
	Resolution int
}

func init() {
	Register("IMAGE", func() Entity {
		return &Image{BaseEntity: NewBase("IMAGE"), Brightness: 50, Contrast: 50, Display: 1}
	})
}

// HandleKey 句柄统一为大写十六进制，便于比较
func HandleKey(h string) string {
	return strings.ToUpper(strings.TrimLeft(strings.TrimSpace(h), "0"))
}

func (im *Image) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 13:
			im.SizeU = t.AsFloat()
		case 23:
			im.SizeV = t.AsFloat()
		case 340:
			im.Ref = t.AsString()
		case 70:
			im.Display = t.AsInt()
		case 280:
			im.Clipping = t.AsInt()
		case 281:
			im.Brightness = t.AsInt()
		case 282:
			im.Contrast = t.AsInt()
		case 283:
			im.Fade = t.AsInt()
		default:
			switch {
			case parsePoint(&im.Location, 10, t):
			case parsePoint(&im.UVector, 11, t):
			case parsePoint(&im.VVector, 12, t):
			default:
				im.parseCommon(t)
			}
		}
	})
}

// Encode 只写出公共属性
func (im *Image) Encode(w *core.Writer) {
	im.encodeCommon(w)
	w.Subclass("AcDbRasterImage")
}

func (d *ImageDef) Type() string { return "IMAGEDEF" }

func (d *ImageDef) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) {
		switch t.Code {
		case 5:
			d.Handle = t.AsString()
		case 1:
			d.FileName = t.AsString()
		case 10:
			d.SizeU = t.AsFloat()
		case 20:
			d.SizeV = t.AsFloat()
		case 11:
			d.PixelU = t.AsFloat()
		case 21:
			d.PixelV = t.AsFloat()
		case 280:
			d.Loaded = t.AsInt()
		case 281:
			d.Resolution = t.AsInt()
		}
	})
}

func (d *ImageDef) Encode(w *core.Writer) {
	w.WriteString(0, "IMAGEDEF")
	if d.Handle != "" {
		w.WriteString(5, d.Handle)
	}
	w.Subclass("AcDbRasterImageDef")
	w.WriteInt(90, 0)
	w.WriteString(1, d.FileName)
	w.WriteFloat(10, d.SizeU)
	w.WriteFloat(20, d.SizeV)
	w.WriteFloat(11, d.PixelU)
	w.WriteFloat(21, d.PixelV)
	w.WriteInt(280, d.Loaded)
	w.WriteInt(281, d.Resolution)
}
