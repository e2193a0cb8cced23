package core

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// BinarySentinel 二进制 DXF 文件头
const BinarySentinel = "AutoCAD Binary DXF\r\n\x1a\x00"

// ValueType 组码对应的值类型
type ValueType int

const (
	TypeString ValueType = iota
	TypeFloat
	TypeInt16
	TypeInt32
	TypeInt64
	TypeBool
)

// CodeType 按 DXF 组码范围返回值类型
func CodeType(code int) ValueType {
	switch {
	case code >= 0 && code <= 9:
		return TypeString
	case code >= 10 && code <= 59:
		return TypeFloat
	case code >= 60 && code <= 79:
		return TypeInt16
	case code >= 90 && code <= 99:
		return TypeInt32
	case code >= 110 && code <= 149:
		return TypeFloat
	case code >= 160 && code <= 169:
		return TypeInt64
	case code >= 170 && code <= 179:
		return TypeInt16
	case code >= 210 && code <= 239:
		return TypeFloat
	case code >= 270 && code <= 289:
		return TypeInt16
	case code >= 290 && code <= 299:
		return TypeBool
	case code >= 370 && code <= 389:
		return TypeInt16
	case code >= 400 && code <= 409:
		return TypeInt16
	case code >= 420 && code <= 429, code >= 440 && code <= 459:
		return TypeInt32
	case code >= 460 && code <= 469:
		return TypeFloat
	case code >= 1010 && code <= 1059:
		return TypeFloat
	case code >= 1060 && code <= 1070:
		return TypeInt16
	case code == 1071:
		return TypeInt32
	}
	return TypeString
}

// Writer 按组码写出 DXF 标签，支持文本与二进制两种格式
type Writer struct {
	w      *bufio.Writer
	binary bool
	// 二进制 R12 的组码只占 1 个字节
	shortCodes bool
	err        error

	// Markers 为 true 时写出 100 子类标记（R13 及以上）
	Markers bool
}

// NewWriter 创建文本格式写入器
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// NewBinaryWriter 创建二进制写入器并写出文件头
func NewBinaryWriter(w io.Writer, shortCodes bool) *Writer {
	bw := &Writer{w: bufio.NewWriter(w), binary: true, shortCodes: shortCodes}
	_, bw.err = bw.w.WriteString(BinarySentinel)
	return bw
}

func (w *Writer) Binary() bool { return w.binary }

func (w *Writer) writeCode(code int) {
	if w.err != nil {
		return
	}
	if !w.binary {
		_, w.err = fmt.Fprintf(w.w, "%3d\n", code)
		return
	}
	if w.shortCodes {
		if code < 255 {
			w.err = w.w.WriteByte(byte(code))
			return
		}
		if w.err = w.w.WriteByte(255); w.err != nil {
			return
		}
	}
	w.err = binary.Write(w.w, binary.LittleEndian, int16(code))
}

func (w *Writer) text(value string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(value + "\n")
}

// WriteString 写出字符串值
func (w *Writer) WriteString(code int, value string) {
	w.writeCode(code)
	if w.err != nil {
		return
	}
	if !w.binary {
		w.text(value)
		return
	}
	if _, w.err = w.w.WriteString(value); w.err == nil {
		w.err = w.w.WriteByte(0)
	}
}

// Subclass 写出子类标记
func (w *Writer) Subclass(name string) {
	if w.Markers {
		w.WriteString(100, name)
	}
}

// WriteFloat 写出浮点值
func (w *Writer) WriteFloat(code int, value float64) {
	w.writeCode(code)
	if w.err != nil {
		return
	}
	if !w.binary {
		w.text(FormatFloat(value))
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, math.Float64bits(value))
}

// WriteInt 写出整数值，宽度由组码决定
func (w *Writer) WriteInt(code int, value int) {
	w.writeCode(code)
	if w.err != nil {
		return
	}
	if !w.binary {
		w.text(strconv.Itoa(value))
		return
	}
	switch CodeType(code) {
	case TypeInt32:
		w.err = binary.Write(w.w, binary.LittleEndian, int32(value))
	case TypeInt64:
		w.err = binary.Write(w.w, binary.LittleEndian, int64(value))
	case TypeBool:
		w.err = w.w.WriteByte(byte(value))
	default:
		w.err = binary.Write(w.w, binary.LittleEndian, int16(value))
	}
}

// WriteBool 写出布尔值
func (w *Writer) WriteBool(code int, value bool) {
	var v int
	if value {
		v = 1
	}
	w.WriteInt(code, v)
}

// WritePoint 写出坐标，组码依次为 code, code+10, code+20
func (w *Writer) WritePoint(code int, p Point) {
	w.WriteFloat(code, p.X)
	w.WriteFloat(code+10, p.Y)
	w.WriteFloat(code+20, p.Z)
}

// WritePoint2D 只写出 X、Y
func (w *Writer) WritePoint2D(code int, p Point) {
	w.WriteFloat(code, p.X)
	w.WriteFloat(code+10, p.Y)
}

func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

func (w *Writer) Err() error {
	return w.err
}

// FormatFloat 保证文本中的浮点数始终带有小数点
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".nI") {
		s += ".0"
	}
	return s
}
