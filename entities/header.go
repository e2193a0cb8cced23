package entities

import (
	"strings"

	"github.com/zooyer/dxfrw/core"
)

// Header HEADER 段中关心的变量
type Header struct {
	Version  string // $ACADVER
	InsUnits int    // $INSUNITS
	AUnits   int    // $AUNITS
	ExtMin   core.Point
	ExtMax   core.Point
	// 是否出现了对应变量
	HasUnits, HasAngle bool
}

func (h *Header) Type() string { return "HEADER" }

// Parse 读取到 ENDSEC 之前的全部变量
func (h *Header) Parse(s *core.Scanner) error {
	var name string
	for !s.Done() {
		t := s.LastTag
		if t.Code == 0 {
			break
		}
		switch {
		case t.Code == 9:
			name = strings.ToUpper(t.AsString())
		case name == "$ACADVER" && t.Code == 1:
			h.Version = t.AsString()
		case name == "$INSUNITS" && t.Code == 70:
			h.InsUnits, h.HasUnits = t.AsInt(), true
		case name == "$AUNITS" && t.Code == 70:
			h.AUnits, h.HasAngle = t.AsInt(), true
		case name == "$EXTMIN":
			parsePoint(&h.ExtMin, 10, t)
		case name == "$EXTMAX":
			parsePoint(&h.ExtMax, 10, t)
		}
		if !s.Next() {
			break
		}
	}
	return s.Err()
}

func (h *Header) Encode(w *core.Writer) {
	w.WriteString(9, "$ACADVER")
	w.WriteString(1, h.Version)
	w.WriteString(9, "$INSUNITS")
	w.WriteInt(70, h.InsUnits)
	w.WriteString(9, "$AUNITS")
	w.WriteInt(70, h.AUnits)
	w.WriteString(9, "$EXTMIN")
	w.WritePoint(10, h.ExtMin)
	w.WriteString(9, "$EXTMAX")
	w.WritePoint(10, h.ExtMax)
}
