package entities

import "github.com/zooyer/dxfrw/core"

// Unsupported 只读取公共属性的实体（多段线、多行文字、填充）
type Unsupported struct {
	BaseEntity
}

func init() {
	for _, name := range []string{"MTEXT", "HATCH"} {
		Register(name, func() Entity { return &Unsupported{BaseEntity: NewBase(name)} })
	}
	Register("POLYLINE", func() Entity { return &Polyline{Unsupported: Unsupported{BaseEntity: NewBase("POLYLINE")}} })
}

func (u *Unsupported) Parse(s *core.Scanner) error {
	return parseLoop(s, func(t core.Tag) { u.parseCommon(t) })
}

func (u *Unsupported) Encode(w *core.Writer) {
	u.encodeCommon(w)
}

// Polyline 旧式多段线，顶点一直延续到 SEQEND
type Polyline struct {
	Unsupported
	Vertices int
}

func (p *Polyline) Parse(s *core.Scanner) error {
	if err := p.Unsupported.Parse(s); err != nil {
		return err
	}
	for !s.Done() && (s.LastTag.Is("VERTEX") || s.LastTag.Is("SEQEND")) {
		end := s.LastTag.Is("SEQEND")
		if !end {
			p.Vertices++
		}
		for s.Next() && s.LastTag.Code != 0 {
		}
		if end {
			break
		}
	}
	return s.Err()
}
