package dxfrw

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxfrw/core"
	"github.com/zooyer/dxfrw/entities"
)

// ErrUnknownRecord 没有对应解析器的记录，读取时跳过
var ErrUnknownRecord = errors.New("dxfrw: unknown record")

// Open 读取文本 DXF 文件，每条记录回调一次 h
func Open(filename string, h Handler) (err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, h)
}

func Load(reader io.Reader, h Handler) error {
	scanner := core.NewScanner(reader)

	for scanner.Next() {
		if !scanner.LastTag.Is("SECTION") {
			continue
		}
		if !scanner.Next() {
			break
		}
		sectionName := strings.ToUpper(scanner.LastTag.AsString())
		switch sectionName {
		case "HEADER":
			parseHeader(scanner, h)
		case "TABLES":
			parseTables(scanner, h)
		case "BLOCKS":
			parseBlocks(scanner, h)
		case "ENTITIES":
			parseEntities(scanner, h)
		case "OBJECTS":
			parseObjects(scanner, h)
		default:
			for scanner.Next() && !scanner.LastTag.Is("ENDSEC") {
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("dxfrw: read: %w", err)
	}
	return nil
}

// skip 跳到下一条记录（组码 0）
func skip(scanner *core.Scanner) {
	for scanner.Next() && scanner.LastTag.Code != 0 {
	}
}

func parseHeader(scanner *core.Scanner, h Handler) {
	if !scanner.Next() {
		return
	}
	var header entities.Header
	if err := header.Parse(scanner); err != nil {
		return
	}
	h.AddHeader(&header)
}

func parseTables(scanner *core.Scanner, h Handler) {
	scanner.Next()
	for !scanner.Done() {
		tag := scanner.LastTag
		switch {
		case tag.Code != 0, tag.Is("TABLE"), tag.Is("ENDTAB"):
			skip(scanner)
			continue
		case tag.Is("ENDSEC"):
			return
		}

		switch rec := entities.NewTableRecord(strings.ToUpper(tag.AsString())).(type) {
		case *entities.Layer:
			if rec.Parse(scanner) == nil {
				h.AddLayer(rec)
			}
		case *entities.LineType:
			if rec.Parse(scanner) == nil {
				h.AddLineType(rec)
			}
		default:
			skip(scanner)
		}
	}
}

func parseBlocks(scanner *core.Scanner, h Handler) {
	scanner.Next()
	for !scanner.Done() {
		tag := scanner.LastTag
		switch {
		case tag.Code != 0:
			skip(scanner)
		case tag.Is("ENDSEC"):
			return
		case tag.Is("BLOCK"):
			block := entities.NewBlock("")
			if block.Parse(scanner) == nil {
				h.BeginBlock(block)
			}
		case tag.Is("ENDBLK"):
			h.EndBlock()
			skip(scanner)
		default:
			parseEntity(scanner, h)
		}
	}
}

func parseEntities(scanner *core.Scanner, h Handler) {
	scanner.Next()
	for !scanner.Done() {
		tag := scanner.LastTag
		switch {
		case tag.Code != 0:
			skip(scanner)
		case tag.Is("ENDSEC"):
			return
		default:
			parseEntity(scanner, h)
		}
	}
}

func parseObjects(scanner *core.Scanner, h Handler) {
	scanner.Next()
	for !scanner.Done() {
		tag := scanner.LastTag
		switch {
		case tag.Code != 0:
			skip(scanner)
		case tag.Is("ENDSEC"):
			return
		case tag.Is("IMAGEDEF"):
			var def entities.ImageDef
			if def.Parse(scanner) == nil {
				h.LinkImage(&def)
			}
		default:
			skip(scanner)
		}
	}
}

// parseEntity 解析当前记录并分发，扫描器停在下一条记录上
func parseEntity(scanner *core.Scanner, h Handler) {
	name := strings.ToUpper(scanner.LastTag.AsString())
	ent := entities.CreateEntity(name)
	if ent == nil {
		Tracef("%v: %s", ErrUnknownRecord, name)
		skip(scanner)
		return
	}
	if err := ent.Parse(scanner); err != nil {
		return
	}
	if err := dispatch(ent, h); err != nil {
		Tracef("%v", err)
	}
}

func dispatch(ent entities.Entity, h Handler) error {
	switch e := ent.(type) {
	case *entities.Point:
		h.AddPoint(e)
	case *entities.Line:
		h.AddLine(e)
	case *entities.Circle:
		h.AddCircle(e)
	case *entities.Arc:
		h.AddArc(e)
	case *entities.Ellipse:
		h.AddEllipse(e)
	case *entities.Spline:
		h.AddSpline(e)
	case *entities.Text:
		h.AddText(e)
	case *entities.LWPolyline:
		h.AddLWPolyline(e)
	case *entities.Insert:
		h.AddInsert(e)
	case *entities.Image:
		h.AddImage(e)
	case *entities.Polyline:
		h.AddPolyline(e)
	case *entities.Dimension:
		return dispatchDimension(e, h)
	case *entities.Unsupported:
		switch e.Type() {
		case "MTEXT":
			h.AddMText(e)
		case "HATCH":
			h.AddHatch(e)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownRecord, e.Type())
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownRecord, ent.Type())
	}
	return nil
}

// dispatchDimension 按组码 70 的低 3 位区分标注类型
func dispatchDimension(d *entities.Dimension, h Handler) error {
	switch d.DimType {
	case entities.DimLinear:
		h.AddDimLinear(d)
	case entities.DimAligned:
		h.AddDimAligned(d)
	case entities.DimAngular:
		h.AddDimAngular(d)
	case entities.DimDiameter:
		h.AddDimDiametric(d)
	case entities.DimRadius:
		h.AddDimRadial(d)
	case entities.DimAngular3Point:
		h.AddDimAngular3P(d)
	case entities.DimOrdinate:
		h.AddDimOrdinate(d)
	default:
		return fmt.Errorf("%w: dimension type %d", ErrUnknownRecord, d.DimType)
	}
	return nil
}
