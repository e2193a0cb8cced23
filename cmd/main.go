package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxfrw"
	"github.com/zooyer/dxfrw/document"
	"github.com/zooyer/dxfrw/internal/config"
	"github.com/zooyer/dxfrw/meta"
	"github.com/zooyer/dxfrw/record"
	"github.com/zooyer/dxfrw/utils"
)

const epsilon = 1e-9 // 判断图纸范围是否为空的精度

const reportHeader = "输入,输出,格式,实体,丢弃,不支持,未解析图像,未解析块,宽度,高度\n"

var (
	configPath = flag.String("c", "", "YAML 配置文件")
	format     = flag.String("f", "", "输出格式，如 dxf2010、dxb12，覆盖配置")
	output     = flag.String("o", "", "输出文件，默认在输入文件名后追加后缀")
	dumpPath   = flag.String("dump", "", "把写出的记录流以 msgpack 保存到该文件")
)

func main() {
	flag.Parse()

	input := flag.Arg(0)
	interactive := input == ""
	if interactive {
		// 双击运行时没有参数，弹出文件选择框
		defer xos.PauseExit()
		path, err := zenity.SelectFile(
			zenity.Title("选择 DXF 文件"),
			zenity.FileFilters{{Name: "DXF 文件", Patterns: []string{"*.dxf"}, CaseFold: true}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				fmt.Println("选择文件失败:", err)
			}
			return
		}
		input = path
	}

	if err := run(input); err != nil {
		fmt.Println("转换失败:", err)
		if interactive {
			return
		}
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	if *format != "" {
		cfg.Output.Format = *format
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(input string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dxfrw.SetLogWriters(cfg.LogWriters(os.Stderr))

	var opts dxfrw.ImportOptions
	if cfg.DefaultColor != nil {
		c, _ := meta.ACI.IntToColor(*cfg.DefaultColor)
		opts.DefaultColor = &c
	}

	// 1. 导入
	doc := document.New()
	summary, err := dxfrw.Import(input, doc, opts)
	if err != nil {
		return err
	}
	fmt.Printf("读取: %s\n", input)
	fmt.Printf("    图层 %d, 块 %d, 实体 %d (丢弃 %d, 不支持 %d)\n",
		len(doc.Layers()), len(doc.Blocks()), summary.Added, summary.Dropped, summary.Discarded,
	)
	for _, h := range summary.UnresolvedImages {
		fmt.Printf("    [警告] 找不到图像定义 %s\n", h)
	}
	for _, name := range summary.UnresolvedInserts {
		fmt.Printf("    [警告] 找不到块 %s\n", name)
	}

	// 2. 导出
	target := *output
	if target == "" {
		target = strings.TrimSuffix(input, filepath.Ext(input)) + cfg.Output.Suffix + ".dxf"
	}
	ex := dxfrw.NewExporter(doc, meta.ACI)
	ex.AppID = cfg.AppID
	if err = ex.WriteDXF(target, cfg.FileType()); err != nil {
		return err
	}
	fmt.Println("写入文件:", target)

	// 3. 记录流
	if *dumpPath != "" {
		if err = dump(ex, cfg.FileType(), *dumpPath); err != nil {
			return err
		}
		fmt.Println("写入记录:", *dumpPath)
	}

	// 4. 报表
	if cfg.Report != "" {
		if err = report(cfg, doc, summary, input, target); err != nil {
			return err
		}
	}
	return nil
}

func dump(ex *dxfrw.Exporter, t dxfrw.FileType, path string) (err error) {
	var rec record.Recorder
	version, binary := dxfrw.VersionOf(t)
	if err = ex.Write(&rec, version, binary); err != nil {
		return
	}

	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return rec.Dump(file)
}

func report(cfg *config.Config, doc *document.Document, summary dxfrw.Summary, input, target string) error {
	if _, err := os.Stat(cfg.Report); errors.Is(err, os.ErrNotExist) {
		if err = os.WriteFile(cfg.Report, []byte(reportHeader), 0644); err != nil {
			return err
		}
	}

	var (
		box           = utils.Extents(doc)
		width, height = box.Max.X - box.Min.X, box.Max.Y - box.Min.Y
	)
	if xmath.Equal(width, 0, epsilon) && xmath.Equal(height, 0, epsilon) {
		fmt.Println("    [警告] 模型空间为空")
	}

	var line = fmt.Sprintf("%s,%s,%s,%d,%d,%d,%d,%d,%.2f,%.2f\n",
		input, target, cfg.Output.Format,
		summary.Added, summary.Dropped, summary.Discarded,
		len(summary.UnresolvedImages), len(summary.UnresolvedInserts),
		width, height,
	)
	return xos.AppendFile(cfg.Report, []byte(line), 0644)
}
