// Package config 命令行工具的 YAML 配置
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zooyer/dxfrw"
)

// maxFileSize 配置文件大小上限
const maxFileSize = 1 << 20

type Output struct {
	Format string `yaml:"format"` // dxf2010、dxb12 等
	Suffix string `yaml:"suffix"` // 未指定输出路径时追加到输入文件名后
}

// Log 三个日志流的开关
type Log struct {
	Ops   bool `yaml:"ops"`
	Diag  bool `yaml:"diag"`
	Trace bool `yaml:"trace"`
}

type Config struct {
	Output Output `yaml:"output"`
	AppID  string `yaml:"app_id"`
	Log    Log    `yaml:"log"`
	// Report 非空时每次转换追加一行 CSV
	Report string `yaml:"report"`
	// DefaultColor 颜色索引无法解析时使用的颜色，为空则忽略
	DefaultColor *int `yaml:"default_color"`
}

// Default 文件中未出现的字段保持这些值
func Default() *Config {
	return &Config{
		Output: Output{Format: "dxf2010", Suffix: "_out"},
		AppID:  dxfrw.DefaultAppID,
		Log:    Log{Ops: true},
	}
}

// Load 读取 .yaml/.yml 文件并校验
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := dxfrw.ParseFileType(c.Output.Format); !ok {
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}
	if c.AppID == "" {
		return fmt.Errorf("app_id must not be empty")
	}
	if c.DefaultColor != nil && (*c.DefaultColor < 1 || *c.DefaultColor > 255) {
		return fmt.Errorf("default_color must be between 1 and 255, got %d", *c.DefaultColor)
	}
	return nil
}

// FileType 已校验过的输出格式
func (c *Config) FileType() dxfrw.FileType {
	t, _ := dxfrw.ParseFileType(c.Output.Format)
	return t
}

// LogWriters 打开的日志流都写到 w
func (c *Config) LogWriters(w io.Writer) dxfrw.LogWriters {
	var lw dxfrw.LogWriters
	if c.Log.Ops {
		lw.Ops = w
	}
	if c.Log.Diag {
		lw.Diag = w
	}
	if c.Log.Trace {
		lw.Trace = w
	}
	return lw
}
