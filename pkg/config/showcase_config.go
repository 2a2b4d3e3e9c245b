package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig 卡牌网格布局配置
type GridConfig struct {
	Columns    int `yaml:"columns"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Padding    int `yaml:"padding"`
	// OffsetY 网格相对窗口顶部的偏移（给标题和头图留位置）
	OffsetY int `yaml:"offset_y"`
}

// HeadlineConfig 顶部标题区配置
type HeadlineConfig struct {
	Title string `yaml:"title"`
	// Underlines 需要下划线展开动画的词
	Underlines []string `yaml:"underlines"`
	// FeaturedCard 头图卡牌 ID（使用 featured 档位）
	FeaturedCard string `yaml:"featured_card"`
}

// ShowcaseConfig 展示程序完整配置
type ShowcaseConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Grid     GridConfig     `yaml:"grid"`
	Headline HeadlineConfig `yaml:"headline"`
	// CardsFile 卡牌记录文件，相对路径以配置文件所在目录为基准
	CardsFile string `yaml:"cards_file"`
	// TiltFile 倾斜配置文件（可选）
	TiltFile string `yaml:"tilt_file"`
}

// LoadShowcaseConfig 从文件加载配置
func LoadShowcaseConfig(configPath string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg ShowcaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.fillDefaults()

	base := filepath.Dir(configPath)
	cfg.CardsFile = resolvePath(base, cfg.CardsFile)
	cfg.TiltFile = resolvePath(base, cfg.TiltFile)

	return &cfg, nil
}

// fillDefaults 设置默认值
func (c *ShowcaseConfig) fillDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 960
	}
	if c.Window.Title == "" {
		c.Window.Title = "Card Showcase"
	}
	if c.Grid.Columns == 0 {
		c.Grid.Columns = 5
	}
	if c.Grid.CellWidth == 0 {
		c.Grid.CellWidth = 200
	}
	if c.Grid.CellHeight == 0 {
		c.Grid.CellHeight = 280
	}
	if c.Grid.Padding == 0 {
		c.Grid.Padding = 8
	}
	if c.Grid.OffsetY == 0 {
		c.Grid.OffsetY = 360
	}
	if c.CardsFile == "" {
		c.CardsFile = "cards.yaml"
	}
}

// CellRect 返回第 index 个网格单元的左上角坐标和尺寸
func (g GridConfig) CellRect(index int) (x, y, w, h float64) {
	row := index / g.Columns
	col := index % g.Columns

	x = float64(col*(g.CellWidth+g.Padding) + g.Padding)
	y = float64(row*(g.CellHeight+g.Padding) + g.Padding + g.OffsetY)
	return x, y, float64(g.CellWidth), float64(g.CellHeight)
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
