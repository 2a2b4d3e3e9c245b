package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/cardshowcase/pkg/utils"
	"gopkg.in/yaml.v3"
)

// TiltProfileConfig 单个倾斜档位的参数
type TiltProfileConfig struct {
	// RotateMultiplier 指针在边缘时的最大旋转角度（度）
	RotateMultiplier float64 `yaml:"rotate_multiplier"`
	// Scale 倾斜时的统一缩放
	Scale float64 `yaml:"scale"`
}

// GlowConfig 光晕层参数
type GlowConfig struct {
	// Spread 光晕中心相对 50% 的最大偏移（百分比）
	Spread float64 `yaml:"spread"`
	// EngagedAlpha 倾斜时的中心亮度
	EngagedAlpha float64 `yaml:"engaged_alpha"`
	// NeutralAlpha 复位时的中心亮度
	NeutralAlpha float64 `yaml:"neutral_alpha"`
	// FadeStopPercent 渐变完全透明的半径（百分比）
	FadeStopPercent float64 `yaml:"fade_stop_percent"`
}

// MotionConfig 一段动画的时长与缓动
type MotionConfig struct {
	DurationMs float64 `yaml:"duration_ms"`
	Easing     string  `yaml:"easing"`
}

// TiltConfig 指针倾斜交互的完整配置
type TiltConfig struct {
	Standard TiltProfileConfig `yaml:"standard"`
	Featured TiltProfileConfig `yaml:"featured"`
	Glow     GlowConfig        `yaml:"glow"`
	Engage   MotionConfig      `yaml:"engage"`
	Release  MotionConfig      `yaml:"release"`

	// ElevatedZIndex 倾斜时表面抬升到的层级
	ElevatedZIndex int `yaml:"elevated_z_index"`
	// Perspective 渲染投影的透视距离（像素）
	Perspective float64 `yaml:"perspective"`
}

// DefaultTiltConfig 返回默认配置
func DefaultTiltConfig() *TiltConfig {
	return &TiltConfig{
		Standard: TiltProfileConfig{RotateMultiplier: 16, Scale: 1.2},
		Featured: TiltProfileConfig{RotateMultiplier: 14, Scale: 0.9},
		Glow: GlowConfig{
			Spread:          20,
			EngagedAlpha:    0.2,
			NeutralAlpha:    0.15,
			FadeStopPercent: 60,
		},
		Engage:         MotionConfig{DurationMs: 200, Easing: string(utils.EaseKindOutQuad)},
		Release:        MotionConfig{DurationMs: 300, Easing: "ease-out-elastic(1, 0.5)"},
		ElevatedZIndex: 10,
		Perspective:    1000,
	}
}

// LoadTiltConfig 从 YAML 文件加载配置，缺省字段使用默认值
func LoadTiltConfig(path string) (*TiltConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取倾斜配置失败: %w", err)
	}
	return ParseTiltConfig(data)
}

// ParseTiltConfig 解析 YAML 数据并校验
//
// 数据覆盖在默认配置之上：文件中未出现的字段保留默认值，
// 显式写出的字段（包括 0）原样生效，例如 rotate_multiplier: 0 表示不旋转。
func ParseTiltConfig(data []byte) (*TiltConfig, error) {
	cfg := DefaultTiltConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析倾斜配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置，返回 *utils.ConfigurationError
func (c *TiltConfig) Validate() error {
	for _, name := range []string{"standard", "featured"} {
		p := c.Standard
		if name == "featured" {
			p = c.Featured
		}
		if !isFinite(p.RotateMultiplier) || p.RotateMultiplier < 0 {
			return &utils.ConfigurationError{Field: name + ".rotate_multiplier", Reason: "must be finite and not negative"}
		}
		if !isFinite(p.Scale) || p.Scale <= 0 {
			return &utils.ConfigurationError{Field: name + ".scale", Reason: "must be finite and positive"}
		}
	}

	if !isFinite(c.Glow.Spread) || c.Glow.Spread < 0 {
		return &utils.ConfigurationError{Field: "glow.spread", Reason: "must be finite and not negative"}
	}
	if !isUnit(c.Glow.EngagedAlpha) {
		return &utils.ConfigurationError{Field: "glow.engaged_alpha", Reason: fmt.Sprintf("must be in [0, 1], got %v", c.Glow.EngagedAlpha)}
	}
	if !isUnit(c.Glow.NeutralAlpha) {
		return &utils.ConfigurationError{Field: "glow.neutral_alpha", Reason: fmt.Sprintf("must be in [0, 1], got %v", c.Glow.NeutralAlpha)}
	}
	if !isFinite(c.Glow.FadeStopPercent) || c.Glow.FadeStopPercent <= 0 {
		return &utils.ConfigurationError{Field: "glow.fade_stop_percent", Reason: "must be finite and positive"}
	}

	if !isFinite(c.Engage.DurationMs) || c.Engage.DurationMs < 0 {
		return &utils.ConfigurationError{Field: "engage.duration_ms", Reason: "must be finite and not negative"}
	}
	if !isFinite(c.Release.DurationMs) || c.Release.DurationMs < 0 {
		return &utils.ConfigurationError{Field: "release.duration_ms", Reason: "must be finite and not negative"}
	}
	if c.ElevatedZIndex < 0 {
		return &utils.ConfigurationError{Field: "elevated_z_index", Reason: "must not be negative"}
	}
	if !isFinite(c.Perspective) || c.Perspective <= 0 {
		return &utils.ConfigurationError{Field: "perspective", Reason: "must be finite and positive"}
	}
	if _, err := c.EngageEasing(); err != nil {
		return fmt.Errorf("engage: %w", err)
	}
	if _, err := c.ReleaseEasing(); err != nil {
		return fmt.Errorf("release: %w", err)
	}
	return nil
}

// EngageEasing 解析倾斜动画的缓动
func (c *TiltConfig) EngageEasing() (utils.Easing, error) {
	return utils.ParseEasing(c.Engage.Easing)
}

// ReleaseEasing 解析复位动画的缓动
func (c *TiltConfig) ReleaseEasing() (utils.Easing, error) {
	return utils.ParseEasing(c.Release.Easing)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// isUnit v 是否在 [0, 1] 内
func isUnit(v float64) bool {
	return v >= 0 && v <= 1
}
