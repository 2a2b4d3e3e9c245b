package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 用户级倾斜覆盖在 gdata 中的存储位置
const (
	tiltOverridesObject   = "tilt"
	tiltOverridesProperty = "overrides"
)

// ApplyTiltOverrides 用 gdata 中保存的用户覆盖项修改 cfg
//
// 覆盖数据与 tilt.yaml 结构相同，只有出现的字段会生效。
// gm 为 nil 或覆盖不存在时不做任何修改。
//
// 返回：
//   - error: 读取或解析失败，或覆盖后的配置不合法时返回错误（cfg 保持原值）
func ApplyTiltOverrides(gm *gdata.Manager, cfg *TiltConfig) error {
	if gm == nil || !gm.ObjectPropExists(tiltOverridesObject, tiltOverridesProperty) {
		return nil
	}

	data, err := gm.LoadObjectProp(tiltOverridesObject, tiltOverridesProperty)
	if err != nil {
		return fmt.Errorf("failed to load tilt overrides: %w", err)
	}

	merged := *cfg
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to unmarshal tilt overrides: %w", err)
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid tilt overrides: %w", err)
	}

	*cfg = merged
	log.Printf("[TiltConfig] User overrides applied")
	return nil
}
