package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CardRecord 一张卡牌的展示记录
type CardRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	// Featured 是否使用头图档位
	Featured bool `yaml:"featured"`
}

// CardsFile cards.yaml 的顶层结构
type CardsFile struct {
	Cards []CardRecord `yaml:"cards"`
}

// LoadCards 加载卡牌记录
// 记录内容原样使用，不做校验
func LoadCards(path string) ([]CardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取卡牌文件失败: %w", err)
	}

	var file CardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析卡牌文件失败: %w", err)
	}
	return file.Cards, nil
}
