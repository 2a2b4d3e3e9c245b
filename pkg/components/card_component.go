package components

import "github.com/hajimehoshi/ebiten/v2"

// CardComponent 卡牌记录（来自 cards.yaml）
type CardComponent struct {
	ID        string
	Name      string
	ImagePath string
}

// CardArtComponent 卡图的绘制资源
// Art 已按网格单元尺寸缩放；加载失败时为 nil，渲染系统退化为纯色占位
type CardArtComponent struct {
	Art *ebiten.Image
}
