package components

import "github.com/decker502/cardshowcase/pkg/ecs"

// SurfaceProfile 卡牌表面的倾斜档位
// 在绑定时由卡牌记录的 featured 标记决定，之后不再改变
type SurfaceProfile int

const (
	// ProfileStandard 普通卡牌（倾斜更强、悬停放大）
	ProfileStandard SurfaceProfile = iota
	// ProfileFeatured 头图卡牌（倾斜较弱、悬停缩小）
	ProfileFeatured
)

// String 返回档位名称（与配置文件中的键一致）
func (p SurfaceProfile) String() string {
	switch p {
	case ProfileFeatured:
		return "featured"
	default:
		return "standard"
	}
}

// TiltState 表面交互状态
type TiltState int

const (
	// TiltNeutral 空闲/复位状态
	TiltNeutral TiltState = iota
	// TiltTilted 正在跟随指针倾斜
	TiltTilted
)

// String 返回状态名称
func (s TiltState) String() string {
	if s == TiltTilted {
		return "tilted"
	}
	return "neutral"
}

// SurfaceComponent 卡牌的视觉容器
//
// 一个表面由三个实体组成：
//   - 表面实体本身（PositionComponent + SizeComponent + SurfaceComponent）
//   - 卡图实体（TransformComponent，被动画驱动）
//   - 光晕实体（GlowComponent，同步更新，不做动画）
//
// ImageEntity / GlowEntity 为 ecs.InvalidEntity 时表示该装饰不存在。
type SurfaceComponent struct {
	Profile SurfaceProfile

	// ZIndex 绘制层级，越大越靠上
	ZIndex int
	// BaseZIndex 未抬升时的层级
	BaseZIndex int
	// Elevated 是否因倾斜而被抬升
	Elevated bool

	ImageEntity ecs.EntityID
	GlowEntity  ecs.EntityID

	State TiltState
}
