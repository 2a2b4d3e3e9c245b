package entities

import (
	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/config"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// SurfaceRect 表面包围盒（屏幕坐标）
type SurfaceRect struct {
	X, Y, Width, Height float64
}

// CardSurfaceOptions 创建卡牌表面的可选项
type CardSurfaceOptions struct {
	// Art 已缩放的卡图，可为 nil
	Art *ebiten.Image
	// WithoutGlow 不创建光晕层（表面不响应倾斜）
	WithoutGlow bool
	// ZIndex 未抬升时的绘制层级
	ZIndex int
	// InGrid 属于卡牌网格（参与入场动画）
	InGrid bool
}

// ProfileFor 根据卡牌记录决定倾斜档位（绑定时解析一次）
func ProfileFor(record config.CardRecord) components.SurfaceProfile {
	if record.Featured {
		return components.ProfileFeatured
	}
	return components.ProfileStandard
}

// NewCardSurface 创建一张卡牌的表面实体及其卡图、光晕子实体
//
// 参数:
//   - em: 实体管理器
//   - record: 卡牌记录
//   - rect: 表面包围盒
//   - tiltCfg: 用于初始化中性光晕
//   - opts: 可选项
//
// 返回:
//   - ecs.EntityID: 表面实体ID
func NewCardSurface(em *ecs.EntityManager, record config.CardRecord, rect SurfaceRect, tiltCfg *config.TiltConfig, opts CardSurfaceOptions) ecs.EntityID {
	imageID := em.CreateEntity()
	em.AddComponent(imageID, components.NewTransformComponent())
	em.AddComponent(imageID, &components.CardArtComponent{Art: opts.Art})

	glowID := ecs.InvalidEntity
	if !opts.WithoutGlow {
		glowID = em.CreateEntity()
		em.AddComponent(glowID, &components.GlowComponent{
			Paint: components.GlowPaint{
				CenterXPercent:  50,
				CenterYPercent:  50,
				InnerAlpha:      tiltCfg.Glow.NeutralAlpha,
				FadeStopPercent: tiltCfg.Glow.FadeStopPercent,
			},
		})
	}

	surfaceID := em.CreateEntity()
	em.AddComponent(surfaceID, &components.PositionComponent{X: rect.X, Y: rect.Y})
	em.AddComponent(surfaceID, &components.SizeComponent{Width: rect.Width, Height: rect.Height})
	em.AddComponent(surfaceID, &components.CardComponent{
		ID:        record.ID,
		Name:      record.Name,
		ImagePath: record.Image,
	})
	em.AddComponent(surfaceID, &components.SurfaceComponent{
		Profile:     ProfileFor(record),
		ZIndex:      opts.ZIndex,
		BaseZIndex:  opts.ZIndex,
		ImageEntity: imageID,
		GlowEntity:  glowID,
		State:       components.TiltNeutral,
	})
	if opts.InGrid {
		em.AddComponent(surfaceID, &components.GridMemberComponent{})
	}

	return surfaceID
}

// NewUnderline 创建下划线实体（宽度从 0 开始）
func NewUnderline(em *ecs.EntityManager, label string, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.UnderlineComponent{Label: label})
	return id
}

// NewGridEntrance 创建网格入场状态实体（初始透明、下移 80 像素）
func NewGridEntrance(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.EntranceComponent{Opacity: 0, TranslateY: 80})
	return id
}
