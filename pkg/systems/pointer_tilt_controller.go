package systems

import (
	"fmt"
	"log"

	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/config"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/decker502/cardshowcase/pkg/utils"
)

// PointerEvent 宿主传入的指针事件（客户区坐标）
type PointerEvent struct {
	ClientX float64
	ClientY float64
}

// PointerSample 相对表面包围盒原点的指针坐标
type PointerSample struct {
	X float64
	Y float64
}

// SurfaceGeometry 事件发生时表面的几何信息
type SurfaceGeometry struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
}

// TiltTarget 提交给动画驱动器的变换目标（RotateX 已取反）
type TiltTarget struct {
	RotateX float64
	RotateY float64
	Scale   float64
}

// GlowTarget 光晕中心相对 50% 的偏移（百分比）
type GlowTarget struct {
	OffsetXPercent float64
	OffsetYPercent float64
}

// ComputeGeometry 由当前包围盒和指针客户区坐标计算几何信息与局部坐标
func ComputeGeometry(pos *components.PositionComponent, size *components.SizeComponent, ev PointerEvent) (SurfaceGeometry, PointerSample) {
	geom := SurfaceGeometry{
		Width:   size.Width,
		Height:  size.Height,
		CenterX: size.Width / 2,
		CenterY: size.Height / 2,
	}
	return geom, PointerSample{X: ev.ClientX - pos.X, Y: ev.ClientY - pos.Y}
}

// ComputeTilt 计算倾斜目标
//
//	rotateX = -((y - cy) / cy) * multiplier   (垂直方向远离指针)
//	rotateY =  ((x - cx) / cx) * multiplier
//
// ok 为 false 表示包围盒在某一轴上尺寸为零，本次事件不计算旋转。
func ComputeTilt(geom SurfaceGeometry, p PointerSample, profile config.TiltProfileConfig) (target TiltTarget, ok bool) {
	target.Scale = profile.Scale
	if geom.CenterX == 0 || geom.CenterY == 0 {
		return target, false
	}
	rotateX := ((p.Y - geom.CenterY) / geom.CenterY) * profile.RotateMultiplier
	rotateY := ((p.X - geom.CenterX) / geom.CenterX) * profile.RotateMultiplier
	target.RotateX = -rotateX
	target.RotateY = rotateY
	return target, true
}

// ComputeGlow 计算光晕偏移；尺寸为零的轴偏移为 0
func ComputeGlow(geom SurfaceGeometry, p PointerSample, spread float64) GlowTarget {
	var g GlowTarget
	if geom.CenterX != 0 {
		g.OffsetXPercent = ((p.X - geom.CenterX) / geom.CenterX) * spread
	}
	if geom.CenterY != 0 {
		g.OffsetYPercent = ((p.Y - geom.CenterY) / geom.CenterY) * spread
	}
	return g
}

// PointerTiltController 将指针事件转换为卡图的 3D 倾斜和光晕
//
// 每个页面/视图构造一个实例，由宿主的事件绑定持有。
// 状态机（每个表面）：Neutral → Tilted（首次移动）→ Tilted（后续移动重定向）→ Neutral（离开）。
//
// 光晕同步更新，倾斜通过 AnimationDriver 平滑过渡。
type PointerTiltController struct {
	entityManager *ecs.EntityManager
	driver        *AnimationDriver
	config        *config.TiltConfig

	engage  utils.Easing
	release utils.Easing

	verbose bool
}

// NewPointerTiltController 创建控制器
//
// 返回：
//   - error: 配置中的缓动非法时返回 *utils.ConfigurationError
func NewPointerTiltController(em *ecs.EntityManager, driver *AnimationDriver, cfg *config.TiltConfig) (*PointerTiltController, error) {
	if cfg == nil {
		cfg = config.DefaultTiltConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tilt config: %w", err)
	}
	engage, _ := cfg.EngageEasing()
	release, _ := cfg.ReleaseEasing()

	return &PointerTiltController{
		entityManager: em,
		driver:        driver,
		config:        cfg,
		engage:        engage,
		release:       release,
	}, nil
}

// SetVerbose 开启状态切换日志
func (c *PointerTiltController) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Profile 返回档位对应的参数
func (c *PointerTiltController) Profile(p components.SurfaceProfile) config.TiltProfileConfig {
	if p == components.ProfileFeatured {
		return c.config.Featured
	}
	return c.config.Standard
}

// surfaceParts 一次事件需要的全部组件
type surfaceParts struct {
	surface   *components.SurfaceComponent
	pos       *components.PositionComponent
	size      *components.SizeComponent
	transform *components.TransformComponent
	glow      *components.GlowComponent
}

// resolve 读取表面及其子元素；任一缺失返回 false（装饰是可选的）
func (c *PointerTiltController) resolve(id ecs.EntityID) (surfaceParts, bool) {
	var parts surfaceParts
	var ok bool

	if parts.surface, ok = ecs.GetComponent[*components.SurfaceComponent](c.entityManager, id); !ok {
		return parts, false
	}
	if parts.pos, ok = ecs.GetComponent[*components.PositionComponent](c.entityManager, id); !ok {
		return parts, false
	}
	if parts.size, ok = ecs.GetComponent[*components.SizeComponent](c.entityManager, id); !ok {
		return parts, false
	}
	if parts.surface.ImageEntity == ecs.InvalidEntity || parts.surface.GlowEntity == ecs.InvalidEntity {
		return parts, false
	}
	if parts.transform, ok = ecs.GetComponent[*components.TransformComponent](c.entityManager, parts.surface.ImageEntity); !ok {
		return parts, false
	}
	if parts.glow, ok = ecs.GetComponent[*components.GlowComponent](c.entityManager, parts.surface.GlowEntity); !ok {
		return parts, false
	}
	return parts, true
}

// OnPointerMove 指针在表面上移动
//
// 重复的相同输入产生相同目标；每次调用都会取代该表面上仍在运行的倾斜动画。
func (c *PointerTiltController) OnPointerMove(surfaceID ecs.EntityID, ev PointerEvent) {
	parts, ok := c.resolve(surfaceID)
	if !ok {
		return
	}

	profile := c.Profile(parts.surface.Profile)
	geom, sample := ComputeGeometry(parts.pos, parts.size, ev)

	tilt, ok := ComputeTilt(geom, sample, profile)
	if !ok {
		// 尺寸为零：保持当前旋转，仅更新缩放和光晕
		tilt.RotateX = parts.transform.RotateX
		tilt.RotateY = parts.transform.RotateY
	}
	glow := ComputeGlow(geom, sample, c.config.Glow.Spread)

	parts.surface.ZIndex = c.config.ElevatedZIndex
	parts.surface.Elevated = true

	parts.glow.Paint = components.GlowPaint{
		CenterXPercent:  50 + glow.OffsetXPercent,
		CenterYPercent:  50 + glow.OffsetYPercent,
		InnerAlpha:      c.config.Glow.EngagedAlpha,
		FadeStopPercent: c.config.Glow.FadeStopPercent,
	}

	c.submit(parts.transform, tilt, c.config.Engage.DurationMs, c.engage)

	if parts.surface.State != components.TiltTilted {
		parts.surface.State = components.TiltTilted
		if c.verbose {
			log.Printf("[PointerTiltController] surface %d: neutral -> tilted (%s)", surfaceID, parts.surface.Profile)
		}
	}
}

// OnPointerLeave 指针离开表面，回到中性姿态
//
// 无论之前的动画进行到哪里（或根本没有动画），最终都精确回到 {0, 0, 1}。
func (c *PointerTiltController) OnPointerLeave(surfaceID ecs.EntityID) {
	parts, ok := c.resolve(surfaceID)
	if !ok {
		return
	}

	parts.glow.Paint = NeutralGlowPaint(c.config)
	parts.surface.ZIndex = parts.surface.BaseZIndex
	parts.surface.Elevated = false

	c.submit(parts.transform, TiltTarget{RotateX: 0, RotateY: 0, Scale: 1}, c.config.Release.DurationMs, c.release)

	if parts.surface.State != components.TiltNeutral {
		parts.surface.State = components.TiltNeutral
		if c.verbose {
			log.Printf("[PointerTiltController] surface %d: tilted -> neutral", surfaceID)
		}
	}
}

// submit 把倾斜目标交给驱动器
func (c *PointerTiltController) submit(transform *components.TransformComponent, tilt TiltTarget, durationMs float64, easing utils.Easing) {
	_, err := c.driver.Animate(transform, map[string]float64{
		components.PropRotateX: tilt.RotateX,
		components.PropRotateY: tilt.RotateY,
		components.PropScale:   tilt.Scale,
	}, durationMs, easing)
	if err != nil {
		// 缓动在构造时已校验，这里只可能是非有限的指针坐标
		log.Printf("[PointerTiltController] animate rejected: %v", err)
	}
}

// NeutralGlowPaint 居中、无偏移的光晕
func NeutralGlowPaint(cfg *config.TiltConfig) components.GlowPaint {
	return components.GlowPaint{
		CenterXPercent:  50,
		CenterYPercent:  50,
		InnerAlpha:      cfg.Glow.NeutralAlpha,
		FadeStopPercent: cfg.Glow.FadeStopPercent,
	}
}
