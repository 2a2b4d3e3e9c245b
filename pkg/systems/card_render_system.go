package systems

import (
	"image/color"

	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/config"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/decker502/cardshowcase/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugGlyphWidth ebitenutil.DebugPrint 的字符宽度（像素）
const debugGlyphWidth = 6

// CardRenderSystem 绘制卡牌表面、光晕和下划线
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	config        *config.TiltConfig

	// entrance 网格入场状态实体
	entrance ecs.EntityID

	// glowCache 每个表面一张光晕纹理，参数变化时原地重绘
	glowCache   map[ecs.EntityID]*glowTexture
	placeholder *ebiten.Image

	op ebiten.DrawImageOptions
}

// glowTexture 表面当前的光晕纹理及其参数
type glowTexture struct {
	key   utils.GlowCacheKey
	image *ebiten.Image
}

// NewCardRenderSystem 创建渲染系统
func NewCardRenderSystem(em *ecs.EntityManager, cfg *config.TiltConfig, entrance ecs.EntityID) *CardRenderSystem {
	placeholder := ebiten.NewImage(1, 1)
	placeholder.Fill(color.White)

	return &CardRenderSystem{
		entityManager: em,
		config:        cfg,
		entrance:      entrance,
		glowCache:     make(map[ecs.EntityID]*glowTexture),
		placeholder:   placeholder,
	}
}

// Draw 按 ZIndex 从低到高绘制所有表面
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	opacity, offsetY := 1.0, 0.0
	if e, ok := ecs.GetComponent[*components.EntranceComponent](s.entityManager, s.entrance); ok {
		opacity, offsetY = e.Opacity, e.TranslateY
	}

	for _, id := range SurfacesByZ(s.entityManager) {
		if ecs.HasComponent[*components.GridMemberComponent](s.entityManager, id) {
			s.drawSurface(screen, id, opacity, offsetY)
		} else {
			s.drawSurface(screen, id, 1, 0)
		}
	}

	s.pruneGlow()
	s.drawUnderlines(screen)
}

func (s *CardRenderSystem) drawSurface(screen *ebiten.Image, id ecs.EntityID, opacity, offsetY float64) {
	surface, ok := ecs.GetComponent[*components.SurfaceComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, id)
	if !ok {
		return
	}

	originX, originY := pos.X, pos.Y+offsetY

	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, surface.ImageEntity)
	if !ok {
		transform = components.NewTransformComponent()
	}

	s.op.GeoM.Reset()
	s.op.ColorScale.Reset()

	art, _ := ecs.GetComponent[*components.CardArtComponent](s.entityManager, surface.ImageEntity)
	if art != nil && art.Art != nil {
		b := art.Art.Bounds()
		aw, ah := float64(b.Dx()), float64(b.Dy())
		s.op.GeoM = utils.TiltGeoM(transform.RotateX, transform.RotateY, transform.Scale, aw, ah, s.config.Perspective)
		s.op.GeoM.Translate(originX+(size.Width-aw)/2, originY+(size.Height-ah)/2)
		s.op.ColorScale.ScaleAlpha(float32(opacity))
		screen.DrawImage(art.Art, &s.op)
	} else {
		// 无卡图：灰色占位
		s.op.GeoM.Scale(size.Width, size.Height)
		s.op.GeoM.Concat(utils.TiltGeoM(transform.RotateX, transform.RotateY, transform.Scale, size.Width, size.Height, s.config.Perspective))
		s.op.GeoM.Translate(originX, originY)
		s.op.ColorScale.ScaleWithColor(color.RGBA{R: 75, G: 85, B: 99, A: 255})
		s.op.ColorScale.ScaleAlpha(float32(opacity))
		screen.DrawImage(s.placeholder, &s.op)
	}

	// 光晕层不随卡图旋转，覆盖整个容器
	glow, ok := ecs.GetComponent[*components.GlowComponent](s.entityManager, surface.GlowEntity)
	if !ok {
		return
	}
	glowImg := s.glowImage(id, int(size.Width), int(size.Height), glow.Paint)
	if glowImg == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.ColorScale.Reset()
	s.op.GeoM.Translate(originX, originY)
	s.op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(glowImg, &s.op)
}

// glowImage 返回表面的光晕纹理
// 参数未变化时直接复用；尺寸不变时原地重绘，尺寸变化时释放旧纹理
func (s *CardRenderSystem) glowImage(id ecs.EntityID, w, h int, paint components.GlowPaint) *ebiten.Image {
	if w <= 0 || h <= 0 {
		s.releaseGlow(id)
		return nil
	}

	key := utils.NewGlowCacheKey(w, h, paint)
	tex, ok := s.glowCache[id]
	if ok && tex.key == key {
		return tex.image
	}

	pixels := utils.RenderGlowGradient(w, h, key.QuantizedPaint())
	if ok && tex.key.W == w && tex.key.H == h {
		tex.image.WritePixels(pixels.Pix)
		tex.key = key
		return tex.image
	}

	s.releaseGlow(id)
	tex = &glowTexture{key: key, image: ebiten.NewImageFromImage(pixels)}
	s.glowCache[id] = tex
	return tex.image
}

// pruneGlow 释放已销毁表面的光晕纹理
func (s *CardRenderSystem) pruneGlow() {
	for id := range s.glowCache {
		if !s.entityManager.Exists(id) {
			s.releaseGlow(id)
		}
	}
}

// releaseGlow 释放表面的光晕纹理
func (s *CardRenderSystem) releaseGlow(id ecs.EntityID) {
	if tex, ok := s.glowCache[id]; ok {
		tex.image.Deallocate()
		delete(s.glowCache, id)
	}
}

// drawUnderlines 绘制标题中的下划线词
func (s *CardRenderSystem) drawUnderlines(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.UnderlineComponent, *components.PositionComponent](s.entityManager) {
		u, _ := ecs.GetComponent[*components.UnderlineComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		ebitenutil.DebugPrintAt(screen, u.Label, int(pos.X), int(pos.Y))

		fullWidth := float64(len(u.Label) * debugGlyphWidth)
		width := fullWidth * u.WidthPercent / 100
		if width <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y+16), float32(width), 2, color.RGBA{R: 250, G: 204, B: 21, A: 255}, false)
	}
}

// ClearCache 释放光晕缓存（页面销毁时调用）
func (s *CardRenderSystem) ClearCache() {
	for _, tex := range s.glowCache {
		tex.image.Deallocate()
	}
	s.glowCache = make(map[ecs.EntityID]*glowTexture)
}
