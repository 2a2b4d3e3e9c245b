package systems

import (
	"sort"

	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/ecs"
)

// PointerHandler 接收表面指针事件的对象（PointerTiltController 实现该接口）
type PointerHandler interface {
	OnPointerMove(surfaceID ecs.EntityID, ev PointerEvent)
	OnPointerLeave(surfaceID ecs.EntityID)
}

// HoverSystem 将每帧轮询到的指针位置转换为 move / leave 事件
//
// 只有指针位置变化或悬停表面切换时才派发 move，
// 避免静止指针每帧重启倾斜动画。
type HoverSystem struct {
	entityManager *ecs.EntityManager
	handler       PointerHandler

	hovered  ecs.EntityID
	lastX    float64
	lastY    float64
	hasPoint bool
}

// NewHoverSystem 创建悬停派发系统
func NewHoverSystem(em *ecs.EntityManager, handler PointerHandler) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
		handler:       handler,
	}
}

// Hovered 当前悬停的表面（无则为 ecs.InvalidEntity）
func (s *HoverSystem) Hovered() ecs.EntityID {
	return s.hovered
}

// Update 处理本帧指针位置
func (s *HoverSystem) Update(x, y float64) {
	target := s.SurfaceAt(x, y)
	moved := !s.hasPoint || x != s.lastX || y != s.lastY
	s.lastX, s.lastY, s.hasPoint = x, y, true

	if target != s.hovered {
		if s.hovered != ecs.InvalidEntity {
			s.handler.OnPointerLeave(s.hovered)
		}
		s.hovered = target
		moved = true
	}

	if s.hovered != ecs.InvalidEntity && moved {
		s.handler.OnPointerMove(s.hovered, PointerEvent{ClientX: x, ClientY: y})
	}
}

// PointerLeftWindow 指针离开窗口时调用，结束当前悬停
func (s *HoverSystem) PointerLeftWindow() {
	if s.hovered != ecs.InvalidEntity {
		s.handler.OnPointerLeave(s.hovered)
	}
	s.hovered = ecs.InvalidEntity
	s.hasPoint = false
}

// SurfaceAt 返回包含点 (x, y) 的最上层表面
func (s *HoverSystem) SurfaceAt(x, y float64) ecs.EntityID {
	ids := SurfacesByZ(s.entityManager)
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if size.Contains(pos, x, y) {
			return id
		}
	}
	return ecs.InvalidEntity
}

// SurfacesByZ 返回所有表面，按 ZIndex 升序（同层按创建顺序）
func SurfacesByZ(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.SurfaceComponent](em)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.SurfaceComponent](em, ids[i])
		b, _ := ecs.GetComponent[*components.SurfaceComponent](em, ids[j])
		return a.ZIndex < b.ZIndex
	})
	return ids
}
