package systems

import (
	"math"
	"testing"

	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/config"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/decker502/cardshowcase/pkg/entities"
)

// tiltFixture 测试用的表面 + 控制器
type tiltFixture struct {
	em         *ecs.EntityManager
	driver     *AnimationDriver
	controller *PointerTiltController
	surface    ecs.EntityID
}

func newTiltFixture(t *testing.T, featured bool, rect entities.SurfaceRect) *tiltFixture {
	t.Helper()
	em := ecs.NewEntityManager()
	driver := NewAnimationDriver()
	cfg := config.DefaultTiltConfig()

	controller, err := NewPointerTiltController(em, driver, cfg)
	if err != nil {
		t.Fatalf("NewPointerTiltController error: %v", err)
	}

	surface := entities.NewCardSurface(em, config.CardRecord{ID: "OP01-001", Featured: featured}, rect, cfg, entities.CardSurfaceOptions{})
	return &tiltFixture{em: em, driver: driver, controller: controller, surface: surface}
}

func (f *tiltFixture) transform(t *testing.T) *components.TransformComponent {
	t.Helper()
	s, _ := ecs.GetComponent[*components.SurfaceComponent](f.em, f.surface)
	tr, ok := ecs.GetComponent[*components.TransformComponent](f.em, s.ImageEntity)
	if !ok {
		t.Fatal("image entity has no transform")
	}
	return tr
}

func (f *tiltFixture) glow(t *testing.T) *components.GlowComponent {
	t.Helper()
	s, _ := ecs.GetComponent[*components.SurfaceComponent](f.em, f.surface)
	g, ok := ecs.GetComponent[*components.GlowComponent](f.em, s.GlowEntity)
	if !ok {
		t.Fatal("glow entity has no glow component")
	}
	return g
}

func (f *tiltFixture) surfaceComp() *components.SurfaceComponent {
	s, _ := ecs.GetComponent[*components.SurfaceComponent](f.em, f.surface)
	return s
}

// run 推进若干 16ms 帧直到所有动画结束
func (f *tiltFixture) run() {
	for i := 0; i < 100 && f.driver.ActiveCount() > 0; i++ {
		f.driver.Update(16)
	}
}

// TestStandardProfileScenario 标准档位：200x100 在原点，指针 (150, 75)
func TestStandardProfileScenario(t *testing.T) {
	f := newTiltFixture(t, false, entities.SurfaceRect{Width: 200, Height: 100})

	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 150, ClientY: 75})

	tr := f.transform(t)
	h, ok := f.driver.ActiveHandle(tr, components.PropRotateX, components.PropRotateY, components.PropScale)
	if !ok {
		t.Fatal("engage animation should be active")
	}
	if h.end[components.PropRotateX] != -8 || h.end[components.PropRotateY] != 8 || h.end[components.PropScale] != 1.2 {
		t.Errorf("target payload = %v, want {rotateX:-8 rotateY:8 scale:1.2}", h.end)
	}
	if h.duration != 200 {
		t.Errorf("engage duration = %v, want 200", h.duration)
	}

	paint := f.glow(t).Paint
	if paint.CenterXPercent != 60 || paint.CenterYPercent != 60 || paint.InnerAlpha != 0.2 || paint.FadeStopPercent != 60 {
		t.Errorf("glow paint = %+v, want centre (60%%, 60%%) alpha 0.2", paint)
	}

	s := f.surfaceComp()
	if s.ZIndex != 10 || !s.Elevated || s.State != components.TiltTilted {
		t.Errorf("surface should be elevated and tilted, got %+v", s)
	}

	f.run()
	if tr.RotateX != -8 || tr.RotateY != 8 || tr.Scale != 1.2 {
		t.Errorf("final transform = %+v", tr)
	}
}

func TestFeaturedProfileUsesOwnParameters(t *testing.T) {
	f := newTiltFixture(t, true, entities.SurfaceRect{X: 100, Y: 50, Width: 200, Height: 100})

	// 右下角：局部 (200, 100)
	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 300, ClientY: 150})
	f.run()

	tr := f.transform(t)
	if tr.RotateX != -14 || tr.RotateY != 14 || tr.Scale != 0.9 {
		t.Errorf("featured transform = %+v, want {-14 14 0.9}", tr)
	}
}

func TestComputeTiltCenterIsNeutral(t *testing.T) {
	geom := SurfaceGeometry{Width: 200, Height: 100, CenterX: 100, CenterY: 50}
	profile := config.DefaultTiltConfig().Standard

	tilt, ok := ComputeTilt(geom, PointerSample{X: 100, Y: 50}, profile)
	if !ok {
		t.Fatal("non-zero box should compute rotation")
	}
	if tilt.RotateX != 0 || tilt.RotateY != 0 {
		t.Errorf("centre tilt = %+v, want zero rotation", tilt)
	}

	glow := ComputeGlow(geom, PointerSample{X: 100, Y: 50}, 20)
	if glow.OffsetXPercent != 0 || glow.OffsetYPercent != 0 {
		t.Errorf("centre glow = %+v, want zero offset", glow)
	}
}

// TestComputeTiltBounded 包围盒内任意位置旋转幅度不超过倍率
func TestComputeTiltBounded(t *testing.T) {
	cfg := config.DefaultTiltConfig()
	geom := SurfaceGeometry{Width: 240, Height: 336, CenterX: 120, CenterY: 168}

	for _, profile := range []config.TiltProfileConfig{cfg.Standard, cfg.Featured} {
		for x := 0.5; x < geom.Width; x += 7.3 {
			for y := 0.5; y < geom.Height; y += 9.1 {
				tilt, _ := ComputeTilt(geom, PointerSample{X: x, Y: y}, profile)
				if math.Abs(tilt.RotateX) > profile.RotateMultiplier || math.Abs(tilt.RotateY) > profile.RotateMultiplier {
					t.Fatalf("tilt %+v at (%v, %v) exceeds multiplier %v", tilt, x, y, profile.RotateMultiplier)
				}
			}
		}
	}
}

func TestPointerMoveIsIdempotent(t *testing.T) {
	f := newTiltFixture(t, false, entities.SurfaceRect{Width: 200, Height: 300})
	ev := PointerEvent{ClientX: 40, ClientY: 260}

	f.controller.OnPointerMove(f.surface, ev)
	tr := f.transform(t)
	first, _ := f.driver.ActiveHandle(tr, components.PropRotateX, components.PropRotateY, components.PropScale)
	firstEnd := map[string]float64{}
	for k, v := range first.end {
		firstEnd[k] = v
	}
	firstPaint := f.glow(t).Paint

	f.driver.Update(50)
	f.controller.OnPointerMove(f.surface, ev)

	second, _ := f.driver.ActiveHandle(tr, components.PropRotateX, components.PropRotateY, components.PropScale)
	if first.Active() || second == first {
		t.Error("second move should supersede the first animation")
	}
	for k, v := range firstEnd {
		if second.end[k] != v {
			t.Errorf("target %s changed: %v -> %v", k, v, second.end[k])
		}
	}
	if f.glow(t).Paint != firstPaint {
		t.Error("glow paint should be identical for identical input")
	}
	if f.driver.ActiveCount() != 1 {
		t.Errorf("no backlog expected, active=%d", f.driver.ActiveCount())
	}
}

func TestPointerLeaveResetsFromAnyState(t *testing.T) {
	tests := []struct {
		name      string
		moveFirst bool
		framesMs  []float64
	}{
		{"无动画时离开", false, nil},
		{"倾斜动画中途离开", true, []float64{16, 16}},
		{"倾斜完成后离开", true, []float64{250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTiltFixture(t, false, entities.SurfaceRect{Width: 200, Height: 100})
			if tt.moveFirst {
				f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 190, ClientY: 10})
			}
			for _, dt := range tt.framesMs {
				f.driver.Update(dt)
			}

			f.controller.OnPointerLeave(f.surface)

			tr := f.transform(t)
			h, ok := f.driver.ActiveHandle(tr, components.PropRotateX, components.PropRotateY, components.PropScale)
			if !ok || h.duration != 300 {
				t.Fatal("release animation with 300ms should be active")
			}

			paint := f.glow(t).Paint
			if paint.CenterXPercent != 50 || paint.CenterYPercent != 50 || paint.InnerAlpha != 0.15 {
				t.Errorf("glow should reset immediately, got %+v", paint)
			}
			s := f.surfaceComp()
			if s.Elevated || s.ZIndex != s.BaseZIndex || s.State != components.TiltNeutral {
				t.Errorf("surface should be lowered and neutral, got %+v", s)
			}

			f.run()
			if !tr.IsNeutral() {
				t.Errorf("final transform = %+v, want exact neutral", tr)
			}
		})
	}
}

func TestZeroSizeSurfaceSkipsRotation(t *testing.T) {
	f := newTiltFixture(t, false, entities.SurfaceRect{Width: 0, Height: 100})

	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 10, ClientY: 100})
	f.run()

	tr := f.transform(t)
	if tr.RotateX != 0 || tr.RotateY != 0 {
		t.Errorf("rotation should be skipped, got %+v", tr)
	}
	if tr.Scale != 1.2 {
		t.Errorf("scale should still apply, got %v", tr.Scale)
	}

	paint := f.glow(t).Paint
	if paint.CenterXPercent != 50 || paint.CenterYPercent != 70 {
		t.Errorf("glow on the non-degenerate axis should still move, got %+v", paint)
	}
}

// TestZeroSizeSurfaceHoldsRotation 已倾斜的表面尺寸塌缩为零后保持当前旋转，而不是归零
func TestZeroSizeSurfaceHoldsRotation(t *testing.T) {
	f := newTiltFixture(t, false, entities.SurfaceRect{Width: 200, Height: 100})

	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 150, ClientY: 75})
	f.run()
	tr := f.transform(t)
	if tr.RotateX != -8 || tr.RotateY != 8 {
		t.Fatalf("precondition: tilted pose = %+v, want rotateX -8 rotateY 8", tr)
	}

	size, _ := ecs.GetComponent[*components.SizeComponent](f.em, f.surface)
	size.Width, size.Height = 0, 0

	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 10, ClientY: 10})
	f.run()

	if tr.RotateX != -8 || tr.RotateY != 8 {
		t.Errorf("rotation should be held on a zero-size box, got %+v", tr)
	}
	if tr.Scale != 1.2 {
		t.Errorf("scale = %v, want 1.2", tr.Scale)
	}
	if paint := f.glow(t).Paint; paint.CenterXPercent != 50 || paint.CenterYPercent != 50 {
		t.Errorf("glow on zero-size axes should stay centred, got %+v", paint)
	}
}

func TestMissingDecorationIsNoop(t *testing.T) {
	em := ecs.NewEntityManager()
	driver := NewAnimationDriver()
	cfg := config.DefaultTiltConfig()
	controller, _ := NewPointerTiltController(em, driver, cfg)

	surface := entities.NewCardSurface(em, config.CardRecord{ID: "x"}, entities.SurfaceRect{Width: 200, Height: 100}, cfg,
		entities.CardSurfaceOptions{WithoutGlow: true, ZIndex: 3})

	controller.OnPointerMove(surface, PointerEvent{ClientX: 150, ClientY: 75})
	controller.OnPointerLeave(surface)

	s, _ := ecs.GetComponent[*components.SurfaceComponent](em, surface)
	if s.ZIndex != 3 || s.Elevated || s.State != components.TiltNeutral {
		t.Errorf("surface without glow must not change, got %+v", s)
	}
	if driver.ActiveCount() != 0 {
		t.Error("no animation should be submitted")
	}

	// 不存在的实体同样静默忽略
	controller.OnPointerMove(ecs.EntityID(999), PointerEvent{})
	controller.OnPointerLeave(ecs.EntityID(999))
}

func TestNewPointerTiltControllerRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultTiltConfig()
	cfg.Release.Easing = "ease-out-wobble"

	if _, err := NewPointerTiltController(ecs.NewEntityManager(), NewAnimationDriver(), cfg); err == nil {
		t.Error("invalid easing should be rejected at construction")
	}
}

func TestRapidMovesStartFromInFlightPose(t *testing.T) {
	f := newTiltFixture(t, false, entities.SurfaceRect{Width: 200, Height: 100})

	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 200, ClientY: 100})
	f.driver.Update(100)
	tr := f.transform(t)
	inFlight := *tr

	f.controller.OnPointerMove(f.surface, PointerEvent{ClientX: 0, ClientY: 0})
	h, _ := f.driver.ActiveHandle(tr, components.PropRotateX, components.PropRotateY, components.PropScale)

	if h.Value(components.PropRotateX) != inFlight.RotateX || h.Value(components.PropRotateY) != inFlight.RotateY {
		t.Errorf("second animation starts at %v, want in-flight %+v", h.current, inFlight)
	}
	if inFlight.RotateX == 0 || inFlight.RotateX == -16 {
		t.Errorf("in-flight pose should be between neutral and target, got %+v", inFlight)
	}
}
