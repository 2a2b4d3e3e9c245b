// cmd/tilt_probe/main.go
// 倾斜参数探针：不打开窗口，模拟一次指针移动和离开，逐帧打印卡图变换
//
// 用法：
//   go run ./cmd/tilt_probe --width=200 --height=280 --x=150 --y=70
//   go run ./cmd/tilt_probe --featured --tilt=assets/tilt.yaml --frame=33

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/cardshowcase/pkg/components"
	"github.com/decker502/cardshowcase/pkg/config"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/decker502/cardshowcase/pkg/entities"
	"github.com/decker502/cardshowcase/pkg/systems"
)

var (
	boxWidth  = flag.Float64("width", 200, "表面宽度（像素）")
	boxHeight = flag.Float64("height", 280, "表面高度（像素）")
	pointerX  = flag.Float64("x", 150, "指针相对表面左上角的 X")
	pointerY  = flag.Float64("y", 70, "指针相对表面左上角的 Y")
	featured  = flag.Bool("featured", false, "使用 featured 档位")
	tiltPath  = flag.String("tilt", "", "倾斜配置文件路径（为空使用默认值）")
	frameMs   = flag.Float64("frame", 16, "每帧时长（毫秒）")
	verbose   = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetFlags(0)
	}

	if *frameMs <= 0 {
		fmt.Fprintln(os.Stderr, "--frame 必须大于 0")
		os.Exit(2)
	}

	cfg := config.DefaultTiltConfig()
	if *tiltPath != "" {
		loaded, err := config.LoadTiltConfig(*tiltPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载倾斜配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	em := ecs.NewEntityManager()
	driver := systems.NewAnimationDriver()
	controller, err := systems.NewPointerTiltController(em, driver, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建控制器失败: %v\n", err)
		os.Exit(1)
	}
	controller.SetVerbose(*verbose)

	record := config.CardRecord{ID: "probe", Name: "probe", Featured: *featured}
	rect := entities.SurfaceRect{Width: *boxWidth, Height: *boxHeight}
	surfaceID := entities.NewCardSurface(em, record, rect, cfg, entities.CardSurfaceOptions{})

	surface, _ := ecs.GetComponent[*components.SurfaceComponent](em, surfaceID)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, surface.ImageEntity)
	glow, _ := ecs.GetComponent[*components.GlowComponent](em, surface.GlowEntity)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, surfaceID)
	size, _ := ecs.GetComponent[*components.SizeComponent](em, surfaceID)

	ev := systems.PointerEvent{ClientX: *pointerX, ClientY: *pointerY}
	geom, sample := systems.ComputeGeometry(pos, size, ev)
	profile := controller.Profile(surface.Profile)
	target, ok := systems.ComputeTilt(geom, sample, profile)

	fmt.Printf("profile:  %s (multiplier=%.2f scale=%.2f)\n", surface.Profile, profile.RotateMultiplier, profile.Scale)
	fmt.Printf("geometry: %.1fx%.1f center=(%.1f, %.1f) pointer=(%.1f, %.1f)\n",
		geom.Width, geom.Height, geom.CenterX, geom.CenterY, sample.X, sample.Y)
	if ok {
		fmt.Printf("target:   rotateX=%.3f rotateY=%.3f scale=%.3f\n", target.RotateX, target.RotateY, target.Scale)
	} else {
		fmt.Printf("target:   rotation held (zero-size box) scale=%.3f\n", target.Scale)
	}

	controller.OnPointerMove(surfaceID, ev)
	fmt.Printf("glow:     %s\n", glow.Paint.CSS())
	fmt.Printf("z-index:  %d\n\n", surface.ZIndex)

	fmt.Printf("engage (%.0fms %s)\n", cfg.Engage.DurationMs, cfg.Engage.Easing)
	simulate(driver, transform, *frameMs)

	controller.OnPointerLeave(surfaceID)
	fmt.Printf("\nrelease (%.0fms %s)\n", cfg.Release.DurationMs, cfg.Release.Easing)
	simulate(driver, transform, *frameMs)

	fmt.Printf("\nglow:     %s\n", glow.Paint.CSS())
	fmt.Printf("z-index:  %d\n", surface.ZIndex)
}

// simulate 推进驱动器直到没有活动动画，逐帧打印变换
func simulate(driver *systems.AnimationDriver, t *components.TransformComponent, frameMs float64) {
	elapsed := 0.0
	for driver.ActiveCount() > 0 {
		driver.Update(frameMs)
		elapsed += frameMs
		fmt.Printf("  %6.0fms  rotateX=%8.3f  rotateY=%8.3f  scale=%6.3f\n", elapsed, t.RotateX, t.RotateY, t.Scale)
	}
}
