// Package app 提供卡牌展示程序的核心包装器
//
// 该包把配置、实体、系统组装成 ebiten.Game，main.go 只负责解析参数和启动循环。
package app

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // 支持 JPEG 卡图
	_ "image/png"  // 支持 PNG 卡图
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/cardshowcase/pkg/config"
	"github.com/decker502/cardshowcase/pkg/ecs"
	"github.com/decker502/cardshowcase/pkg/entities"
	"github.com/decker502/cardshowcase/pkg/systems"
	"github.com/decker502/cardshowcase/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/sync/errgroup"
)

// Config 定义应用启动配置
type Config struct {
	// ShowcasePath 展示配置文件路径
	ShowcasePath string
	// TiltPath 倾斜配置文件路径（覆盖展示配置中的 tilt_file）
	TiltPath string
	// Verbose 启用详细日志输出
	Verbose bool
	// Storage gdata 存储，可为 nil（不加载用户覆盖）
	Storage *gdata.Manager
}

// App 卡牌展示程序，实现 ebiten.Game 接口
type App struct {
	showcase *config.ShowcaseConfig
	tilt     *config.TiltConfig

	entityManager *ecs.EntityManager
	driver        *systems.AnimationDriver
	controller    *systems.PointerTiltController
	hover         *systems.HoverSystem
	renderer      *systems.CardRenderSystem

	entrance ecs.EntityID
	started  bool
}

// 背景色（深灰）
var backgroundColor = color.RGBA{R: 31, G: 41, B: 55, A: 255}

// NewApp 创建并初始化展示程序
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	showcase, err := config.LoadShowcaseConfig(cfg.ShowcasePath)
	if err != nil {
		return nil, fmt.Errorf("展示配置加载失败: %w", err)
	}

	tilt, err := loadTilt(cfg, showcase)
	if err != nil {
		return nil, err
	}

	cards, err := config.LoadCards(showcase.CardsFile)
	if err != nil {
		return nil, fmt.Errorf("卡牌加载失败: %w", err)
	}
	log.Printf("[ShowcaseApp] 加载 %d 张卡牌", len(cards))

	em := ecs.NewEntityManager()
	driver := systems.NewAnimationDriver()
	controller, err := systems.NewPointerTiltController(em, driver, tilt)
	if err != nil {
		return nil, err
	}
	controller.SetVerbose(cfg.Verbose)

	a := &App{
		showcase:      showcase,
		tilt:          tilt,
		entityManager: em,
		driver:        driver,
		controller:    controller,
		hover:         systems.NewHoverSystem(em, controller),
	}
	a.entrance = entities.NewGridEntrance(em)
	a.renderer = systems.NewCardRenderSystem(em, tilt, a.entrance)

	a.buildScene(cards)
	return a, nil
}

// loadTilt 倾斜配置：命令行 > 展示配置 > 默认值，最后叠加 gdata 用户覆盖
func loadTilt(cfg Config, showcase *config.ShowcaseConfig) (*config.TiltConfig, error) {
	path := cfg.TiltPath
	if path == "" {
		path = showcase.TiltFile
	}

	tilt := config.DefaultTiltConfig()
	if path != "" {
		loaded, err := config.LoadTiltConfig(path)
		if err != nil {
			return nil, fmt.Errorf("倾斜配置加载失败: %w", err)
		}
		tilt = loaded
	}

	if err := config.ApplyTiltOverrides(cfg.Storage, tilt); err != nil {
		// 覆盖失败不是致命错误，使用文件配置
		log.Printf("[ShowcaseApp] Warning: %v (ignoring overrides)", err)
	}
	return tilt, nil
}

// placement 一张卡牌的布局结果
type placement struct {
	record config.CardRecord
	rect   entities.SurfaceRect
	inGrid bool
	art    *image.RGBA
}

// artWorkers 并发解码卡图的协程上限
const artWorkers = 4

// buildScene 创建头图、网格卡牌和标题下划线实体
func (a *App) buildScene(cards []config.CardRecord) {
	grid := a.showcase.Grid
	base := filepath.Dir(a.showcase.CardsFile)

	placements := make([]placement, 0, len(cards))
	gridIndex := 0
	for _, card := range cards {
		if card.ID == a.showcase.Headline.FeaturedCard {
			card.Featured = true
		}

		if card.Featured {
			w := float64(grid.CellWidth) * 1.3
			h := float64(grid.CellHeight) * 1.3
			placements = append(placements, placement{
				record: card,
				rect:   entities.SurfaceRect{X: float64(a.showcase.Window.Width) - w - 40, Y: 20, Width: w, Height: h},
			})
			continue
		}

		x, y, w, h := grid.CellRect(gridIndex)
		gridIndex++
		placements = append(placements, placement{
			record: card,
			rect:   entities.SurfaceRect{X: x, Y: y, Width: w, Height: h},
			inGrid: true,
		})
	}

	// 解码和缩放在后台协程完成；ebiten 图像在主协程创建
	var g errgroup.Group
	g.SetLimit(artWorkers)
	for i := range placements {
		p := &placements[i]
		g.Go(func() error {
			p.art = decodeCardArt(base, p.record.Image, int(p.rect.Width), int(p.rect.Height))
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range placements {
		var art *ebiten.Image
		if p.art != nil {
			art = ebiten.NewImageFromImage(p.art)
		}
		entities.NewCardSurface(a.entityManager, p.record, p.rect, a.tilt, entities.CardSurfaceOptions{
			Art:    art,
			InGrid: p.inGrid,
		})
	}

	for i, label := range a.showcase.Headline.Underlines {
		entities.NewUnderline(a.entityManager, label, 40, float64(80+i*24))
	}
}

// decodeCardArt 读取并缩放卡图；失败时返回 nil（渲染占位）
func decodeCardArt(base, imagePath string, w, h int) *image.RGBA {
	if imagePath == "" {
		return nil
	}
	path := imagePath
	if !filepath.IsAbs(path) || strings.HasPrefix(path, "/assets/") {
		path = filepath.Join(base, strings.TrimPrefix(path, "/"))
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("[ShowcaseApp] 卡图打开失败 %s: %v", path, err)
		return nil
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		log.Printf("[ShowcaseApp] 卡图解码失败 %s: %v", path, err)
		return nil
	}
	return utils.ScaleToFit(src, w, h)
}

// Update 每帧更新：派发指针事件并推进动画
func (a *App) Update() error {
	if !a.started {
		a.started = true
		if _, err := systems.PlayGridEntrance(a.driver, a.entityManager, a.entrance); err != nil {
			return err
		}
		if err := systems.PlayUnderlineReveals(a.driver, a.entityManager); err != nil {
			return err
		}
	}

	x, y := utils.GetPointerPosition()
	if x < 0 || y < 0 || x >= a.showcase.Window.Width || y >= a.showcase.Window.Height {
		a.hover.PointerLeftWindow()
	} else {
		a.hover.Update(float64(x), float64(y))
	}

	a.driver.Update(1000 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制标题和卡牌
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	ebitenutil.DebugPrintAt(screen, a.showcase.Headline.Title, 40, 40)
	a.renderer.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.showcase.Window.Width, a.showcase.Window.Height
}

// WindowConfig 窗口配置（供 main 设置窗口）
func (a *App) WindowConfig() config.WindowConfig {
	return a.showcase.Window
}

// Close 页面销毁：取消所有动画、释放缓存、清空实体
func (a *App) Close() {
	a.driver.Clear()
	a.renderer.ClearCache()
	a.entityManager.Clear()
}
