// 卡牌展示程序入口
//
// 用法：
//
//	go run . --config=assets/showcase.yaml [--tilt=assets/tilt.yaml] [--verbose]
package main

import (
	"flag"
	"log"

	"github.com/decker502/cardshowcase/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", "assets/showcase.yaml", "展示配置文件路径")
	tiltPath   = flag.String("tilt", "", "倾斜配置文件路径（覆盖展示配置中的 tilt_file）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	// 用户覆盖存储不可用时继续运行，只是不加载覆盖
	storage, err := gdata.Open(gdata.Config{AppName: "cardshowcase"})
	if err != nil {
		log.Printf("[main] Warning: gdata 不可用: %v", err)
		storage = nil
	}

	a, err := app.NewApp(app.Config{
		ShowcasePath: *configPath,
		TiltPath:     *tiltPath,
		Verbose:      *verbose,
		Storage:      storage,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer a.Close()

	window := a.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
