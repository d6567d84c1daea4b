package main

import (
	"flag"
	"log"

	"github.com/decker502/carrothop/assets"
	"github.com/decker502/carrothop/pkg/app"
	"github.com/decker502/carrothop/pkg/config"
	"github.com/decker502/carrothop/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	level := flag.String("level", "", "直接进入指定关卡（如 1-2），跳过加载界面")
	flag.Parse()

	embedded.Init(assets.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		Level:            *level,
		SkipLoadingScene: *level != "",
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 像素画面按整数倍放大显示
	ebiten.SetWindowSize(config.GameWindowWidth*2, config.GameWindowHeight*2)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if gameApp.Settings().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Warning: failed to save on exit")
	}
}
