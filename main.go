package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/plinko/pkg/app"
	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参配置文件路径（默认使用内置的 data/plinko.yaml）")
	seed       = flag.Int64("seed", 0, "第一回合的随机种子（0 表示使用当前时间）")
	bumpers    = flag.Int("bumpers", -1, "覆盖弹珠柱数量（-1 表示使用配置）")
	mute       = flag.Bool("mute", false, "禁用音频")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameConfig, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		GameConfig: gameConfig,
		Seed:       *seed,
		Mute:       *mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(gameApp)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[main] RunGame error: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 窗口被直接关闭时也记录当前回合
	gameApp.FinishRound()
}

// loadGameConfig 按命令行参数加载配置
//
// 返回 nil 表示使用 app 层的默认来源（嵌入的配置文件）。
func loadGameConfig() (*config.GameConfig, error) {
	var cfg *config.GameConfig
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *bumpers >= 0 {
		if cfg == nil {
			data, err := embedded.ReadFile("data/plinko.yaml")
			if err != nil {
				return nil, err
			}
			if cfg, err = config.ParseGameConfig(data); err != nil {
				return nil, err
			}
		}
		cfg.Bumper.Count = *bumpers
	}

	return cfg, nil
}
