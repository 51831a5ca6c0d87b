package scenes

import (
	"math/rand"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/systems"
	"github.com/decker502/plinko/pkg/utils"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps 场景共享的依赖
//
// 由 app 层创建一次，所有回合共用。Audio、Scores、Settings 都允许
// 在无设备或无存储的环境下降级运行。
type Deps struct {
	Config   *config.GameConfig
	Scenes   *game.SceneManager
	Settings *game.SettingsManager
	Audio    *game.AudioManager
	Scores   *game.HighScoreManager
	Renderer *systems.RenderSystem
	Input    *systems.InputSystem

	// Seed 返回下一回合的随机种子
	Seed func() int64
}

// RandomSeeds 返回从 base 派生的种子序列
//
// 第一回合使用 base 本身，便于用 --seed 复现布局。
func RandomSeeds(base int64) func() int64 {
	rng := rand.New(rand.NewSource(base))
	first := true
	return func() int64 {
		if first {
			first = false
			return base
		}
		return rng.Int63()
	}
}

// launchHint 回合开始前的操作提示
func launchHint() string {
	if utils.IsMobile() {
		return "drag to aim, release to launch"
	}
	return "aim with the mouse, click to launch"
}

// replayHint 回合结束画面的重玩提示
func replayHint() string {
	if utils.IsMobile() {
		return "tap to play again"
	}
	return "click or R to play again"
}
