package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., a running round or the round-over screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// RoundFinisher 是一个可选接口，用于在程序退出时收尾
//
// 实现此接口的场景会在窗口关闭或按下 Esc 时被调用 FinishRound()，
// 用于保存尚未结束的回合成绩。
type RoundFinisher interface {
	// FinishRound 结束当前回合
	// 返回 true 表示记录成功或无需记录
	FinishRound() bool
}
