package systems

import (
	"github.com/decker502/plinko/pkg/game"
)

// Simulation 单个回合的固定顺序更新管线
//
// 每帧顺序：时钟 → 计时器 → 球物理 → 弹珠柱生命周期 → 飘字。
// 与渲染无关，终端前端和校验工具直接驱动它。
type Simulation struct {
	State   *game.GameState
	physics *BallPhysicsSystem
}

// NewSimulation 创建模拟管线
func NewSimulation(gs *game.GameState) *Simulation {
	return &Simulation{
		State:   gs,
		physics: NewBallPhysicsSystem(),
	}
}

// Step 推进一帧
//
// 回合结束后不再推进任何状态。
//
// 参数:
//   - dt: 帧时间缩放因子（实际秒数 × 目标帧率）
//
// 返回:
//   - bool: 回合是否已结束
func (sim *Simulation) Step(dt float64) bool {
	gs := sim.State
	if gs.RoundOver() {
		return true
	}

	seconds := gs.Advance(dt)
	gs.Timer.Update(dt)
	sim.physics.Update(gs, dt)
	gs.Field.Update(seconds)
	gs.Score.Update(dt)

	return gs.RoundOver()
}
