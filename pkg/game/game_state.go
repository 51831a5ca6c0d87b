package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/plinko/pkg/components"
	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/utils"
)

// GameState 单个回合的全部模拟状态
//
// 由主循环（场景）持有并按引用传给各系统，不存在全局单例。
// 回合结束后丢弃，重新开始时创建新的实例。
type GameState struct {
	Config *config.GameConfig

	Grid      *BumperGrid      // 弹珠柱空间哈希
	Ball      *components.Ball // 唯一的球
	Field     *BumperField     // 弹珠柱集合
	Score     *ScoreTracker    // 计分器
	Timer     *RoundTimer      // 回合计时器
	Listeners *HitListeners    // 撞击事件分发
	Seed      int64            // 随机种子（生成布局与飘字位置）
	Launches  int              // 本回合发射次数

	clock float64 // 模拟时间（秒）
	rng   *rand.Rand
}

// NewGameState 创建新回合
//
// 球放在场地中心，弹珠柱在以球为中心的禁放圈之外生成。
// 计分器默认注册为撞击监听器。
//
// 参数:
//   - cfg: 游戏配置
//   - seed: 随机种子
//
// 返回:
//   - *GameState: 回合状态
//   - error: 弹珠柱无法放置时返回错误（见 ErrPlacementInfeasible）
func NewGameState(cfg *config.GameConfig, seed int64) (*GameState, error) {
	gs := &GameState{
		Config:    cfg,
		Grid:      NewBumperGrid(cfg.Field.CellSize),
		Timer:     NewRoundTimer(cfg.Timer),
		Listeners: &HitListeners{},
		Seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
	}

	center := utils.V(cfg.FieldCenter())
	gs.Ball = components.NewBall(center, cfg.Ball.Radius)

	field, err := NewBumperField(cfg, gs.Grid, gs.rng, gs.Ball.Position, cfg.Bumper.ExclusionRadius, cfg.Bumper.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bumper field: %w", err)
	}
	gs.Field = field

	gs.Score = NewScoreTracker(cfg.Score, center, gs.rng, gs.Now)
	gs.Listeners.Add(gs.Score)

	log.Printf("[GameState] New round: seed=%d, bumpers=%d", seed, field.Len())
	return gs, nil
}

// Now 返回当前模拟时间（秒）
func (gs *GameState) Now() float64 {
	return gs.clock
}

// Advance 推进模拟时钟
//
// 参数:
//   - dt: 帧时间缩放因子（实际秒数 × 目标帧率）
//
// 返回:
//   - float64: 本帧对应的秒数
func (gs *GameState) Advance(dt float64) float64 {
	seconds := dt / gs.Config.Field.TargetFPS
	gs.clock += seconds
	return seconds
}

// Aim 计算从球到瞄准点的力度指示
func (gs *GameState) Aim(target utils.Vec2) PowerGauge {
	return ComputePowerGauge(gs.Ball.Position, target, gs.Config.Ball.GaugeDots, gs.Config.Ball.LaunchPowerDivisor)
}

// TryLaunch 向瞄准点发射球
//
// 仅当球静止且瞄准点不与球心重合时发射；首次发射启动回合计时器。
// 回合结束后不再接受发射。
func (gs *GameState) TryLaunch(target utils.Vec2) bool {
	if gs.RoundOver() || !gs.Ball.Stopped {
		return false
	}

	gauge := gs.Aim(target)
	if !gs.Ball.Launch(gauge.Velocity) {
		return false
	}

	gs.Timer.Start()
	gs.Launches++
	log.Printf("[GameState] Launch #%d: velocity=(%.2f, %.2f)", gs.Launches, gauge.Velocity.X, gauge.Velocity.Y)
	return true
}

// RoundOver 回合是否已结束
func (gs *GameState) RoundOver() bool {
	return gs.Timer.Expired()
}

// Result 汇总本回合结果
func (gs *GameState) Result() RoundRecord {
	return RoundRecord{
		Score:          gs.Score.Score(),
		Hits:           gs.Score.Hits(),
		Bonuses:        gs.Score.Bonuses(),
		BumpersCleared: gs.Field.Removed(),
		Launches:       gs.Launches,
		Seed:           gs.Seed,
	}
}
