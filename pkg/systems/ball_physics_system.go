package systems

import (
	"math"

	"github.com/decker502/plinko/pkg/components"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

// BallPhysicsSystem 球的运动与碰撞
//
// 每帧按固定顺序处理：
//  1. 积分位置
//  2. 线性阻尼
//  3. 停止检测
//  4. 墙壁反弹（四条边界，轴向弹性反射）
//  5. 弹珠柱碰撞（按查询结果顺序依次处理）
type BallPhysicsSystem struct {
	buf []*components.Bumper // 查询缓冲，避免每帧分配
}

// NewBallPhysicsSystem 创建球物理系统
func NewBallPhysicsSystem() *BallPhysicsSystem {
	return &BallPhysicsSystem{}
}

// Update 推进一帧
//
// 参数:
//   - gs: 回合状态
//   - dt: 帧时间缩放因子（实际秒数 × 目标帧率）
func (s *BallPhysicsSystem) Update(gs *game.GameState, dt float64) {
	ball := gs.Ball
	cfg := gs.Config

	if !ball.Stopped {
		ball.Position = ball.Position.Add(ball.Velocity.Scale(dt))
		ball.Velocity = ball.Velocity.Sub(ball.Velocity.Scale(cfg.Ball.Damping * dt))

		// 阻尼只会渐近于 0，按保留一位小数的速度判断停止
		if math.Round(ball.Speed()*10) == 0 {
			ball.Stopped = true
			ball.Velocity = utils.Vec2{}
		}
	}

	s.bounceWalls(ball, cfg.Field.Width, cfg.Field.Height)
	s.resolveBumpers(gs)
}

// bounceWalls 球心越过边界时钳制到边界并反转对应速度分量
func (s *BallPhysicsSystem) bounceWalls(ball *components.Ball, width, height float64) {
	if ball.Position.X > width {
		ball.Position.X = width
		ball.Velocity.X = -ball.Velocity.X
	}
	if ball.Position.X < 0 {
		ball.Position.X = 0
		ball.Velocity.X = -ball.Velocity.X
	}
	if ball.Position.Y > height {
		ball.Position.Y = height
		ball.Velocity.Y = -ball.Velocity.Y
	}
	if ball.Position.Y < 0 {
		ball.Position.Y = 0
		ball.Velocity.Y = -ball.Velocity.Y
	}
}

// resolveBumpers 处理与弹珠柱的碰撞
//
// 查询结果可能包含重复和已死亡的弹珠柱。每次碰撞后球被移到
// 碰撞距离之外，同一弹珠柱的重复项不会再次命中。
func (s *BallPhysicsSystem) resolveBumpers(gs *game.GameState) {
	ball := gs.Ball
	collide := gs.Config.CollisionDistance()
	bonusHits := gs.Config.Score.BonusHitCount

	s.buf = gs.Grid.QueryBuf(ball.Bounds(), s.buf[:0])
	for _, bumper := range s.buf {
		if !bumper.IsAlive() || ball.Position.DistanceTo(bumper.Position) >= collide {
			continue
		}

		// 沿弹珠柱到球的方向推出到碰撞距离 + 1
		away := ball.Position.Sub(bumper.Position).Normalize()
		ball.Position = bumper.Position.Add(away.Scale(collide + 1))
		ball.Velocity = ball.Velocity.Reflect(bumper.Position.Sub(ball.Position))

		count := bumper.Hit()
		gs.Listeners.OnBumperHit(bumper)
		if count == bonusHits {
			gs.Listeners.OnBumperFourthHit(bumper)
		}
	}

	// 释放引用
	clear(s.buf)
}
