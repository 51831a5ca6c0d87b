package components

import "github.com/decker502/plinko/pkg/utils"

// Ball 玩家发射的球
//
// Stopped 为 true 表示等待发射；发射后为 false，
// 速度衰减到（四舍五入后）为零时由物理系统重新置为 true。
type Ball struct {
	Position utils.Vec2 // 圆心位置
	Velocity utils.Vec2 // 速度（像素/帧单位）
	Radius   float64    // 半径
	Stopped  bool       // 是否静止等待发射
}

// NewBall 在指定位置创建静止的球
func NewBall(position utils.Vec2, radius float64) *Ball {
	return &Ball{
		Position: position,
		Radius:   radius,
		Stopped:  true,
	}
}

// Bounds 返回球的轴对齐包围盒
func (b *Ball) Bounds() utils.Rect {
	return utils.RectAround(b.Position, b.Radius)
}

// Launch 以给定初速度发射
//
// 只有静止状态下才能发射，零速度视为无效发射。
// 返回是否发射成功。
func (b *Ball) Launch(velocity utils.Vec2) bool {
	if !b.Stopped || velocity.IsZero() {
		return false
	}
	b.Velocity = velocity
	b.Stopped = false
	return true
}

// Speed 返回当前速度大小
func (b *Ball) Speed() float64 {
	return b.Velocity.Len()
}
