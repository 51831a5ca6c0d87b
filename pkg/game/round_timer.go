package game

import (
	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/utils"
)

// RoundTimer 回合径向计时器
//
// 计时器由 Segments 个扇形分段组成，首次发射后开始计时，
// 每累计 TickFrames 个帧单位移除一段，全部移除后回合结束。
type RoundTimer struct {
	segments   int
	remaining  int
	tickFrames float64
	counter    float64
	started    bool
}

// NewRoundTimer 创建未启动的计时器
func NewRoundTimer(cfg config.TimerConfig) *RoundTimer {
	return &RoundTimer{
		segments:   cfg.Segments,
		remaining:  cfg.Segments,
		tickFrames: cfg.TickFrames,
	}
}

// Start 开始计时（重复调用无效果）
func (t *RoundTimer) Start() {
	t.started = true
}

// Started 是否已开始计时
func (t *RoundTimer) Started() bool {
	return t.started
}

// Update 推进计时器
//
// 参数:
//   - dt: 帧时间缩放因子
//
// 返回:
//   - bool: 计时器是否已耗尽
func (t *RoundTimer) Update(dt float64) bool {
	if !t.started || t.remaining == 0 {
		return t.remaining == 0
	}

	t.counter += dt
	for t.counter > t.tickFrames && t.remaining > 0 {
		t.counter -= t.tickFrames
		t.remaining--
	}
	return t.remaining == 0
}

// Expired 计时器是否已耗尽
func (t *RoundTimer) Expired() bool {
	return t.remaining == 0
}

// Remaining 剩余分段数
func (t *RoundTimer) Remaining() int {
	return t.remaining
}

// Fraction 剩余比例 [0, 1]
func (t *RoundTimer) Fraction() float64 {
	return float64(t.remaining) / float64(t.segments)
}

// Polygon 返回剩余扇形的多边形顶点（扇形中心 + 弧上各点）
//
// 分段从正上方开始顺时针排列，消耗从正上方的一端开始。
// 剩余为 0 时返回 nil。
func (t *RoundTimer) Polygon(center utils.Vec2, radius float64) []utils.Vec2 {
	if t.remaining == 0 {
		return nil
	}

	step := 360 / float64(t.segments)
	consumed := t.segments - t.remaining

	points := make([]utils.Vec2, 0, t.remaining+2)
	points = append(points, center)
	for index := t.segments; index >= consumed; index-- {
		angle := -90 + step*float64(index)
		points = append(points, center.Add(utils.FromAngle(angle).Scale(radius)))
	}
	return points
}
