package app

import "time"

// FrameClock 计算相邻两帧之间的真实时间
//
// 第一次 Tick 返回 0；单帧时间限制在 maxSeconds 以内，
// 防止窗口被拖动或切到后台后一次推进过多。
type FrameClock struct {
	now        func() time.Time
	last       time.Time
	started    bool
	maxSeconds float64
}

// NewFrameClock 创建帧时钟
//
// 参数:
//   - now: 时间源，为 nil 时使用 time.Now
//   - maxSeconds: 单帧最大秒数
func NewFrameClock(now func() time.Time, maxSeconds float64) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now, maxSeconds: maxSeconds}
}

// Tick 返回距上一次 Tick 的秒数
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	elapsed := t.Sub(c.last).Seconds()
	c.last = t

	if elapsed < 0 {
		return 0
	}
	if elapsed > c.maxSeconds {
		return c.maxSeconds
	}
	return elapsed
}
