package components

import (
	"image/color"

	"github.com/decker502/plinko/pkg/utils"
)

const (
	// ScorePopupGravity 飘字上升加速度（每帧单位）
	ScorePopupGravity = 0.06
	// ScorePopupMaxSpeed 飘字速度达到该值时消失
	ScorePopupMaxSpeed = 4.0
)

// ScorePopup 得分飘字
//
// 在场地中心周围出现，向上加速飘动并逐渐淡出。
type ScorePopup struct {
	Position utils.Vec2 // 左上角位置
	VY       float64    // 当前上升速度
	Value    int        // 显示的分值
	Color    color.RGBA // 文字颜色
	Alpha    uint8      // 当前透明度
	Dead     bool       // 是否已消失
}

// NewScorePopup 创建得分飘字
func NewScorePopup(position utils.Vec2, value int, clr color.RGBA) *ScorePopup {
	return &ScorePopup{
		Position: position,
		Value:    value,
		Color:    clr,
		Alpha:    255,
	}
}

// Update 推进飘字动画
//
// 参数:
//   - dt: 帧时间缩放因子
func (p *ScorePopup) Update(dt float64) {
	if p.Dead {
		return
	}

	p.Position.Y -= p.VY * dt
	p.VY += ScorePopupGravity * dt
	if p.VY >= ScorePopupMaxSpeed {
		p.Dead = true
		return
	}
	p.Alpha = uint8(255 - int(utils.Lerp(0, 255, p.VY/ScorePopupMaxSpeed)))
}
