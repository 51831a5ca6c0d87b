package game

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/plinko/pkg/components"
	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/utils"
)

// ScoreTracker 计分器
//
// 监听弹珠柱撞击事件：
//   - 普通撞击得分 = 当前连击倍率，随后倍率加一；
//     距上次撞击超过连击窗口时倍率先重置为 1
//   - 同一弹珠柱达到奖励次数时额外获得固定奖励分
//
// 每次得分都会在场地中心附近生成一个飘字。
type ScoreTracker struct {
	cfg    config.ScoreConfig
	center utils.Vec2
	rng    *rand.Rand
	now    func() float64 // 当前模拟时间（秒）

	score      int
	multiplier int
	lastHitAt  float64
	hasHit     bool
	hits       int
	bonuses    int

	popups []*components.ScorePopup
}

// NewScoreTracker 创建计分器
//
// 参数:
//   - cfg: 计分配置
//   - center: 飘字环绕的中心点（场地中心）
//   - rng: 随机数源（飘字位置）
//   - now: 返回当前模拟时间（秒）的函数
func NewScoreTracker(cfg config.ScoreConfig, center utils.Vec2, rng *rand.Rand, now func() float64) *ScoreTracker {
	return &ScoreTracker{
		cfg:        cfg,
		center:     center,
		rng:        rng,
		now:        now,
		multiplier: 1,
	}
}

// OnBumperHit 实现 BumperHitListener
func (st *ScoreTracker) OnBumperHit(b *components.Bumper) {
	now := st.now()
	if st.hasHit && now-st.lastHitAt > st.cfg.ComboWindow {
		st.multiplier = 1
	}

	st.spawnPopup(st.multiplier, config.Palette[6])
	st.score += st.multiplier
	st.multiplier++
	st.hits++

	st.lastHitAt = now
	st.hasHit = true
}

// OnBumperFourthHit 实现 BumperHitListener
func (st *ScoreTracker) OnBumperFourthHit(b *components.Bumper) {
	st.score += st.cfg.BonusScore
	st.bonuses++
	st.spawnPopup(st.cfg.BonusScore, config.Palette[7])
	log.Printf("[ScoreTracker] Bonus at (%.0f,%.0f): +%d, total %d",
		b.Position.X, b.Position.Y, st.cfg.BonusScore, st.score)
}

// spawnPopup 在中心周围随机角度处生成飘字
func (st *ScoreTracker) spawnPopup(value int, clr color.RGBA) {
	angle := float64(st.rng.Intn(360))
	pos := st.center.Add(utils.FromAngle(angle).Scale(st.cfg.PopupRadius))
	st.popups = append(st.popups, components.NewScorePopup(pos, value, clr))
}

// Update 推进飘字动画并移除已消失的飘字
//
// 参数:
//   - dt: 帧时间缩放因子
func (st *ScoreTracker) Update(dt float64) {
	alive := st.popups[:0]
	for _, p := range st.popups {
		p.Update(dt)
		if !p.Dead {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(st.popups); i++ {
		st.popups[i] = nil
	}
	st.popups = alive
}

// Score 返回当前总分
func (st *ScoreTracker) Score() int {
	return st.score
}

// Multiplier 返回下一次撞击的连击倍率
func (st *ScoreTracker) Multiplier() int {
	return st.multiplier
}

// Hits 返回普通撞击次数
func (st *ScoreTracker) Hits() int {
	return st.hits
}

// Bonuses 返回奖励次数
func (st *ScoreTracker) Bonuses() int {
	return st.bonuses
}

// Popups 返回当前可见的飘字
func (st *ScoreTracker) Popups() []*components.ScorePopup {
	return st.popups
}
