package game

import "github.com/decker502/plinko/pkg/components"

// BumperHitListener 弹珠柱撞击事件监听器
//
// 事件在碰撞处理过程中同步触发。
type BumperHitListener interface {
	// OnBumperHit 每次球撞击存活的弹珠柱时调用
	OnBumperHit(b *components.Bumper)

	// OnBumperFourthHit 弹珠柱累计被击中达到奖励次数时调用（仅一次）
	OnBumperFourthHit(b *components.Bumper)
}

// HitListeners 将撞击事件按注册顺序分发给多个监听器
type HitListeners struct {
	listeners []BumperHitListener
}

// Add 注册监听器，nil 会被忽略
func (h *HitListeners) Add(l BumperHitListener) {
	if l == nil {
		return
	}
	h.listeners = append(h.listeners, l)
}

// OnBumperHit 实现 BumperHitListener
func (h *HitListeners) OnBumperHit(b *components.Bumper) {
	for _, l := range h.listeners {
		l.OnBumperHit(b)
	}
}

// OnBumperFourthHit 实现 BumperHitListener
func (h *HitListeners) OnBumperFourthHit(b *components.Bumper) {
	for _, l := range h.listeners {
		l.OnBumperFourthHit(b)
	}
}
