package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/plinko/pkg/components"
)

// AudioManager 音频管理器
// 职责：
//   - 持有合成好的音效 PCM 数据，按 ID 播放
//   - 与 SettingsManager 联动（音效开关、音量）
//   - 作为撞击监听器，在撞击和奖励时播放对应音效
//
// audio 上下文为 nil 时所有播放静默失败（无音频设备或测试环境）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager  // 设置管理器（用于读取音量设置，可为 nil）
	sounds          map[string][]byte // 音效ID -> PCM 数据
	plays           map[string]int    // 每个音效的播放次数
}

// NewAudioManager 创建新的音频管理器并合成内置音效
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		sounds: map[string][]byte{
			SoundPlink: SynthesizePlink(),
			SoundBonus: SynthesizeBonus(),
		},
		plays: make(map[string]int),
	}
	log.Printf("[AudioManager] Synthesized %d sounds (context available: %v)", len(am.sounds), ctx != nil)
	return am
}

// PlaySound 播放音效
//
// 每次播放创建新的播放器，允许同一音效重叠播放。
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %s", soundID)
		return false
	}

	am.plays[soundID]++
	if am.context == nil {
		return false
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	return true
}

// PlayCount 返回音效被请求播放的次数（不含因设置禁用而跳过的）
func (am *AudioManager) PlayCount(soundID string) int {
	return am.plays[soundID]
}

// OnBumperHit 实现 BumperHitListener
func (am *AudioManager) OnBumperHit(*components.Bumper) {
	am.PlaySound(SoundPlink)
}

// OnBumperFourthHit 实现 BumperHitListener
func (am *AudioManager) OnBumperFourthHit(*components.Bumper) {
	am.PlaySound(SoundBonus)
}

// getSoundVolume 获取当前音效音量
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
