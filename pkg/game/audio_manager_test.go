package game

import (
	"testing"

	"github.com/decker502/plinko/pkg/components"
	"github.com/decker502/plinko/pkg/utils"
)

// TestAudioManagerListener 测试撞击事件触发对应音效
func TestAudioManagerListener(t *testing.T) {
	am := NewAudioManager(nil, NewSettingsManager(nil))
	b := components.NewBumper(utils.V(10, 10), 10)

	am.OnBumperHit(b)
	am.OnBumperHit(b)
	am.OnBumperFourthHit(b)

	if got := am.PlayCount(SoundPlink); got != 2 {
		t.Errorf("plink plays: got %d, want 2", got)
	}
	if got := am.PlayCount(SoundBonus); got != 1 {
		t.Errorf("bonus plays: got %d, want 1", got)
	}
}

// TestAudioManagerSoundDisabled 测试音效关闭时不播放
func TestAudioManagerSoundDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.ToggleSound()
	am := NewAudioManager(nil, sm)

	if am.PlaySound(SoundPlink) {
		t.Error("PlaySound() with sound disabled: got true")
	}
	if got := am.PlayCount(SoundPlink); got != 0 {
		t.Errorf("plink plays: got %d, want 0", got)
	}
}

// TestAudioManagerUnknownSound 测试未知音效
func TestAudioManagerUnknownSound(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.PlaySound("missing") {
		t.Error("PlaySound(missing): got true")
	}
}
