package game

import (
	"math/rand"
	"testing"

	"github.com/decker502/plinko/pkg/components"
	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/utils"
)

// newTestTracker 创建使用可控时钟的计分器
func newTestTracker(now *float64) *ScoreTracker {
	cfg := config.DefaultGameConfig().Score
	return NewScoreTracker(cfg, utils.V(640, 360), rand.New(rand.NewSource(1)), func() float64 { return *now })
}

// TestScoreTrackerCombo 测试连击倍率的递增与重置
func TestScoreTrackerCombo(t *testing.T) {
	now := 0.0
	st := newTestTracker(&now)
	b := components.NewBumper(utils.V(100, 100), 10)

	tests := []struct {
		at         float64
		score      int
		multiplier int
	}{
		{at: 0.0, score: 1, multiplier: 2},
		{at: 1.0, score: 3, multiplier: 3},
		{at: 2.5, score: 6, multiplier: 4}, // 间隔恰好等于窗口，不重置
		{at: 4.5, score: 7, multiplier: 2}, // 超出窗口，倍率重置为 1
		{at: 4.6, score: 9, multiplier: 3},
	}

	for _, tt := range tests {
		now = tt.at
		st.OnBumperHit(b)
		if st.Score() != tt.score || st.Multiplier() != tt.multiplier {
			t.Errorf("hit at %.1f: score=%d multiplier=%d, want %d and %d",
				tt.at, st.Score(), st.Multiplier(), tt.score, tt.multiplier)
		}
	}

	if st.Hits() != len(tests) {
		t.Errorf("Hits(): got %d, want %d", st.Hits(), len(tests))
	}
	if len(st.Popups()) != len(tests) {
		t.Errorf("Popups(): got %d, want %d", len(st.Popups()), len(tests))
	}
}

// TestScoreTrackerBonus 测试奖励分不影响倍率
func TestScoreTrackerBonus(t *testing.T) {
	now := 0.0
	st := newTestTracker(&now)
	b := components.NewBumper(utils.V(100, 100), 10)

	st.OnBumperHit(b)
	st.OnBumperFourthHit(b)

	if st.Score() != 1+500 {
		t.Errorf("Score(): got %d, want 501", st.Score())
	}
	if st.Multiplier() != 2 || st.Bonuses() != 1 {
		t.Errorf("Multiplier=%d Bonuses=%d, want 2 and 1", st.Multiplier(), st.Bonuses())
	}

	popups := st.Popups()
	last := popups[len(popups)-1]
	if last.Value != 500 || last.Color != config.Palette[7] {
		t.Errorf("bonus popup: value=%d color=%v", last.Value, last.Color)
	}
}

// TestScoreTrackerPopupPlacement 测试飘字出现在中心周围的圆上并最终消失
func TestScoreTrackerPopupPlacement(t *testing.T) {
	now := 0.0
	st := newTestTracker(&now)
	b := components.NewBumper(utils.V(100, 100), 10)

	for i := 0; i < 20; i++ {
		st.OnBumperHit(b)
	}
	for _, p := range st.Popups() {
		d := p.Position.DistanceTo(utils.V(640, 360))
		if d < 69.999 || d > 70.001 {
			t.Errorf("popup distance from center: got %.3f, want 70", d)
		}
	}

	for i := 0; i < 200 && len(st.Popups()) > 0; i++ {
		st.Update(1)
	}
	if len(st.Popups()) != 0 {
		t.Errorf("popups not cleared: %d left", len(st.Popups()))
	}
}
