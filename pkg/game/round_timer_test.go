package game

import (
	"math"
	"testing"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/utils"
)

// TestRoundTimerNotStarted 测试未启动的计时器不计时
func TestRoundTimerNotStarted(t *testing.T) {
	timer := NewRoundTimer(config.TimerConfig{Segments: 4, TickFrames: 10})

	for i := 0; i < 100; i++ {
		if timer.Update(5) {
			t.Fatal("timer expired before Start()")
		}
	}
	if timer.Remaining() != 4 || timer.Fraction() != 1 {
		t.Errorf("Remaining=%d Fraction=%.2f, want 4 and 1", timer.Remaining(), timer.Fraction())
	}
}

// TestRoundTimerTicks 测试分段移除节奏
func TestRoundTimerTicks(t *testing.T) {
	timer := NewRoundTimer(config.TimerConfig{Segments: 4, TickFrames: 10})
	timer.Start()

	tests := []struct {
		dt        float64
		remaining int
		expired   bool
	}{
		{dt: 10, remaining: 4}, // 计数需超过 tickFrames
		{dt: 1, remaining: 3},
		{dt: 25, remaining: 1}, // 一帧可移除多段
		{dt: 4, remaining: 1},
		{dt: 5, remaining: 0, expired: true},
		{dt: 50, remaining: 0, expired: true},
	}

	for i, tt := range tests {
		expired := timer.Update(tt.dt)
		if expired != tt.expired || timer.Remaining() != tt.remaining {
			t.Errorf("step %d: expired=%v remaining=%d, want %v and %d",
				i, expired, timer.Remaining(), tt.expired, tt.remaining)
		}
	}
	if !timer.Expired() || timer.Polygon(utils.V(0, 0), 10) != nil {
		t.Error("expired timer should report Expired and have no polygon")
	}
}

// TestRoundTimerPolygon 测试扇形多边形顶点
func TestRoundTimerPolygon(t *testing.T) {
	timer := NewRoundTimer(config.TimerConfig{Segments: 4, TickFrames: 10})
	center := utils.V(100, 100)

	full := timer.Polygon(center, 10)
	if len(full) != 6 {
		t.Fatalf("full polygon: got %d points, want 6", len(full))
	}
	if full[0] != center {
		t.Errorf("first point: got %+v, want center", full[0])
	}

	// 首尾弧点都在正上方
	for _, p := range []utils.Vec2{full[1], full[len(full)-1]} {
		if math.Abs(p.X-100) > 1e-9 || math.Abs(p.Y-90) > 1e-9 {
			t.Errorf("arc endpoint: got %+v, want (100, 90)", p)
		}
	}

	timer.Start()
	timer.Update(11)
	partial := timer.Polygon(center, 10)
	if len(partial) != 5 {
		t.Fatalf("partial polygon: got %d points, want 5", len(partial))
	}
	// 消耗一段后最后一个弧点在正右方
	last := partial[len(partial)-1]
	if math.Abs(last.X-110) > 1e-9 || math.Abs(last.Y-100) > 1e-9 {
		t.Errorf("partial arc end: got %+v, want (110, 100)", last)
	}
}
