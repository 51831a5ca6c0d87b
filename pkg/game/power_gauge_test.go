package game

import (
	"math"
	"testing"

	"github.com/decker502/plinko/pkg/utils"
)

// TestComputePowerGauge 测试指示点与发射速度
func TestComputePowerGauge(t *testing.T) {
	source := utils.V(100, 100)
	target := utils.V(100+280, 100)

	gauge := ComputePowerGauge(source, target, 8, 20)

	if len(gauge.Dots) != 8 {
		t.Fatalf("dots: got %d, want 8", len(gauge.Dots))
	}
	if gauge.Dots[0] != target {
		t.Errorf("first dot: got %+v, want target %+v", gauge.Dots[0], target)
	}

	// 间距按等差递增：threshold = 2×280/56 = 10
	want := []float64{280, 280, 270, 250, 220, 180, 130, 70}
	for i, d := range gauge.Dots {
		if got := d.DistanceTo(source); math.Abs(got-want[i]) > 1e-9 {
			t.Errorf("dot %d distance: got %.3f, want %.3f", i, got, want[i])
		}
	}

	if math.Abs(gauge.Velocity.X-14) > 1e-9 || gauge.Velocity.Y != 0 {
		t.Errorf("velocity: got %+v, want (14, 0)", gauge.Velocity)
	}
}

// TestComputePowerGaugeZero 测试瞄准点与球心重合
func TestComputePowerGaugeZero(t *testing.T) {
	source := utils.V(50, 50)
	gauge := ComputePowerGauge(source, source, 4, 20)

	if !gauge.Velocity.IsZero() {
		t.Errorf("velocity: got %+v, want zero", gauge.Velocity)
	}
	for i, d := range gauge.Dots {
		if d != source {
			t.Errorf("dot %d: got %+v, want %+v", i, d, source)
		}
	}
}
