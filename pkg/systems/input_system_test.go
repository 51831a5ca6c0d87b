package systems

import (
	"testing"

	"github.com/decker502/plinko/pkg/utils"
)

// TestInputMouse 测试鼠标瞄准与发射
func TestInputMouse(t *testing.T) {
	s := NewInputSystem()

	in := s.resolve(rawInput{cursor: utils.V(300, 200)})
	if in.Aim != utils.V(300, 200) || in.Fire {
		t.Errorf("hover: got %+v", in)
	}

	in = s.resolve(rawInput{cursor: utils.V(310, 200), mouseClicked: true})
	if !in.Fire || in.Aim != utils.V(310, 200) {
		t.Errorf("click: got %+v", in)
	}

	in = s.resolve(rawInput{cursor: utils.V(0, 0), spacePressed: true})
	if !in.Fire {
		t.Error("space did not fire")
	}
}

// TestInputTouch 测试触摸按住瞄准、抬起发射
func TestInputTouch(t *testing.T) {
	s := NewInputSystem()

	steps := []struct {
		name string
		raw  rawInput
		aim  utils.Vec2
		fire bool
	}{
		{name: "press", raw: rawInput{touching: true, touch: utils.V(100, 100)}, aim: utils.V(100, 100)},
		{name: "drag", raw: rawInput{touching: true, touch: utils.V(150, 120)}, aim: utils.V(150, 120)},
		{name: "release", raw: rawInput{touchEnded: true}, aim: utils.V(150, 120), fire: true},
		{name: "after", raw: rawInput{cursor: utils.V(5, 5)}, aim: utils.V(5, 5)},
	}

	for _, step := range steps {
		in := s.resolve(step.raw)
		if in.Aim != step.aim || in.Fire != step.fire {
			t.Errorf("%s: aim=%+v fire=%v, want %+v and %v", step.name, in.Aim, in.Fire, step.aim, step.fire)
		}
	}
}

// TestInputToggles 测试按键映射
func TestInputToggles(t *testing.T) {
	s := NewInputSystem()

	in := s.resolve(rawInput{keyG: true, keyM: true, keyR: true})
	if !in.ToggleGrid || !in.ToggleSound || !in.Restart {
		t.Errorf("toggles: got %+v", in)
	}
}
