package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/plinko/pkg/utils"
)

// Input 一帧内的玩家意图
type Input struct {
	Aim         utils.Vec2 // 瞄准点（场地坐标）
	Fire        bool       // 发射
	Restart     bool       // 重新开始
	ToggleGrid  bool       // 切换网格显示
	ToggleSound bool       // 切换音效
}

// rawInput 从 ebiten 读取的原始输入
type rawInput struct {
	cursor       utils.Vec2
	mouseClicked bool
	spacePressed bool
	touching     bool       // 当前是否有触摸
	touch        utils.Vec2 // 当前触摸位置
	touchEnded   bool       // 本帧有触摸抬起
	keyG         bool
	keyM         bool
	keyR         bool
}

// InputSystem 将鼠标、触摸和键盘输入转换为 Input
//
// 鼠标：光标瞄准，左键按下发射。
// 触摸：按住时瞄准，抬起时以最后的触摸位置发射。
// 键盘：空格发射，G 网格，M 音效，R 重新开始。
type InputSystem struct {
	touchAim    utils.Vec2 // 最近一次触摸位置
	hasTouchAim bool
	touchIDs    []ebiten.TouchID
}

// NewInputSystem 创建输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll 读取本帧输入
func (s *InputSystem) Poll() Input {
	cx, cy := ebiten.CursorPosition()
	raw := rawInput{
		cursor:       utils.V(float64(cx), float64(cy)),
		mouseClicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		spacePressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		keyG:         inpututil.IsKeyJustPressed(ebiten.KeyG),
		keyM:         inpututil.IsKeyJustPressed(ebiten.KeyM),
		keyR:         inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		raw.touching = true
		raw.touch = utils.V(float64(tx), float64(ty))
	}

	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	raw.touchEnded = len(s.touchIDs) > 0

	return s.resolve(raw)
}

// resolve 合并原始输入
//
// 有触摸或刚抬起触摸时以触摸位置瞄准，否则使用鼠标光标。
func (s *InputSystem) resolve(raw rawInput) Input {
	in := Input{
		Aim:         raw.cursor,
		Fire:        raw.mouseClicked || raw.spacePressed,
		Restart:     raw.keyR,
		ToggleGrid:  raw.keyG,
		ToggleSound: raw.keyM,
	}

	if raw.touching {
		s.touchAim = raw.touch
		s.hasTouchAim = true
	}

	if s.hasTouchAim {
		in.Aim = s.touchAim
		if raw.touchEnded && !raw.touching {
			in.Fire = true
			in.Restart = true
			s.hasTouchAim = false
		}
	}

	return in
}
