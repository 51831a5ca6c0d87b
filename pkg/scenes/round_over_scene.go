package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

// roundOverFadeSeconds 结束面板淡入时长
const roundOverFadeSeconds = 0.6

// RoundOverScene 回合结束画面
//
// 以回合最后一帧为背景，淡入遮罩和成绩；淡入完成后点击或按 R 开始新回合。
type RoundOverScene struct {
	deps     *Deps
	result   game.RoundRecord
	newBest  bool
	best     int
	snapshot *ebiten.Image
	elapsed  float64
}

// NewRoundOverScene 创建结束画面
func NewRoundOverScene(deps *Deps, result game.RoundRecord, newBest bool, snapshot *ebiten.Image) *RoundOverScene {
	best := result.Score
	if deps.Scores != nil {
		best = deps.Scores.Best().Score
	}
	return &RoundOverScene{
		deps:     deps,
		result:   result,
		newBest:  newBest,
		best:     best,
		snapshot: snapshot,
	}
}

// progress 淡入进度 [0, 1]（已缓动）
func (s *RoundOverScene) progress() float64 {
	return utils.EaseOutCubic(utils.Clamp01(s.elapsed / roundOverFadeSeconds))
}

// Update 推进淡入并等待重新开始
func (s *RoundOverScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	in := s.deps.Input.Poll()
	if s.elapsed < roundOverFadeSeconds {
		return
	}
	if in.Fire || in.Restart {
		if err := s.deps.Scenes.StartRound(); err != nil {
			log.Printf("[RoundOverScene] Restart failed: %v", err)
		}
	}
}

// Draw 绘制结束画面
func (s *RoundOverScene) Draw(screen *ebiten.Image) {
	if s.snapshot != nil {
		screen.DrawImage(s.snapshot, nil)
	} else {
		screen.Fill(config.Palette[0])
	}

	p := s.progress()
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	overlay := config.WithAlpha(config.Palette[0], uint8(utils.Lerp(0, 200, p)))
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlay, false)

	textColor := func(c color.RGBA) color.NRGBA {
		return config.WithAlpha(c, uint8(utils.Lerp(0, 255, p)))
	}

	// 标题从上方滑入
	titleY := utils.Lerp(h/2-140, h/2-90, p)
	s.deps.Renderer.DrawCentered(screen, "ROUND OVER", w/2, titleY, textColor(config.Palette[7]))
	s.deps.Renderer.DrawCentered(screen, fmt.Sprintf("SCORE %d", s.result.Score), w/2, h/2-20, textColor(config.Palette[6]))

	bestLine := fmt.Sprintf("BEST %d", s.best)
	if s.newBest {
		bestLine = "NEW BEST!"
	}
	s.deps.Renderer.DrawCentered(screen, bestLine, w/2, h/2+30, textColor(config.Palette[5]))

	stats := fmt.Sprintf("hits %d   bonuses %d   cleared %d   launches %d",
		s.result.Hits, s.result.Bonuses, s.result.BumpersCleared, s.result.Launches)
	s.deps.Renderer.DrawHint(screen, stats+"   |   "+replayHint(), textColor(config.Palette[4]))
}
