package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/systems"
	"github.com/decker502/plinko/pkg/utils"
)

// GameScene 一个进行中的回合
//
// 生命周期：
//  1. 创建时生成弹珠柱布局，球静止在场地中心
//  2. 首次发射后计时器开始
//  3. 计时器耗尽后，下一次 Draw 复制画面作为截图，
//     随后的 Update 保存截图、记录成绩并切换到 RoundOverScene
type GameScene struct {
	deps  *Deps
	state *game.GameState
	sim   *systems.Simulation
	aim   utils.Vec2

	snapshot *ebiten.Image // 回合结束时的画面
	recorded bool
}

// NewGameScene 创建新回合
//
// 参数:
//   - deps: 共享依赖
//   - seed: 布局随机种子
//
// 返回:
//   - *GameScene: 回合场景
//   - error: 布局生成失败时返回错误
func NewGameScene(deps *Deps, seed int64) (*GameScene, error) {
	gs, err := game.NewGameState(deps.Config, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	if deps.Audio != nil {
		gs.Listeners.Add(deps.Audio)
	}

	return &GameScene{
		deps:  deps,
		state: gs,
		sim:   systems.NewSimulation(gs),
		aim:   gs.Ball.Position,
	}, nil
}

// State 返回回合状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Update 处理输入并推进模拟
//
// 参数:
//   - deltaTime: 距上一帧的秒数（已由 app 层限幅）
func (s *GameScene) Update(deltaTime float64) {
	if s.snapshot != nil {
		s.finish()
		return
	}

	in := s.deps.Input.Poll()
	s.aim = in.Aim
	s.applyToggles(in)

	if in.Restart && !in.Fire {
		if err := s.deps.Scenes.StartRound(); err != nil {
			log.Printf("[GameScene] Restart failed: %v", err)
		}
		return
	}
	if in.Fire {
		s.state.TryLaunch(in.Aim)
	}

	s.sim.Step(deltaTime * s.deps.Config.Field.TargetFPS)
}

// applyToggles 处理设置切换按键
func (s *GameScene) applyToggles(in systems.Input) {
	if s.deps.Settings == nil {
		return
	}
	if in.ToggleGrid {
		log.Printf("[GameScene] Grid overlay: %v", s.deps.Settings.ToggleGrid())
	}
	if in.ToggleSound {
		log.Printf("[GameScene] Sound: %v", s.deps.Settings.ToggleSound())
	}
}

// Draw 绘制回合画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	showGrid := s.deps.Settings != nil && s.deps.Settings.GetSettings().ShowGrid
	s.deps.Renderer.Draw(screen, s.state, systems.RenderView{Aim: s.aim, ShowGrid: showGrid})

	if !s.state.Timer.Started() {
		s.deps.Renderer.DrawHint(screen, launchHint(), config.Palette[5])
	}

	// 回合结束的最后一帧作为截图
	if s.state.RoundOver() && s.snapshot == nil {
		bounds := screen.Bounds()
		s.snapshot = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		s.snapshot.DrawImage(screen, nil)
	}
}

// finish 保存截图、记录成绩并切换到结束画面
func (s *GameScene) finish() {
	result, newBest := s.record()

	if s.deps.Scores != nil {
		png, err := encodeScreenshot(s.snapshot)
		if err == nil {
			_, err = s.deps.Scores.SaveScreenshot(result.Score, png)
		}
		if err != nil {
			log.Printf("[GameScene] Warning: %v", err)
		}
	}

	s.deps.Scenes.SwitchTo(NewRoundOverScene(s.deps, result, newBest, s.snapshot))
}

// record 记录回合成绩（只记录一次）
func (s *GameScene) record() (game.RoundRecord, bool) {
	result := s.state.Result()
	if s.recorded || s.deps.Scores == nil {
		return result, false
	}
	s.recorded = true

	newBest, err := s.deps.Scores.RecordRound(result)
	if err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}
	log.Printf("[GameScene] Round over: score=%d hits=%d bonuses=%d cleared=%d",
		result.Score, result.Hits, result.Bonuses, result.BumpersCleared)
	return result, newBest
}

// FinishRound 实现 game.RoundFinisher
//
// 程序退出时记录已开始但未结束的回合；从未发射的回合不记录。
func (s *GameScene) FinishRound() bool {
	if s.recorded || s.state.Launches == 0 {
		return true
	}
	s.record()
	return true
}
