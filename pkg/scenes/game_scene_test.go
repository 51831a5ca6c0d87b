package scenes

import (
	"testing"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

// newTestDeps 创建不依赖窗口与存储的场景依赖
func newTestDeps(bumpers int) *Deps {
	cfg := config.DefaultGameConfig()
	cfg.Bumper.Count = bumpers

	settings := game.NewSettingsManager(nil)
	return &Deps{
		Config:   cfg,
		Scenes:   game.NewSceneManager(),
		Settings: settings,
		Audio:    game.NewAudioManager(nil, settings),
		Scores:   game.NewHighScoreManager(nil),
		Seed:     RandomSeeds(1),
	}
}

// TestRandomSeeds 测试第一回合使用基础种子，之后的种子确定且变化
func TestRandomSeeds(t *testing.T) {
	a, b := RandomSeeds(99), RandomSeeds(99)

	if first := a(); first != 99 {
		t.Errorf("first seed: got %d, want 99", first)
	}
	b()
	for i := 0; i < 5; i++ {
		if x, y := a(), b(); x != y {
			t.Fatalf("seed %d differs: %d vs %d", i, x, y)
		}
	}
}

// TestNewGameSceneInfeasible 测试布局失败时返回错误
func TestNewGameSceneInfeasible(t *testing.T) {
	deps := newTestDeps(5000)
	deps.Config.Bumper.PlacementMaxAttempts = 20

	if _, err := NewGameScene(deps, 1); err == nil {
		t.Fatal("NewGameScene() with impossible density: got nil error")
	}
}

// TestGameSceneAudioListener 测试音效监听器注册到回合
func TestGameSceneAudioListener(t *testing.T) {
	deps := newTestDeps(3)
	scene, err := NewGameScene(deps, 1)
	if err != nil {
		t.Fatalf("NewGameScene() error: %v", err)
	}

	scene.State().Listeners.OnBumperHit(scene.State().Field.Bumpers()[0])
	if got := deps.Audio.PlayCount(game.SoundPlink); got != 1 {
		t.Errorf("plink plays: got %d, want 1", got)
	}
}

// TestGameSceneFinishRound 测试退出时只记录已发射的回合，且只记录一次
func TestGameSceneFinishRound(t *testing.T) {
	deps := newTestDeps(3)
	scene, err := NewGameScene(deps, 1)
	if err != nil {
		t.Fatalf("NewGameScene() error: %v", err)
	}

	scene.FinishRound()
	if len(deps.Scores.Rounds()) != 0 {
		t.Fatalf("unlaunched round recorded: %d", len(deps.Scores.Rounds()))
	}

	gs := scene.State()
	gs.TryLaunch(gs.Ball.Position.Add(utils.V(50, 0)))
	gs.Listeners.OnBumperHit(gs.Field.Bumpers()[0])

	scene.FinishRound()
	scene.FinishRound()
	rounds := deps.Scores.Rounds()
	if len(rounds) != 1 || rounds[0].Score != 1 || rounds[0].Launches != 1 {
		t.Errorf("recorded rounds: got %+v", rounds)
	}
}

// TestHintsFollowPlatform 测试提示文字随平台切换
func TestHintsFollowPlatform(t *testing.T) {
	t.Setenv("PLINKO_MOBILE_EMULATE", "")
	if got := launchHint(); got != "aim with the mouse, click to launch" {
		t.Errorf("desktop launchHint(): got %q", got)
	}

	t.Setenv("PLINKO_MOBILE_EMULATE", "1")
	if got := replayHint(); got != "tap to play again" {
		t.Errorf("mobile replayHint(): got %q", got)
	}
}
