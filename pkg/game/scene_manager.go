package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

var errNoRoundFactory = errors.New("round factory not set")

// RoundFactory 回合场景工厂函数类型
// 由 app 层注入，避免 game 包依赖 scenes 包
type RoundFactory func() (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	roundFactory RoundFactory
	rounds       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or StartRound to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetRoundFactory 设置回合场景工厂函数
func (sm *SceneManager) SetRoundFactory(factory RoundFactory) {
	sm.roundFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// StartRound 创建新回合并切换过去
//
// 创建失败时保持当前场景不变。
//
// 返回：
//   - error: 工厂未设置或创建失败时返回错误
func (sm *SceneManager) StartRound() error {
	if sm.roundFactory == nil {
		return errNoRoundFactory
	}

	scene, err := sm.roundFactory()
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建回合场景: %v", err)
		return err
	}

	sm.rounds++
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 开始第 %d 回合", sm.rounds)
	return nil
}

// Rounds 返回已开始的回合数
func (sm *SceneManager) Rounds() int {
	return sm.rounds
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
