package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)
	return screen
}

func newTestGame(t *testing.T) *tuiGame {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Bumper.Count = 0

	g := &tuiGame{
		cfg:    cfg,
		view:   &terminalView{screen: newTestScreen(t)},
		scores: game.NewHighScoreManager(nil),
		seed:   7,
	}
	if err := g.newRound(); err != nil {
		t.Fatalf("newRound() error: %v", err)
	}
	return g
}

// rowText 读取一整行字符
func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

// TestCellMapping 测试字符坐标与场地坐标互相转换
func TestCellMapping(t *testing.T) {
	cfg := config.DefaultGameConfig()
	view := &terminalView{screen: newTestScreen(t)}

	cells := [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 5}}
	for _, c := range cells {
		p := view.toField(c[0], c[1], cfg)
		x, y := view.toCell(p, cfg)
		if x != c[0] || y != c[1] {
			t.Errorf("toCell(toField(%d, %d)): got (%d, %d)", c[0], c[1], x, y)
		}
	}

	// 场地外的坐标截断到边缘，且不会落在状态栏
	x, y := view.toCell(utils.V(cfg.Field.Width*10, cfg.Field.Height*10), cfg)
	if x != 79 || y != 23 {
		t.Errorf("out of field: got (%d, %d), want (79, 23)", x, y)
	}
}

// TestDrawBallAndStatus 测试绘制球与状态栏
func TestDrawBallAndStatus(t *testing.T) {
	g := newTestGame(t)
	g.view.draw(g.state, g.aim, 0)

	bx, by := g.view.toCell(g.state.Ball.Position, g.cfg)
	if r, _, _, _ := g.view.screen.GetContent(bx, by); r != runeBall {
		t.Errorf("ball cell: got %q, want %q", r, runeBall)
	}

	status := rowText(g.view.screen, 24)
	if !strings.HasPrefix(status, " score 0") {
		t.Errorf("status line: got %q", status)
	}
}

// TestHandleEvents 测试按键与鼠标事件
func TestHandleEvents(t *testing.T) {
	g := newTestGame(t)

	if quit, _ := g.handle(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)); quit || !g.view.showGrid {
		t.Errorf("'g': quit=%v showGrid=%v", quit, g.view.showGrid)
	}

	// 鼠标左键在球右侧点击即发射
	bx, by := g.view.toCell(g.state.Ball.Position, g.cfg)
	g.handle(tcell.NewEventMouse(bx+10, by, tcell.Button1, tcell.ModNone))
	if g.state.Launches != 1 || g.state.Ball.Stopped {
		t.Errorf("after click: launches=%d stopped=%v", g.state.Launches, g.state.Ball.Stopped)
	}

	// 重新开始会记录已发射的回合
	if _, err := g.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)); err != nil {
		t.Fatalf("'r' error: %v", err)
	}
	if got := len(g.scores.Rounds()); got != 1 {
		t.Errorf("recorded rounds: got %d, want 1", got)
	}
	if g.state.Launches != 0 || g.state.Seed != 8 {
		t.Errorf("new round: launches=%d seed=%d", g.state.Launches, g.state.Seed)
	}

	if quit, _ := g.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Error("Esc: got quit=false")
	}
}
