// plinko-tui 终端版 Plinko
//
// 与图形版共用同一套模拟核心，用字符网格显示场地，鼠标瞄准。
//
// 用法:
//
//	go run ./cmd/plinko-tui [--seed 42] [--bumpers 120] [--verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/systems"
	"github.com/decker502/plinko/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "将日志写入 plinko-tui.log")
	configPath = flag.String("config", "", "调参配置文件路径（默认使用内置默认值）")
	seed       = flag.Int64("seed", 0, "第一回合的随机种子（0 表示使用当前时间）")
	bumpers    = flag.Int("bumpers", -1, "覆盖弹珠柱数量（-1 表示使用配置）")
)

// tickRate 模拟频率
const tickRate = 60

func main() {
	flag.Parse()

	// 终端被占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.Create("plinko-tui.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "plinko-tui: %v\n", err)
		os.Exit(1)
	}
}

// tuiGame 终端版的回合循环
type tuiGame struct {
	cfg    *config.GameConfig
	view   *terminalView
	scores *game.HighScoreManager
	seed   int64

	state    *game.GameState
	sim      *systems.Simulation
	aim      utils.Vec2
	recorded bool
}

func run() error {
	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *bumpers >= 0 {
		cfg.Bumper.Count = *bumpers
	}

	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "plinko"}); err != nil {
		log.Printf("[TUI] Warning: gdata unavailable: %v", err)
	} else {
		gdataManager = m
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	g := &tuiGame{
		cfg:    cfg,
		view:   &terminalView{screen: screen},
		scores: game.NewHighScoreManager(gdataManager),
		seed:   *seed,
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	if err := g.newRound(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			quit, err := g.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				g.record()
				return nil
			}
		case now := <-ticker.C:
			seconds := min(now.Sub(last).Seconds(), config.MaxFrameSeconds)
			last = now

			if g.sim.Step(seconds * cfg.Field.TargetFPS) {
				g.record()
			}
			g.view.draw(g.state, g.aim, g.scores.Best().Score)
		}
	}
}

// newRound 开始新回合，之后的回合种子在上一个的基础上递增
func (g *tuiGame) newRound() error {
	gs, err := game.NewGameState(g.cfg, g.seed)
	if err != nil {
		return err
	}
	g.seed++

	g.state = gs
	g.sim = systems.NewSimulation(gs)
	g.aim = gs.Ball.Position
	g.recorded = false
	return nil
}

// handle 处理终端事件，返回是否退出
func (g *tuiGame) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.view.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.aim = g.view.toField(x, y, g.cfg)
		if ev.Buttons()&tcell.Button1 != 0 {
			g.state.TryLaunch(g.aim)
		}
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return true, nil
		case ev.Rune() == ' ':
			g.state.TryLaunch(g.aim)
		case ev.Rune() == 'g':
			g.view.showGrid = !g.view.showGrid
		case ev.Rune() == 'r':
			g.record()
			if err := g.newRound(); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// record 记录回合成绩（已发射的回合只记录一次）
func (g *tuiGame) record() {
	if g.recorded || g.state.Launches == 0 {
		return
	}
	g.recorded = true
	if _, err := g.scores.RecordRound(g.state.Result()); err != nil {
		log.Printf("[TUI] Warning: %v", err)
	}
}
