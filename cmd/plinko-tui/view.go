package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

// 终端字符
const (
	runeBall       = '◉'
	runeBumper     = '●'
	runeDying      = '○'
	runeGauge      = '·'
	runeTimer      = '░'
	runeGridCorner = '+'
)

// terminalView 将场地按比例映射到终端字符网格
//
// 最后一行留给状态栏，其余行对应整个场地。
type terminalView struct {
	screen   tcell.Screen
	showGrid bool
}

// style 由调色板颜色构造前景样式，背景统一为 Palette[0]
func style(c color.RGBA) tcell.Style {
	bg := config.Palette[0]
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// fieldRows 场地可用的行数
func (v *terminalView) fieldRows() int {
	_, rows := v.screen.Size()
	if rows < 2 {
		return 1
	}
	return rows - 1
}

// toCell 场地坐标转换为字符坐标
func (v *terminalView) toCell(p utils.Vec2, cfg *config.GameConfig) (int, int) {
	cols, _ := v.screen.Size()
	rows := v.fieldRows()

	x := int(p.X / cfg.Field.Width * float64(cols))
	y := int(p.Y / cfg.Field.Height * float64(rows))
	return min(max(x, 0), cols-1), min(max(y, 0), rows-1)
}

// toField 字符坐标转换为场地坐标（取字符中心）
func (v *terminalView) toField(x, y int, cfg *config.GameConfig) utils.Vec2 {
	cols, _ := v.screen.Size()
	rows := v.fieldRows()

	return utils.V(
		(float64(x)+0.5)/float64(cols)*cfg.Field.Width,
		(float64(y)+0.5)/float64(rows)*cfg.Field.Height,
	)
}

// draw 绘制一帧
func (v *terminalView) draw(gs *game.GameState, aim utils.Vec2, best int) {
	cfg := gs.Config
	cols, _ := v.screen.Size()
	rows := v.fieldRows()

	base := style(config.Palette[0])
	v.screen.Fill(' ', base)

	// 计时器圆环：剩余部分从正上方顺时针排列
	center := utils.V(cfg.FieldCenter())
	consumedAngle := 360 * (1 - gs.Timer.Fraction())
	timerStyle := style(config.Palette[1])
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := v.toField(x, y, cfg)
			d := p.DistanceTo(center)
			if d > cfg.Timer.Radius || d < cfg.Timer.InnerRadius {
				continue
			}
			if clockwiseFromTop(p.Sub(center)) >= consumedAngle {
				v.screen.SetContent(x, y, runeTimer, nil, timerStyle)
			}
		}
	}

	// 分数位于最底层，球和弹珠柱覆盖其上
	cx, cy := v.toCell(center, cfg)
	score := strconv.Itoa(gs.Score.Score())
	v.drawText(cx-len(score)/2, cy-1, score, style(config.Palette[2]))

	if v.showGrid {
		gridStyle := style(config.GridOverlayColor)
		for _, key := range gs.Grid.Cells() {
			r := gs.Grid.CellRect(key)
			x, y := v.toCell(utils.V(r.X, r.Y), cfg)
			v.screen.SetContent(x, y, runeGridCorner, nil, gridStyle)
		}
	}

	for _, b := range gs.Field.Bumpers() {
		x, y := v.toCell(b.Position, cfg)
		if b.Dying {
			v.screen.SetContent(x, y, runeDying, nil, style(config.Palette[2]))
		} else {
			v.screen.SetContent(x, y, runeBumper, nil, style(config.Palette[3]))
		}
	}

	if gs.Ball.Stopped && !gs.RoundOver() {
		for _, dot := range gs.Aim(aim).Dots {
			x, y := v.toCell(dot, cfg)
			v.screen.SetContent(x, y, runeGauge, nil, style(config.Palette[4]))
		}
	}

	bx, by := v.toCell(gs.Ball.Position, cfg)
	v.screen.SetContent(bx, by, runeBall, nil, style(config.Palette[6]))

	status := fmt.Sprintf(" score %d  x%d  timer %3.0f%%  bumpers %d  best %d  | click/space launch  g grid  r restart  q quit",
		gs.Score.Score(), gs.Score.Multiplier(), gs.Timer.Fraction()*100, gs.Field.Len(), best)
	if gs.RoundOver() {
		status = fmt.Sprintf(" ROUND OVER  score %d  hits %d  bonuses %d  best %d  | r restart  q quit",
			gs.Score.Score(), gs.Score.Hits(), gs.Score.Bonuses(), best)
	}
	v.drawText(0, rows, status, style(config.Palette[5]))

	v.screen.Show()
}

// drawText 从 (x, y) 开始绘制单行文字，超出屏幕的部分截断
func (v *terminalView) drawText(x, y int, s string, st tcell.Style) {
	cols, _ := v.screen.Size()
	for _, r := range s {
		if x >= cols {
			return
		}
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

// clockwiseFromTop 返回向量相对正上方的顺时针角度 [0, 360)
func clockwiseFromTop(d utils.Vec2) float64 {
	angle := math.Atan2(d.Y, d.X)*180/math.Pi + 90
	if angle < 0 {
		angle += 360
	}
	return math.Mod(angle, 360)
}
