package systems

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

// RenderView 渲染时需要的、不属于回合状态的信息
type RenderView struct {
	Aim      utils.Vec2 // 当前瞄准点
	ShowGrid bool       // 是否显示空间哈希网格
}

// RenderSystem 绘制回合画面
//
// 绘制顺序（后绘制的在上层）：
//  1. 背景与径向计时器
//  2. 总分与得分飘字
//  3. 球、弹珠柱（含死亡光晕）
//  4. 力度指示器（球静止时）
//  5. 网格叠加层（调试）
type RenderSystem struct {
	white      *ebiten.Image // 1x1 白色子图，DrawTriangles 的纹理
	scoreFace  *text.GoTextFace
	popupFace  *text.GoTextFace
	hintFace   *text.GoTextFace
	timerVerts []ebiten.Vertex
	timerIdx   []uint16
}

// NewRenderSystem 创建渲染系统
//
// 返回:
//   - *RenderSystem: 渲染系统实例
//   - error: 字体加载失败时返回错误
func NewRenderSystem() (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// 取 3x3 图像的中心像素，避免采样到边缘
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		scoreFace: &text.GoTextFace{Source: source, Size: config.ScoreFontSize},
		popupFace: &text.GoTextFace{Source: source, Size: config.PopupFontSize},
		hintFace:  &text.GoTextFace{Source: source, Size: config.HintFontSize},
	}, nil
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, gs *game.GameState, view RenderView) {
	screen.Fill(config.Palette[0])

	s.drawTimer(screen, gs)
	s.drawScore(screen, gs)
	s.drawPopups(screen, gs)

	ball := gs.Ball
	vector.DrawFilledCircle(screen, float32(ball.Position.X), float32(ball.Position.Y),
		float32(ball.Radius), config.Palette[6], true)

	s.drawBumpers(screen, gs)

	if ball.Stopped && !gs.RoundOver() {
		s.drawGauge(screen, gs.Aim(view.Aim))
	}

	if view.ShowGrid {
		s.drawGrid(screen, gs)
	}
}

// drawTimer 绘制半透明扇形计时器和中心遮挡圆
func (s *RenderSystem) drawTimer(screen *ebiten.Image, gs *game.GameState) {
	cfg := gs.Config.Timer
	center := utils.V(gs.Config.FieldCenter())

	polygon := gs.Timer.Polygon(center, cfg.Radius)
	if len(polygon) >= 3 {
		clr := config.Palette[1]
		r, g, b := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255
		a := float32(64) / 255

		s.timerVerts = s.timerVerts[:0]
		for _, p := range polygon {
			s.timerVerts = append(s.timerVerts, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}

		// 以中心点为公共顶点的三角扇
		s.timerIdx = s.timerIdx[:0]
		for i := 1; i+1 < len(polygon); i++ {
			s.timerIdx = append(s.timerIdx, 0, uint16(i), uint16(i+1))
		}
		screen.DrawTriangles(s.timerVerts, s.timerIdx, s.white, nil)
	}

	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y),
		float32(cfg.InnerRadius), config.Palette[0], true)
}

// drawScore 在场地中心绘制总分
func (s *RenderSystem) drawScore(screen *ebiten.Image, gs *game.GameState) {
	cx, cy := gs.Config.FieldCenter()

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(config.Palette[2])
	text.Draw(screen, strconv.Itoa(gs.Score.Score()), s.scoreFace, op)
}

// drawPopups 绘制得分飘字
func (s *RenderSystem) drawPopups(screen *ebiten.Image, gs *game.GameState) {
	for _, p := range gs.Score.Popups() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(p.Position.X, p.Position.Y)
		op.ColorScale.ScaleWithColor(config.WithAlpha(p.Color, p.Alpha))
		text.Draw(screen, strconv.Itoa(p.Value), s.popupFace, op)
	}
}

// drawBumpers 绘制存活的弹珠柱，正在死亡的先绘制光晕
func (s *RenderSystem) drawBumpers(screen *ebiten.Image, gs *game.GameState) {
	for _, b := range gs.Field.Bumpers() {
		x, y := float32(b.Position.X), float32(b.Position.Y)
		if b.Dying {
			vector.DrawFilledCircle(screen, x, y, float32(b.DyingRadius),
				config.WithAlpha(config.Palette[2], b.DyingAlpha), true)
		}
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), config.Palette[3], true)
	}
}

// drawGauge 绘制力度指示点
func (s *RenderSystem) drawGauge(screen *ebiten.Image, gauge game.PowerGauge) {
	size := float32(config.GaugeDotSize)
	for _, dot := range gauge.Dots {
		vector.DrawFilledRect(screen, float32(dot.X)-size/2, float32(dot.Y)-size/2, size, size,
			config.Palette[4], false)
	}
}

// drawGrid 绘制所有非空的空间哈希单元
func (s *RenderSystem) drawGrid(screen *ebiten.Image, gs *game.GameState) {
	for _, key := range gs.Grid.Cells() {
		r := gs.Grid.CellRect(key)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1,
			config.GridOverlayColor, false)
	}
}

// DrawHint 在屏幕底部居中绘制提示文字
func (s *RenderSystem) DrawHint(screen *ebiten.Image, msg string, clr color.Color) {
	bounds := screen.Bounds()

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(bounds.Dx())/2, float64(bounds.Dy())-12)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, s.hintFace, op)
}

// DrawCentered 在指定位置居中绘制大号文字
func (s *RenderSystem) DrawCentered(screen *ebiten.Image, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, s.scoreFace, op)
}
