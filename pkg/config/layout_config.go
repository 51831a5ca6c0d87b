package config

import "image/color"

// 窗口与渲染布局常量
// 窗口逻辑尺寸与场地尺寸一致，由 GameConfig 决定

const (
	// WindowTitle 窗口标题
	WindowTitle = "PLINKO"

	// ScoreFontSize 总分字号
	ScoreFontSize = 30

	// PopupFontSize 得分飘字字号
	PopupFontSize = 30

	// HintFontSize 提示文字字号
	HintFontSize = 16

	// GaugeDotSize 力度指示点边长（像素）
	GaugeDotSize = 3.0

	// MaxFrameSeconds 单帧最大时间步长（秒）
	// 窗口被拖动或切后台后，避免一次性积累过大的 dt 导致球穿透弹珠柱
	MaxFrameSeconds = 0.1
)

// Palette 8 色调色板
//
//	0 背景  1 计时器  2 分数/死亡光晕  3 弹珠柱
//	4 力度指示  5 提示文字  6 球/普通飘字  7 奖励飘字
var Palette = [8]color.RGBA{
	{R: 0x0d, G: 0x2b, B: 0x45, A: 0xff},
	{R: 0x20, G: 0x3c, B: 0x56, A: 0xff},
	{R: 0x54, G: 0x4e, B: 0x68, A: 0xff},
	{R: 0x8d, G: 0x69, B: 0x7a, A: 0xff},
	{R: 0xd0, G: 0x81, B: 0x59, A: 0xff},
	{R: 0xff, G: 0xaa, B: 0x5e, A: 0xff},
	{R: 0xff, G: 0xd4, B: 0xa3, A: 0xff},
	{R: 0xff, G: 0xec, B: 0xd6, A: 0xff},
}

// GridOverlayColor 空间哈希调试网格颜色
var GridOverlayColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// WithAlpha 返回替换了透明度的颜色（非预乘，由调用方负责转换）
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
