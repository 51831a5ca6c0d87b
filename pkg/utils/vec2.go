package utils

import "math"

// Vec2 二维向量（世界坐标，像素）
type Vec2 struct {
	X, Y float64
}

// V 构造向量的简写
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot 点积
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo 两点距离
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量返回 (1, 0)，与"零向量角度为 0°"的约定一致
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{1, 0}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Reflect 以 normal 为法线反射向量
// normal 不要求是单位向量；零法线时原样返回
func (v Vec2) Reflect(normal Vec2) Vec2 {
	if normal.IsZero() {
		return v
	}
	n := normal.Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// FromAngle 返回指定角度（度，顺时针为正，屏幕坐标系）的单位向量
func FromAngle(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// RectAround 返回以 center 为中心、半边长为 half 的正方形
func RectAround(center Vec2, half float64) Rect {
	return Rect{X: center.X - half, Y: center.Y - half, W: half * 2, H: half * 2}
}

// Right 右边界
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 下边界
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inflate 以中心为基准扩大矩形，dw/dh 为总的宽高增量
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}
