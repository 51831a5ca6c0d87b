package components

import (
	"github.com/decker502/plinko/pkg/spatial"
	"github.com/decker502/plinko/pkg/utils"
)

// Bumper 弹珠柱
//
// 静态、可被摧毁的圆形障碍物。位置在生成后不再改变。
// 生命周期：存活 → 被击中进入 Dying（播放死亡动画）→ 动画结束后 Dead。
// Dead 之后不会复活；Dead 的弹珠柱仍可能残留在空间哈希中，由碰撞检测按存活状态过滤。
type Bumper struct {
	Position utils.Vec2 // 圆心位置
	Radius   float64    // 半径

	Dead         bool    // 已死亡（从存活集合中移除）
	Dying        bool    // 正在播放死亡动画
	DyingElapsed float64 // 死亡动画已播放时长（秒），每次被击中重新计时
	BumpCount    int     // 被击中次数

	// 死亡动画参数（由 Update 计算，供渲染使用）
	DyingRadius float64 // 光晕半径，从 Radius 增长到 Radius+MaxDyingSize
	DyingAlpha  uint8   // 光晕透明度，从 255 衰减到 0

	// GridCells 插入空间哈希时覆盖的单元
	GridCells []spatial.CellKey
}

// NewBumper 创建存活的弹珠柱
func NewBumper(position utils.Vec2, radius float64) *Bumper {
	return &Bumper{
		Position:    position,
		Radius:      radius,
		DyingRadius: radius,
		DyingAlpha:  255,
	}
}

// Bounds 实现 spatial.Indexable
func (b *Bumper) Bounds() utils.Rect {
	return utils.RectAround(b.Position, b.Radius)
}

// SetGridCells 实现 spatial.Indexable
func (b *Bumper) SetGridCells(cells []spatial.CellKey) {
	b.GridCells = cells
}

// IsAlive 是否仍参与碰撞
func (b *Bumper) IsAlive() bool {
	return !b.Dead
}

// Hit 记录一次撞击
//
// 进入 Dying 状态并重新开始死亡动画计时，撞击次数加一。
// 返回撞击后的累计次数。
func (b *Bumper) Hit() int {
	b.Dying = true
	b.DyingElapsed = 0
	b.BumpCount++
	return b.BumpCount
}

// Update 推进死亡动画
//
// 参数:
//   - dt: 经过的时间（秒）
//   - dyingTime: 死亡动画总时长（秒）
//   - maxDyingSize: 光晕最大额外半径
func (b *Bumper) Update(dt, dyingTime, maxDyingSize float64) {
	if !b.Dying || b.Dead {
		return
	}

	b.DyingElapsed += dt
	if b.DyingElapsed >= dyingTime {
		b.Dead = true
		return
	}

	progress := b.DyingElapsed / dyingTime
	b.DyingAlpha = uint8(255 - utils.Lerp(0, 255, progress))
	b.DyingRadius = float64(int(b.Radius + utils.Lerp(0, maxDyingSize, progress)))
}
