// Package spatial 提供宽阶段碰撞检测使用的均匀网格空间哈希
package spatial

import (
	"math"

	"github.com/decker502/plinko/pkg/utils"
)

// CellKey 网格单元坐标 (cx, cy) = floor(coord / cellSize)
type CellKey struct {
	CX, CY int
}

// Indexable 可被空间哈希索引的对象
//
// Bounds 返回对象的轴对齐包围盒；SetGridCells 用于记录对象被插入的单元列表。
type Indexable interface {
	Bounds() utils.Rect
	SetGridCells(cells []CellKey)
}

// SpatialHash 无界均匀网格
//
// 只提供插入和查询，不提供删除：被销毁的对象仍留在桶中，
// 调用方需要在查询结果上按存活状态过滤。
type SpatialHash[T Indexable] struct {
	cellSize float64
	grid     map[CellKey][]T
}

// NewSpatialHash 创建空间哈希
//
// 参数:
//   - cellSize: 网格单元边长，应大于被索引对象的直径
func NewSpatialHash[T Indexable](cellSize float64) *SpatialHash[T] {
	return &SpatialHash[T]{
		cellSize: cellSize,
		grid:     make(map[CellKey][]T),
	}
}

// CellSize 返回网格单元边长
func (h *SpatialHash[T]) CellSize() float64 {
	return h.cellSize
}

// cellRange 计算矩形覆盖的单元范围（闭区间）
func (h *SpatialHash[T]) cellRange(r utils.Rect) (x1, y1, x2, y2 int) {
	x1 = int(math.Floor(r.X / h.cellSize))
	y1 = int(math.Floor(r.Y / h.cellSize))
	x2 = int(math.Floor(r.Right() / h.cellSize))
	y2 = int(math.Floor(r.Bottom() / h.cellSize))
	return
}

// Insert 将对象插入其包围盒覆盖的所有单元，并在对象上记录这些单元
func (h *SpatialHash[T]) Insert(obj T) {
	x1, y1, x2, y2 := h.cellRange(obj.Bounds())

	cells := make([]CellKey, 0, (x2-x1+1)*(y2-y1+1))
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			key := CellKey{CX: x, CY: y}
			h.grid[key] = append(h.grid[key], obj)
			cells = append(cells, key)
		}
	}
	obj.SetGridCells(cells)
}

// Query 返回与矩形覆盖单元相同的所有桶内对象
//
// 跨越多个单元的对象会重复出现，调用方需要容忍或去重。
func (h *SpatialHash[T]) Query(r utils.Rect) []T {
	return h.QueryBuf(r, nil)
}

// QueryBuf 与 Query 相同，但将结果追加到 buf，避免每帧分配
func (h *SpatialHash[T]) QueryBuf(r utils.Rect, buf []T) []T {
	x1, y1, x2, y2 := h.cellRange(r)
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			buf = append(buf, h.grid[CellKey{CX: x, CY: y}]...)
		}
	}
	return buf
}

// Cells 返回所有非空单元（调试叠加层使用）
func (h *SpatialHash[T]) Cells() []CellKey {
	cells := make([]CellKey, 0, len(h.grid))
	for key, bucket := range h.grid {
		if len(bucket) > 0 {
			cells = append(cells, key)
		}
	}
	return cells
}

// CellRect 返回单元在世界坐标中的矩形
func (h *SpatialHash[T]) CellRect(key CellKey) utils.Rect {
	return utils.Rect{
		X: float64(key.CX) * h.cellSize,
		Y: float64(key.CY) * h.cellSize,
		W: h.cellSize,
		H: h.cellSize,
	}
}

// Len 返回所有桶中的引用总数（含重复）
func (h *SpatialHash[T]) Len() int {
	n := 0
	for _, bucket := range h.grid {
		n += len(bucket)
	}
	return n
}
