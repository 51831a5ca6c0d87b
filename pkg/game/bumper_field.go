package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/plinko/pkg/components"
	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/spatial"
	"github.com/decker502/plinko/pkg/utils"
)

// ErrPlacementInfeasible 在限定的采样次数内无法放下所有弹珠柱
//
// 只有 placementMaxAttempts > 0 时才可能返回；为 0 时采样不设上限，
// 调用方必须保证目标密度可达。
var ErrPlacementInfeasible = errors.New("bumper placement infeasible")

// BumperGrid 弹珠柱空间哈希
type BumperGrid = spatial.SpatialHash[*components.Bumper]

// NewBumperGrid 创建弹珠柱空间哈希
func NewBumperGrid(cellSize float64) *BumperGrid {
	return spatial.NewSpatialHash[*components.Bumper](cellSize)
}

// BumperField 弹珠柱集合
//
// 独占弹珠柱的生命周期：生成时通过拒绝采样放置，
// 每帧推进死亡动画并移除已死亡的弹珠柱。
// 空间哈希只持有引用，死亡的弹珠柱会残留在哈希中。
type BumperField struct {
	bumpers      []*components.Bumper
	dyingTime    float64
	maxDyingSize float64
	removed      int
	samples      int
}

// NewBumperField 通过拒绝采样生成 n 个弹珠柱
//
// 每个弹珠柱满足：
//  1. 圆心到 exclusionPoint 的距离 ≥ exclusionRadius + 弹珠柱半径
//  2. 与已放置的任意弹珠柱圆心距离 ≥ 2×半径 + overlapMargin
//
// 候选位置在场地范围内均匀随机；邻居检测通过查询空间哈希完成。
// 放置成功的弹珠柱同时加入集合和空间哈希。
//
// 参数:
//   - cfg: 游戏配置
//   - grid: 空间哈希（通常为空）
//   - rng: 随机数源
//   - exclusionPoint: 禁放区域中心（球的出生点）
//   - exclusionRadius: 禁放区域半径
//   - n: 目标数量
//
// 返回:
//   - *BumperField: 生成的弹珠柱集合
//   - error: 超出 placementMaxAttempts 时返回 ErrPlacementInfeasible
func NewBumperField(cfg *config.GameConfig, grid *BumperGrid, rng *rand.Rand,
	exclusionPoint utils.Vec2, exclusionRadius float64, n int) (*BumperField, error) {

	f := &BumperField{
		bumpers:      make([]*components.Bumper, 0, n),
		dyingTime:    cfg.Bumper.DyingTime,
		maxDyingSize: cfg.Bumper.MaxDyingSize,
	}

	radius := cfg.Bumper.Radius
	minSeparation := cfg.MinBumperSeparation()
	maxAttempts := cfg.Bumper.PlacementMaxAttempts

	var neighbors []*components.Bumper
	for i := 0; i < n; i++ {
		attempts := 0
		for {
			attempts++
			if maxAttempts > 0 && attempts > maxAttempts {
				return nil, fmt.Errorf("%w: placed %d of %d bumpers, %d samples for the next one",
					ErrPlacementInfeasible, i, n, maxAttempts)
			}

			pos := utils.V(rng.Float64()*cfg.Field.Width, rng.Float64()*cfg.Field.Height)
			if exclusionPoint.DistanceTo(pos) < exclusionRadius+radius {
				continue
			}

			// 查询范围覆盖所有可能过近的邻居圆心
			neighbors = grid.QueryBuf(utils.RectAround(pos, minSeparation), neighbors[:0])
			if overlapsAny(pos, neighbors, minSeparation) {
				continue
			}

			bumper := components.NewBumper(pos, radius)
			f.bumpers = append(f.bumpers, bumper)
			grid.Insert(bumper)
			break
		}
		f.samples += attempts
	}

	log.Printf("[BumperField] Placed %d bumpers in %d samples (exclusion r=%.0f at %.0f,%.0f)",
		n, f.samples, exclusionRadius, exclusionPoint.X, exclusionPoint.Y)

	return f, nil
}

// overlapsAny 候选位置是否与任一邻居过近
func overlapsAny(pos utils.Vec2, neighbors []*components.Bumper, minSeparation float64) bool {
	for _, other := range neighbors {
		if pos.DistanceTo(other.Position) < minSeparation {
			return true
		}
	}
	return false
}

// Update 推进死亡动画并移除已死亡的弹珠柱
//
// 先更新全部弹珠柱，再压缩集合，避免遍历过程中修改切片。
//
// 参数:
//   - dt: 经过的时间（秒）
func (f *BumperField) Update(dt float64) {
	for _, b := range f.bumpers {
		b.Update(dt, f.dyingTime, f.maxDyingSize)
	}

	alive := f.bumpers[:0]
	for _, b := range f.bumpers {
		if b.Dead {
			f.removed++
			continue
		}
		alive = append(alive, b)
	}
	// 清空尾部引用
	for i := len(alive); i < len(f.bumpers); i++ {
		f.bumpers[i] = nil
	}
	f.bumpers = alive
}

// Bumpers 返回存活（含正在死亡）的弹珠柱
func (f *BumperField) Bumpers() []*components.Bumper {
	return f.bumpers
}

// Len 返回存活弹珠柱数量
func (f *BumperField) Len() int {
	return len(f.bumpers)
}

// Removed 返回本回合已清除的弹珠柱数量
func (f *BumperField) Removed() int {
	return f.removed
}

// Samples 返回生成过程中的总采样次数
func (f *BumperField) Samples() int {
	return f.samples
}
