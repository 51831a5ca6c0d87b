package game

import "github.com/decker502/plinko/pkg/utils"

// PowerGauge 力度指示器结果
type PowerGauge struct {
	Dots     []utils.Vec2 // 指示点位置，从瞄准点开始向球收拢
	Velocity utils.Vec2   // 对应的发射速度
}

// ComputePowerGauge 根据球的位置和瞄准点计算力度指示
//
// 指示点从瞄准点出发，间距按等差递增向球收拢（总收缩量 = 瞄准距离的 3/4）；
// 发射速度方向指向瞄准点，大小 = 瞄准距离 / divisor。
//
// 参数:
//   - source: 球的位置
//   - target: 瞄准点
//   - dots: 指示点数量（≥ 2）
//   - divisor: 力度除数
func ComputePowerGauge(source, target utils.Vec2, dots int, divisor float64) PowerGauge {
	distance := source.DistanceTo(target)
	total := distance
	threshold := 2 * distance / float64(dots*(dots-1))
	direction := target.Sub(source).Normalize()

	gauge := PowerGauge{Dots: make([]utils.Vec2, 0, dots)}
	for index := 0; index < dots; index++ {
		gauge.Dots = append(gauge.Dots, source.Add(direction.Scale(distance)))
		distance -= threshold * float64(index)
	}

	if total > 0 {
		gauge.Velocity = direction.Scale(total / divisor)
	}
	return gauge
}
