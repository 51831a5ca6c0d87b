// verify_placement 批量生成弹珠柱布局并检查放置约束
//
// 对每个种子检查：
//   - 任意两个弹珠柱圆心距离 ≥ 2×半径 + 间隙
//   - 所有弹珠柱都在球出生点的禁放圈之外、且在场地范围内
//   - 空间哈希中能查询到每一个弹珠柱
//
// 用法:
//
//	go run ./cmd/verify_placement --seeds 50 --bumpers 300
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/plinko/pkg/config"
	"github.com/decker502/plinko/pkg/game"
	"github.com/decker502/plinko/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参配置文件路径（默认使用内置默认值）")
	seeds      = flag.Int("seeds", 20, "验证的种子数量")
	startSeed  = flag.Int64("start", 1, "起始种子")
	bumpers    = flag.Int("bumpers", -1, "覆盖弹珠柱数量（-1 表示使用配置）")
	attempts   = flag.Int("attempts", -1, "覆盖单个弹珠柱的最大采样次数（-1 表示使用配置，0 表示不限）")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Printf("❌ 读取配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *bumpers >= 0 {
		cfg.Bumper.Count = *bumpers
	}
	if *attempts >= 0 {
		cfg.Bumper.PlacementMaxAttempts = *attempts
	}

	fmt.Printf("场地 %.0fx%.0f，弹珠柱 %d 个，最小间距 %.1f，禁放半径 %.1f\n",
		cfg.Field.Width, cfg.Field.Height, cfg.Bumper.Count, cfg.MinBumperSeparation(), cfg.Bumper.ExclusionRadius)

	failed := 0
	infeasible := 0
	for i := 0; i < *seeds; i++ {
		seed := *startSeed + int64(i)
		gs, err := game.NewGameState(cfg, seed)
		if errors.Is(err, game.ErrPlacementInfeasible) {
			fmt.Printf("⚠️  seed=%d 无法放置: %v\n", seed, err)
			infeasible++
			continue
		}
		if err != nil {
			fmt.Printf("❌ seed=%d 创建回合失败: %v\n", seed, err)
			os.Exit(1)
		}

		report := verifyLayout(gs)
		if len(report.Violations) > 0 {
			failed++
			fmt.Printf("❌ seed=%d 发现 %d 处违规\n", seed, len(report.Violations))
			for _, v := range report.Violations {
				fmt.Printf("     %s\n", v)
			}
			continue
		}
		fmt.Printf("✅ seed=%d 弹珠柱=%d 采样=%d 最近间距=%.2f 最近出生点=%.2f\n",
			seed, gs.Field.Len(), gs.Field.Samples(), report.MinPairDistance, report.MinSpawnDistance)
	}

	fmt.Printf("\n共 %d 个种子：通过 %d，违规 %d，无法放置 %d\n",
		*seeds, *seeds-failed-infeasible, failed, infeasible)
	if failed > 0 {
		os.Exit(1)
	}
}

// layoutReport 单个布局的检查结果
type layoutReport struct {
	MinPairDistance  float64  // 最近两个弹珠柱的圆心距离
	MinSpawnDistance float64  // 离出生点最近的弹珠柱距离
	Violations       []string // 违规描述
}

// verifyLayout 检查布局是否满足放置约束
func verifyLayout(gs *game.GameState) layoutReport {
	cfg := gs.Config
	all := gs.Field.Bumpers()
	spawn := gs.Ball.Position
	minSeparation := cfg.MinBumperSeparation()

	report := layoutReport{
		MinPairDistance:  math.Inf(1),
		MinSpawnDistance: math.Inf(1),
	}

	for i, a := range all {
		if d := a.Position.DistanceTo(spawn); d < report.MinSpawnDistance {
			report.MinSpawnDistance = d
		}
		if a.Position.DistanceTo(spawn) < cfg.Bumper.ExclusionRadius {
			report.Violations = append(report.Violations,
				fmt.Sprintf("#%d (%.1f, %.1f) 位于禁放圈内", i, a.Position.X, a.Position.Y))
		}
		if a.Position.X < 0 || a.Position.X > cfg.Field.Width || a.Position.Y < 0 || a.Position.Y > cfg.Field.Height {
			report.Violations = append(report.Violations,
				fmt.Sprintf("#%d (%.1f, %.1f) 超出场地", i, a.Position.X, a.Position.Y))
		}
		if !queryContains(gs, a.Position) {
			report.Violations = append(report.Violations,
				fmt.Sprintf("#%d (%.1f, %.1f) 未在空间哈希中", i, a.Position.X, a.Position.Y))
		}

		for j := i + 1; j < len(all); j++ {
			d := a.Position.DistanceTo(all[j].Position)
			report.MinPairDistance = min(report.MinPairDistance, d)
			if d < minSeparation {
				report.Violations = append(report.Violations,
					fmt.Sprintf("#%d 与 #%d 距离 %.2f < %.2f", i, j, d, minSeparation))
			}
		}
	}
	return report
}

// queryContains 通过空间哈希查询指定位置的弹珠柱
func queryContains(gs *game.GameState, pos utils.Vec2) bool {
	for _, b := range gs.Grid.Query(utils.RectAround(pos, 1)) {
		if b.Position == pos {
			return true
		}
	}
	return false
}
