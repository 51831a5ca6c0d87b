package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏调参配置
//
// 包含场地尺寸、球与弹珠柱的物理参数、计分规则以及回合计时器参数。
// 所有距离单位为像素，时间单位为秒（除非特别注明为"帧单位"）。
//
// 配置文件位置: data/plinko.yaml
type GameConfig struct {
	// Field 游戏场地配置
	Field FieldConfig `yaml:"field"`

	// Ball 球的物理配置
	Ball BallConfig `yaml:"ball"`

	// Bumper 弹珠柱配置
	Bumper BumperConfig `yaml:"bumper"`

	// Score 计分配置
	Score ScoreConfig `yaml:"score"`

	// Timer 回合计时器配置
	Timer TimerConfig `yaml:"timer"`
}

// FieldConfig 场地配置
type FieldConfig struct {
	Width     float64 `yaml:"width"`     // 场地宽度
	Height    float64 `yaml:"height"`    // 场地高度
	TargetFPS float64 `yaml:"targetFPS"` // 目标帧率，dt = 实际经过秒数 × TargetFPS
	CellSize  float64 `yaml:"cellSize"`  // 空间哈希网格单元大小
}

// BallConfig 球的物理配置
type BallConfig struct {
	Radius             float64 `yaml:"radius"`             // 球半径
	Damping            float64 `yaml:"damping"`            // 线性阻尼系数（每帧单位速度衰减比例）
	LaunchPowerDivisor float64 `yaml:"launchPowerDivisor"` // 发射速度 = 瞄准距离 / 该值
	GaugeDots          int     `yaml:"gaugeDots"`          // 力度指示点数量
}

// BumperConfig 弹珠柱配置
type BumperConfig struct {
	Radius               float64 `yaml:"radius"`               // 弹珠柱半径
	Count                int     `yaml:"count"`                // 生成数量
	ExclusionRadius      float64 `yaml:"exclusionRadius"`      // 球出生点周围的禁放半径
	OverlapMargin        float64 `yaml:"overlapMargin"`        // 两个弹珠柱之间的最小额外间隙
	DyingTime            float64 `yaml:"dyingTime"`            // 死亡动画时长（秒）
	MaxDyingSize         float64 `yaml:"maxDyingSize"`         // 死亡动画光晕的最大额外半径
	PlacementMaxAttempts int     `yaml:"placementMaxAttempts"` // 单个弹珠柱的最大采样次数，0 表示不限
}

// ScoreConfig 计分配置
type ScoreConfig struct {
	BonusScore    int     `yaml:"bonusScore"`    // 同一弹珠柱被击中 BonusHitCount 次的奖励分
	BonusHitCount int     `yaml:"bonusHitCount"` // 触发奖励所需击中次数
	ComboWindow   float64 `yaml:"comboWindow"`   // 连击窗口（秒），超时后倍率重置为 1
	PopupRadius   float64 `yaml:"popupRadius"`   // 得分飘字出现位置到场地中心的距离
}

// TimerConfig 回合计时器配置
type TimerConfig struct {
	Segments    int     `yaml:"segments"`    // 计时器扇形分段数
	TickFrames  float64 `yaml:"tickFrames"`  // 每移除一段所需的帧单位
	Radius      float64 `yaml:"radius"`      // 计时器外半径
	InnerRadius float64 `yaml:"innerRadius"` // 中心遮挡圆半径
}

// DefaultGameConfig 返回默认配置（与 data/plinko.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Field: FieldConfig{
			Width:     1280,
			Height:    720,
			TargetFPS: 120,
			CellSize:  64,
		},
		Ball: BallConfig{
			Radius:             20,
			Damping:            0.01,
			LaunchPowerDivisor: 20,
			GaugeDots:          8,
		},
		Bumper: BumperConfig{
			Radius:               10,
			Count:                200,
			ExclusionRadius:      150,
			OverlapMargin:        10,
			DyingTime:            0.3,
			MaxDyingSize:         30,
			PlacementMaxAttempts: 0,
		},
		Score: ScoreConfig{
			BonusScore:    500,
			BonusHitCount: 4,
			ComboWindow:   1.5,
			PopupRadius:   70,
		},
		Timer: TimerConfig{
			Segments:    120,
			TickFrames:  100,
			Radius:      100,
			InnerRadius: 80,
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/plinko.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 解析在默认配置之上进行，YAML 中缺失的字段保留默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 场地尺寸、帧率、半径等必须为正
//   - 网格单元必须大于球和弹珠柱的直径（保证每次查询涉及的桶数量很少）
//   - 计分与计时参数不能为负
func (c *GameConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.1fx%.1f", c.Field.Width, c.Field.Height)
	}
	if c.Field.TargetFPS <= 0 {
		return fmt.Errorf("targetFPS must be positive, got %.1f", c.Field.TargetFPS)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %.1f", c.Ball.Radius)
	}
	if c.Bumper.Radius <= 0 {
		return fmt.Errorf("bumper radius must be positive, got %.1f", c.Bumper.Radius)
	}
	if c.Field.CellSize <= 2*c.Ball.Radius || c.Field.CellSize <= 2*c.Bumper.Radius {
		return fmt.Errorf("cellSize(%.1f) must exceed ball diameter(%.1f) and bumper diameter(%.1f)",
			c.Field.CellSize, 2*c.Ball.Radius, 2*c.Bumper.Radius)
	}
	if c.Ball.Damping < 0 || c.Ball.Damping >= 1 {
		return fmt.Errorf("ball damping must be in [0, 1), got %.3f", c.Ball.Damping)
	}
	if c.Ball.LaunchPowerDivisor <= 0 {
		return fmt.Errorf("launchPowerDivisor must be positive, got %.1f", c.Ball.LaunchPowerDivisor)
	}
	if c.Ball.GaugeDots < 2 {
		return fmt.Errorf("gaugeDots must be at least 2, got %d", c.Ball.GaugeDots)
	}
	if c.Bumper.Count < 0 {
		return fmt.Errorf("bumper count must be >= 0, got %d", c.Bumper.Count)
	}
	if c.Bumper.ExclusionRadius < 0 || c.Bumper.OverlapMargin < 0 {
		return fmt.Errorf("bumper exclusionRadius/overlapMargin must be >= 0")
	}
	if c.Bumper.DyingTime <= 0 {
		return fmt.Errorf("bumper dyingTime must be positive, got %.2f", c.Bumper.DyingTime)
	}
	if c.Bumper.PlacementMaxAttempts < 0 {
		return fmt.Errorf("placementMaxAttempts must be >= 0, got %d", c.Bumper.PlacementMaxAttempts)
	}
	if c.Score.BonusHitCount <= 0 {
		return fmt.Errorf("bonusHitCount must be positive, got %d", c.Score.BonusHitCount)
	}
	if c.Score.BonusScore < 0 || c.Score.ComboWindow < 0 {
		return fmt.Errorf("bonusScore/comboWindow must be >= 0")
	}
	if c.Timer.Segments <= 0 || c.Timer.TickFrames <= 0 {
		return fmt.Errorf("timer segments(%d) and tickFrames(%.1f) must be positive",
			c.Timer.Segments, c.Timer.TickFrames)
	}
	return nil
}

// MinBumperSeparation 返回两个弹珠柱中心之间允许的最小距离
func (c *GameConfig) MinBumperSeparation() float64 {
	return 2*c.Bumper.Radius + c.Bumper.OverlapMargin
}

// CollisionDistance 返回球与弹珠柱发生碰撞的中心距离阈值
func (c *GameConfig) CollisionDistance() float64 {
	return c.Ball.Radius + c.Bumper.Radius
}

// FieldCenter 返回场地中心坐标
func (c *GameConfig) FieldCenter() (float64, float64) {
	return c.Field.Width / 2, c.Field.Height / 2
}
