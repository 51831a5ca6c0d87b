package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 与原版常量保持一致
	if cfg.Field.CellSize != 64 {
		t.Errorf("expected cellSize = 64, got %f", cfg.Field.CellSize)
	}
	if cfg.MinBumperSeparation() != 30 {
		t.Errorf("expected min separation = 30, got %f", cfg.MinBumperSeparation())
	}
	if cfg.CollisionDistance() != 30 {
		t.Errorf("expected collision distance = 30, got %f", cfg.CollisionDistance())
	}
	cx, cy := cfg.FieldCenter()
	if cx != 640 || cy != 360 {
		t.Errorf("expected field center (640, 360), got (%f, %f)", cx, cy)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
bumper:
  count: 50
  exclusionRadius: 100
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Bumper.Count != 50 {
					t.Errorf("expected count = 50, got %d", cfg.Bumper.Count)
				}
				if cfg.Bumper.ExclusionRadius != 100 {
					t.Errorf("expected exclusionRadius = 100, got %f", cfg.Bumper.ExclusionRadius)
				}
				// 未配置的字段保留默认值
				if cfg.Bumper.Radius != 10 {
					t.Errorf("expected default radius = 10, got %f", cfg.Bumper.Radius)
				}
				if cfg.Field.Width != 1280 {
					t.Errorf("expected default width = 1280, got %f", cfg.Field.Width)
				}
			},
		},
		{
			name: "cell size too small",
			yamlContent: `
field:
  cellSize: 40
`,
			wantErr:     true,
			errContains: "cellSize",
		},
		{
			name: "negative placement attempts",
			yamlContent: `
bumper:
  placementMaxAttempts: -1
`,
			wantErr:     true,
			errContains: "placementMaxAttempts",
		},
		{
			name: "zero fps",
			yamlContent: `
field:
  targetFPS: 0
`,
			wantErr:     true,
			errContains: "targetFPS",
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [1, 2",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plinko.yaml")
	content := `
ball:
  radius: 12
timer:
  segments: 60
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Ball.Radius != 12 {
		t.Errorf("expected ball radius = 12, got %f", cfg.Ball.Radius)
	}
	if cfg.Timer.Segments != 60 {
		t.Errorf("expected timer segments = 60, got %d", cfg.Timer.Segments)
	}

	// 文件不存在
	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := LoadGameConfig("../../data/plinko.yaml")
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}

	want := DefaultGameConfig()
	if *cfg != *want {
		t.Errorf("shipped config differs from defaults:\n got %+v\nwant %+v", *cfg, *want)
	}
}
