package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultStackerConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("stacker"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	cfg.Normalize()

	expected := DefaultStackerConfig()
	expected.Normalize()

	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("embedded defaults differ from DefaultStackerConfig():\n got %+v\nwant %+v", cfg, expected)
	}
}

func TestSpeedFor(t *testing.T) {
	blocks := DefaultStackerConfig().Blocks

	tests := []struct {
		width    float64
		expected float64
	}{
		{200, 2.3},
		{100, 2.3},
		{90, 2.3},
		{89.9, 2.5},
		{80, 2.5},
		{75, 2.7},
		{60, 2.9},
		{55, 3.3},
		{45, 3.5},
		{30, 3.8},
		{25, 4.6},
		{10, 4.9},
		{9.99, 5.3},
		{0, 5.3},
	}

	for _, tc := range tests {
		if got := blocks.SpeedFor(tc.width); got != tc.expected {
			t.Errorf("SpeedFor(%v) = %v, expected %v", tc.width, got, tc.expected)
		}
	}
}

func TestNormalizeSortsSpeedTable(t *testing.T) {
	cfg := DefaultStackerConfig()
	cfg.Blocks.SpeedTable = []SpeedStep{
		{MinWidth: 10, Speed: 4},
		{MinWidth: 50, Speed: 2},
		{MinWidth: 30, Speed: 3},
	}
	cfg.Normalize()

	if got := cfg.Blocks.SpeedFor(60); got != 2 {
		t.Errorf("SpeedFor(60) = %v, expected 2 after sorting", got)
	}
	if got := cfg.Blocks.SpeedFor(35); got != 3 {
		t.Errorf("SpeedFor(35) = %v, expected 3 after sorting", got)
	}
}

func TestNormalizeFillsInvalidValues(t *testing.T) {
	var cfg StackerConfig
	cfg.Gameplay.WinScore = -4
	cfg.Normalize()

	def := DefaultStackerConfig()
	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if cfg.Blocks.BaseWidth != def.Blocks.BaseWidth {
		t.Errorf("BaseWidth = %v, expected %v", cfg.Blocks.BaseWidth, def.Blocks.BaseWidth)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.WinScore != 0 {
		t.Errorf("negative WinScore should clamp to 0, got %d", cfg.Gameplay.WinScore)
	}
	if len(cfg.Blocks.SpeedTable) == 0 {
		t.Error("empty speed table should be replaced with defaults")
	}
}

func TestBlockHeight(t *testing.T) {
	cfg := DefaultStackerConfig()
	want := 600.0 / 35.0
	if got := cfg.BlockHeight(); got != want {
		t.Errorf("BlockHeight() = %v, expected %v", got, want)
	}
}

func TestLoadStackerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 5\n  win_score: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStacker(path)
	if err != nil {
		t.Fatalf("LoadStacker() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 5 || cfg.Gameplay.WinScore != 50 {
		t.Errorf("custom values not applied: %+v", cfg.Gameplay)
	}
	// Unspecified fields keep defaults
	if cfg.Blocks.BaseWidth != 100 {
		t.Errorf("BaseWidth = %v, expected default 100", cfg.Blocks.BaseWidth)
	}
	if !cfg.PowerUps.Enabled {
		t.Error("power-ups should stay enabled when the section is omitted")
	}
}

func TestLoadStackerMissingCustomPath(t *testing.T) {
	_, err := LoadStacker(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadStackerInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStacker(path); err == nil {
		t.Error("expected parse error for invalid YAML")
	}
}

func TestApplyStackerPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		lives        int
	}{
		{DifficultyEasy, true, 0.0, 3},
		{DifficultyNormal, true, 0.3, 2},
		{DifficultyHard, true, 0.7, 1},
		{DifficultyFixed, false, 0.0, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultStackerConfig()
			ApplyStackerPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should parse to empty")
	}
}
