package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test output defaults
	if cfg.Output.Format != "gltf" {
		t.Errorf("expected format 'gltf', got %s", cfg.Output.Format)
	}
	if cfg.Output.Topology != "triangles" {
		t.Errorf("expected topology 'triangles', got %s", cfg.Output.Topology)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("expected empty output dir, got %s", cfg.Output.Dir)
	}

	// Test asset defaults
	if len(cfg.Assets.SearchPaths) != 1 || cfg.Assets.SearchPaths[0] != "." {
		t.Errorf("expected search paths ['.'], got %v", cfg.Assets.SearchPaths)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "daetool.yaml")

	yamlContent := `
output:
  format: obj
  topology: lines
  dir: out/models

assets:
  search_paths:
    - assets/dae
    - /srv/models

logging:
  level: "debug"
  log_file: "daetool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Output.Format != "obj" {
		t.Errorf("expected format 'obj', got %s", cfg.Output.Format)
	}
	if cfg.Output.Topology != "lines" {
		t.Errorf("expected topology 'lines', got %s", cfg.Output.Topology)
	}
	if cfg.Output.Dir != "out/models" {
		t.Errorf("expected output dir 'out/models', got %s", cfg.Output.Dir)
	}

	if len(cfg.Assets.SearchPaths) != 2 {
		t.Fatalf("expected 2 search paths, got %v", cfg.Assets.SearchPaths)
	}
	if cfg.Assets.SearchPaths[0] != "assets/dae" || cfg.Assets.SearchPaths[1] != "/srv/models" {
		t.Errorf("unexpected search paths %v", cfg.Assets.SearchPaths)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "daetool.log" {
		t.Errorf("expected log file 'daetool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// A file that only sets one field keeps defaults for the rest.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "daetool.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  format: glb\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Format != "glb" {
		t.Errorf("expected format 'glb', got %s", cfg.Output.Format)
	}
	if cfg.Output.Topology != "triangles" {
		t.Errorf("expected default topology 'triangles', got %s", cfg.Output.Topology)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  format: [not
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/daetool.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create daetool.yaml in current directory
	configPath := filepath.Join(tmpDir, "daetool.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: obj\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find daetool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "log flag",
			setup: func() {
				*flagLog = "run.log"
			},
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file 'run.log', got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagLog = ""
			},
		},
		{
			name: "format flag",
			setup: func() {
				*flagFormat = "glb"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Format != "glb" {
					t.Errorf("expected format 'glb', got %s", cfg.Output.Format)
				}
			},
			teardown: func() {
				*flagFormat = ""
			},
		},
		{
			name: "wireframe flag",
			setup: func() {
				*flagWireframe = true
			},
			verify: func(cfg *Config) {
				if cfg.Output.Topology != "lines" {
					t.Errorf("expected topology 'lines', got %s", cfg.Output.Topology)
				}
			},
			teardown: func() {
				*flagWireframe = false
			},
		},
		{
			name: "outdir flag",
			setup: func() {
				*flagOutDir = "converted"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Dir != "converted" {
					t.Errorf("expected output dir 'converted', got %s", cfg.Output.Dir)
				}
			},
			teardown: func() {
				*flagOutDir = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "daetool.yaml")

	yamlContent := `
output:
  format: obj
  topology: lines
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagFormat = "glb"
	defer func() {
		*flagConfig = ""
		*flagFormat = ""
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Format should be from flag (glb), not file (obj)
	if cfg.Output.Format != "glb" {
		t.Errorf("expected format 'glb' from flag, got %s", cfg.Output.Format)
	}

	// Topology should be from file (lines) since no flag override
	if cfg.Output.Topology != "lines" {
		t.Errorf("expected topology 'lines' from file, got %s", cfg.Output.Topology)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "daetool.yaml")

	cfg := Default()
	cfg.Output.Format = "obj"
	cfg.Assets.SearchPaths = []string{"models"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Output.Format != "obj" {
		t.Errorf("expected format 'obj' after roundtrip, got %s", loaded.Output.Format)
	}
	if len(loaded.Assets.SearchPaths) != 1 || loaded.Assets.SearchPaths[0] != "models" {
		t.Errorf("unexpected search paths after roundtrip: %v", loaded.Assets.SearchPaths)
	}
}
